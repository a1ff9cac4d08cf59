// Package session runs a single-player game: it parses command lines,
// dispatches them against the board, and advances the day/night clock.
package session

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gridquest/internal/game/board"
	"github.com/cory-johannsen/gridquest/internal/game/character"
	"github.com/cory-johannsen/gridquest/internal/game/clock"
	"github.com/cory-johannsen/gridquest/internal/game/command"
)

// Result is the outcome of executing one command line.
type Result struct {
	// Output is the text to show the player.
	Output string
	// Quit is true when the player asked to end the game.
	Quit bool
	// GameOver is true when the player died this turn.
	GameOver bool
	// PhaseFlipped is true when this command flipped day and night.
	PhaseFlipped bool
}

// Session binds a player, a board, and a clock into a running game. It is
// not safe for concurrent use; the game is strictly turn-based.
type Session struct {
	board    *board.Board
	player   *character.Player
	clock    *clock.Clock
	registry *command.Registry
	logger   *zap.Logger
}

// New creates a Session over the given board, player, and clock.
//
// Precondition: b, p, and c must be non-nil. logger may be nil for a
// silent session.
func New(b *board.Board, p *character.Player, c *clock.Clock, logger *zap.Logger) (*Session, error) {
	if b == nil || p == nil || c == nil {
		return nil, fmt.Errorf("session: board, player, and clock are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		board:    b,
		player:   p,
		clock:    c,
		registry: command.DefaultRegistry(),
		logger:   logger,
	}, nil
}

// Player returns the session's player.
func (s *Session) Player() *character.Player { return s.player }

// Clock returns the session's day/night clock.
func (s *Session) Clock() *clock.Clock { return s.clock }

// Execute runs one command line against the game. Rule violations (bad
// direction, heavy item, empty square) come back as player-facing text,
// never as errors; the error return is reserved for internal faults.
//
// Postcondition: the clock advances once per recognized command, except
// for help and quit, which cost no time.
func (s *Session) Execute(line string) (Result, error) {
	parsed := command.Parse(line)
	if parsed.Command == "" {
		return Result{}, nil
	}

	cmd, ok := s.registry.Resolve(parsed.Command)
	if !ok {
		return Result{Output: fmt.Sprintf("Unknown command %q. Type 'help' for a list.", parsed.Command)}, nil
	}
	s.logger.Debug("command accepted",
		zap.String("command", cmd.Name),
		zap.String("phase", s.clock.Phase()),
	)

	res, err := s.dispatch(cmd, parsed.Args)
	if err != nil {
		return Result{}, err
	}
	if res.Quit {
		return res, nil
	}
	if cmd.Handler == command.HandlerHelp {
		return res, nil
	}

	if s.clock.Advance() {
		res.PhaseFlipped = true
		s.onPhaseFlip(&res)
	}
	return res, nil
}

func (s *Session) dispatch(cmd *command.Command, args []string) (Result, error) {
	switch cmd.Handler {
	case command.HandlerMove:
		return s.move(cmd.Name)
	case command.HandlerLook:
		return Result{Output: s.board.Describe(s.player)}, nil
	case command.HandlerGet:
		return s.pickUp()
	case command.HandlerDrop:
		return s.drop(args)
	case command.HandlerAttack:
		return s.attack()
	case command.HandlerInventory:
		return Result{Output: s.player.InventoryDescription()}, nil
	case command.HandlerStats:
		return Result{Output: s.player.StatsDescription()}, nil
	case command.HandlerMap:
		return Result{Output: s.board.DebugString()}, nil
	case command.HandlerHelp:
		return Result{Output: s.help()}, nil
	case command.HandlerQuit:
		return Result{
			Output: fmt.Sprintf("Farewell! You finish with %d gold.", s.player.Gold()),
			Quit:   true,
		}, nil
	default:
		return Result{}, fmt.Errorf("session: no handler for command %q", cmd.Name)
	}
}

func (s *Session) move(name string) (Result, error) {
	dir, err := board.ParseDirection(name)
	if err != nil {
		return Result{}, err
	}
	desc, err := s.board.MovePlayer(s.player, dir, s.clock.IsNight())
	switch {
	case errors.Is(err, board.ErrOutOfBounds):
		return Result{Output: "You can't go that way."}, nil
	case err != nil:
		return Result{}, err
	}
	return Result{Output: desc}, nil
}

func (s *Session) pickUp() (Result, error) {
	it, err := s.board.PickUpAt(s.player)
	switch {
	case errors.Is(err, board.ErrEmptyCell):
		return Result{Output: "There is nothing here to pick up."}, nil
	case errors.Is(err, character.ErrCategoryConflict):
		return Result{Output: "You already carry something of that kind."}, nil
	case errors.Is(err, character.ErrCapacityExceeded):
		return Result{Output: "That is too heavy to carry."}, nil
	case err != nil:
		return Result{}, err
	}
	return Result{Output: fmt.Sprintf("You pick up the %s.", it.Name())}, nil
}

func (s *Session) drop(args []string) (Result, error) {
	if len(args) == 0 {
		return Result{Output: "Usage: drop <index> (see 'inventory' for indices)."}, nil
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return Result{Output: fmt.Sprintf("%q is not an item index.", args[0])}, nil
	}

	it, err := s.player.RemoveItemAt(idx)
	switch {
	case errors.Is(err, character.ErrIndexOutOfRange):
		return Result{Output: "You carry no such item."}, nil
	case err != nil:
		return Result{}, err
	}

	if err := s.board.DropAt(s.player, it); err != nil {
		if !errors.Is(err, board.ErrCellOccupied) {
			return Result{}, err
		}
		// The square is taken, so the item goes back where it came from.
		if backErr := s.player.AddItemBack(it); backErr != nil {
			return Result{}, fmt.Errorf("returning %s to inventory: %w", it.Name(), backErr)
		}
		return Result{Output: "There is no room here to drop that."}, nil
	}
	return Result{Output: fmt.Sprintf("You drop the %s.", it.Name())}, nil
}

func (s *Session) attack() (Result, error) {
	report, err := s.board.AttackAt(s.player, s.clock.IsNight())
	switch {
	case errors.Is(err, board.ErrEmptyCell):
		return Result{Output: "There is nothing to attack here."}, nil
	case err != nil:
		return Result{}, err
	}

	var lines []string
	enemy := string(report.PlayerAttack.Target)
	switch {
	case report.PlayerAttack.Missed:
		lines = append(lines, fmt.Sprintf("You swing at the %s and miss.", enemy))
	case report.PlayerAttack.Defended:
		lines = append(lines, fmt.Sprintf("The %s defends itself; you get through for %d damage.", enemy, report.PlayerAttack.Residual))
	default:
		lines = append(lines, fmt.Sprintf("You hit the %s for %d damage.", enemy, report.PlayerAttack.Damage))
	}

	if report.PlayerAttack.TargetDefeated {
		lines = append(lines, fmt.Sprintf("The %s dies. You loot %d gold.", enemy, report.GoldReward))
		return Result{Output: strings.Join(lines, "\n")}, nil
	}

	if c := report.CounterAttack; c != nil {
		switch {
		case c.Missed:
			lines = append(lines, fmt.Sprintf("The %s strikes back and misses.", enemy))
		case c.Defended:
			lines = append(lines, fmt.Sprintf("The %s strikes back; you block most of it and take %d damage.", enemy, c.Residual))
		default:
			lines = append(lines, fmt.Sprintf("The %s strikes back for %d damage.", enemy, c.Damage))
		}
	}

	res := Result{Output: strings.Join(lines, "\n")}
	if report.PlayerDefeated {
		lines = append(lines, "You have been slain!")
		res.Output = strings.Join(lines, "\n")
		res.GameOver = true
	}
	return res, nil
}

// onPhaseFlip refreshes stats for the new phase: the player immediately,
// and the creature sharing the player's square. Every other creature is
// refreshed lazily on the next encounter.
func (s *Session) onPhaseFlip(res *Result) {
	night := s.clock.IsNight()
	s.player.UpdateForTime(night)
	x, y := s.player.Position()
	if cell := s.board.CellAt(x, y); cell.HasCreature() {
		cell.Creature().UpdateForTime(night)
	}
	if night {
		res.Output += "\nNight falls over the land."
	} else {
		res.Output += "\nThe sun rises."
	}
	s.logger.Debug("phase flipped", zap.String("phase", s.clock.Phase()))
}

func (s *Session) help() string {
	order := []string{
		command.CategoryMovement,
		command.CategoryWorld,
		command.CategoryCombat,
		command.CategorySystem,
	}
	cats := s.registry.CommandsByCategory()

	var b strings.Builder
	b.WriteString("Available commands:")
	for _, cat := range order {
		cmds := cats[cat]
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
		for _, cmd := range cmds {
			alias := ""
			if len(cmd.Aliases) > 0 {
				alias = fmt.Sprintf(" (%s)", strings.Join(cmd.Aliases, ", "))
			}
			fmt.Fprintf(&b, "\n  %-12s%s - %s", cmd.Name, alias, cmd.Help)
		}
	}
	return b.String()
}
