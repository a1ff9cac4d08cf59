// Package main runs the interactive single-player grid game. It wires
// together configuration, content, the board, and the command session.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gridquest/internal/config"
	"github.com/cory-johannsen/gridquest/internal/game/board"
	"github.com/cory-johannsen/gridquest/internal/game/character"
	"github.com/cory-johannsen/gridquest/internal/game/clock"
	"github.com/cory-johannsen/gridquest/internal/game/dice"
	"github.com/cory-johannsen/gridquest/internal/game/item"
	"github.com/cory-johannsen/gridquest/internal/game/race"
	"github.com/cory-johannsen/gridquest/internal/game/session"
	"github.com/cory-johannsen/gridquest/internal/observability"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// Initialize logger
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting gridquest",
		zap.Int("board_width", cfg.Board.Width),
		zap.Int("board_height", cfg.Board.Height),
		zap.String("player_race", cfg.Player.Race),
	)

	// Load content: races and items, falling back to the built-ins when no
	// paths are configured.
	races := race.DefaultTable()
	if cfg.Content.RacesFile != "" {
		races, err = race.LoadTable(cfg.Content.RacesFile)
		if err != nil {
			logger.Fatal("loading races", zap.Error(err))
		}
	}
	items := item.NewDefaultRegistry()
	if cfg.Content.ItemsDir != "" {
		defs, err := item.LoadDefs(cfg.Content.ItemsDir)
		if err != nil {
			logger.Fatal("loading items", zap.Error(err))
		}
		items = item.NewRegistry()
		for _, def := range defs {
			if err := items.Register(def); err != nil {
				logger.Fatal("registering item", zap.String("id", def.ID), zap.Error(err))
			}
		}
	}
	logger.Info("content loaded",
		zap.Int("races", len(race.All)),
		zap.Int("items", items.Len()),
	)

	// Build the world
	src := dice.NewLoggedSource(dice.NewCryptoSource(), logger)
	factory, err := item.NewFactory(items, src)
	if err != nil {
		logger.Fatal("building item factory", zap.Error(err))
	}

	playerRace, err := race.Parse(cfg.Player.Race)
	if err != nil {
		logger.Fatal("parsing player race", zap.Error(err))
	}
	playerDef, ok := races.Lookup(playerRace)
	if !ok {
		logger.Fatal("race missing from table", zap.String("race", string(playerRace)))
	}
	player := character.NewPlayer(playerRace, playerDef, 0, 0)

	b, err := board.New(cfg.Board.Width, cfg.Board.Height, factory, func() *character.Creature {
		return character.RandomCreature(races, src)
	}, src, logger)
	if err != nil {
		logger.Fatal("building board", zap.Error(err))
	}

	gameClock, err := clock.New(cfg.Game.CommandsPerTimeSwitch)
	if err != nil {
		logger.Fatal("building clock", zap.Error(err))
	}

	// The player's starting square stays clear; Populate fills the rest.
	b.Populate(gameClock.IsNight())
	if cell := b.CellAt(0, 0); cell.HasCreature() || cell.HasItem() {
		cell.TakeCreature()
		cell.TakeItem()
	}

	sess, err := session.New(b, player, gameClock, logger)
	if err != nil {
		logger.Fatal("building session", zap.Error(err))
	}

	fmt.Printf("Welcome, %s! Type 'help' for a list of commands.\n", player.Name())
	if err := run(sess); err != nil {
		logger.Fatal("game loop", zap.Error(err))
	}
	logger.Info("game over", zap.Int("gold", player.Gold()))
}

func run(sess *session.Session) error {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		res, err := sess.Execute(scanner.Text())
		if err != nil {
			return err
		}
		if res.Output != "" {
			fmt.Println(res.Output)
		}
		if res.Quit {
			return nil
		}
		if res.GameOver {
			fmt.Printf("You are dead. You earned %d gold.\n", sess.Player().Gold())
			return nil
		}
	}
}
