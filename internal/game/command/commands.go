// Package command provides the command registry, parser, and built-in command definitions.
package command

// Categories for organizing commands.
const (
	CategoryMovement = "movement"
	CategoryWorld    = "world"
	CategoryCombat   = "combat"
	CategorySystem   = "system"
)

// Handler identifiers mapping commands to session actions.
const (
	HandlerMove      = "move"
	HandlerLook      = "look"
	HandlerGet       = "get"
	HandlerDrop      = "drop"
	HandlerAttack    = "attack"
	HandlerInventory = "inventory"
	HandlerStats     = "stats"
	HandlerMap       = "map"
	HandlerHelp      = "help"
	HandlerQuit      = "quit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command (movement, world, combat, system).
	Category string
	// Handler maps to the session action that executes the command.
	Handler string
}

// BuiltinCommands returns all built-in commands for the game.
func BuiltinCommands() []Command {
	return []Command{
		// Movement commands
		{Name: "north", Aliases: []string{"n"}, Help: "Move north", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "south", Aliases: []string{"s"}, Help: "Move south", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "east", Aliases: []string{"e"}, Help: "Move east", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "west", Aliases: []string{"w"}, Help: "Move west", Category: CategoryMovement, Handler: HandlerMove},

		// World commands
		{Name: "look", Aliases: []string{"l"}, Help: "Look at the current square", Category: CategoryWorld, Handler: HandlerLook},
		{Name: "get", Aliases: []string{"p", "take"}, Help: "Pick up the item on the current square", Category: CategoryWorld, Handler: HandlerGet},
		{Name: "drop", Aliases: []string{"d"}, Help: "Drop an inventory item (drop <index>)", Category: CategoryWorld, Handler: HandlerDrop},
		{Name: "inventory", Aliases: []string{"inv", "i"}, Help: "Show carried items and weight", Category: CategoryWorld, Handler: HandlerInventory},
		{Name: "map", Aliases: []string{"m"}, Help: "Show the board layout", Category: CategoryWorld, Handler: HandlerMap},

		// Combat commands
		{Name: "attack", Aliases: []string{"a", "kill"}, Help: "Attack the enemy on the current square", Category: CategoryCombat, Handler: HandlerAttack},
		{Name: "stats", Aliases: []string{"st"}, Help: "Show your character stats", Category: CategoryCombat, Handler: HandlerStats},

		// System commands
		{Name: "help", Aliases: []string{"?"}, Help: "Show available commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"x", "exit"}, Help: "End the game", Category: CategorySystem, Handler: HandlerQuit},
	}
}

// IsMovementCommand reports whether the command name is a movement direction.
func IsMovementCommand(name string) bool {
	switch name {
	case "north", "south", "east", "west":
		return true
	default:
		return false
	}
}
