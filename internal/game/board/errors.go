package board

import "errors"

// Grid rule violations. All are non-fatal: the operation is rejected and no
// state changes.
var (
	// ErrUnknownDirection rejects a movement command that is not N/S/E/W.
	ErrUnknownDirection = errors.New("unknown direction")
	// ErrOutOfBounds rejects movement off the edge of the board.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrEmptyCell rejects a pickup or attack where no matching occupant exists.
	ErrEmptyCell = errors.New("nothing here")
	// ErrCellOccupied rejects placing into a cell whose slot is already taken.
	ErrCellOccupied = errors.New("cell already occupied")
)
