package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var ErrTakeNextOrderCommandIsNotConstructed = errors.New(
	"TakeNextOrderCommand must be created via NewTakeNextOrderCommand constructor",
)

// TakeNextOrderCommand is the staff request to claim the next order from the
// queue. It carries no parameters: the queue selection rule (oldest Pending,
// first-persisted on ties) determines which order is claimed.
type TakeNextOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewTakeNextOrderCommand creates a command to claim the next pending order.
func NewTakeNextOrderCommand() TakeNextOrderCommand {
	return TakeNextOrderCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c TakeNextOrderCommand) Validate() error {
	return c.guard.Validate(ErrTakeNextOrderCommandIsNotConstructed)
}
