package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrMarkOrderReadyCommandIsNotConstructed = errors.New(
	"MarkOrderReadyCommand must be created via NewMarkOrderReadyCommand constructor",
)

// MarkOrderReadyCommand is the staff request to mark an order as ready for
// pickup, identified by its public tracking code.
type MarkOrderReadyCommand struct {
	code kernel.TrackingCode

	guard guard.ConstructorGuard
}

// NewMarkOrderReadyCommand creates a command to mark the order with the given
// code as ready. The code must be a constructed TrackingCode.
func NewMarkOrderReadyCommand(code kernel.TrackingCode) (MarkOrderReadyCommand, error) {
	if err := code.Validate(); err != nil {
		return MarkOrderReadyCommand{}, err
	}

	return MarkOrderReadyCommand{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReadyCommandIsNotConstructed)
}

// Code returns the tracking code of the order to mark ready.
func (c MarkOrderReadyCommand) Code() kernel.TrackingCode {
	return c.code
}
