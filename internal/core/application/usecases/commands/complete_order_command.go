package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand is the staff request to hand over a ready order,
// identified by its public tracking code.
type CompleteOrderCommand struct {
	code kernel.TrackingCode

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete the order with the
// given code. The code must be a constructed TrackingCode.
func NewCompleteOrderCommand(code kernel.TrackingCode) (CompleteOrderCommand, error) {
	if err := code.Validate(); err != nil {
		return CompleteOrderCommand{}, err
	}

	return CompleteOrderCommand{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// Code returns the tracking code of the order to complete.
func (c CompleteOrderCommand) Code() kernel.TrackingCode {
	return c.code
}
