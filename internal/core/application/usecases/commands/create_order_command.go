package commands

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLineIsNotConstructed = errors.New(
		"OrderLine must be created via NewOrderLine constructor",
	)
)

// OrderLine is one requested line of a new order: which pizza, how many,
// and an optional note. At this point the pizza is only a reference; it is
// resolved against the catalog by the handler.
type OrderLine struct {
	pizzaID  kernel.UUID
	quantity int
	notes    string

	guard guard.ConstructorGuard
}

// NewOrderLine creates a validated order line request.
// The pizza ID must be valid and quantity at least 1; notes may be empty.
func NewOrderLine(pizzaID kernel.UUID, quantity int, notes string) (OrderLine, error) {
	if err := pizzaID.Validate(); err != nil {
		return OrderLine{}, err
	}
	if quantity < 1 {
		return OrderLine{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return OrderLine{
		pizzaID:  pizzaID,
		quantity: quantity,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line was created through the constructor.
func (l OrderLine) Validate() error {
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// PizzaID returns the referenced catalog identity.
func (l OrderLine) PizzaID() kernel.UUID {
	return l.pizzaID
}

// Quantity returns the requested quantity.
func (l OrderLine) Quantity() int {
	return l.quantity
}

// Notes returns the optional kitchen note.
func (l OrderLine) Notes() string {
	return l.notes
}

// CreateOrderCommand represents a customer's request to place a new order.
// An order needs at least one line; lines are fixed once the command is built.
//
// Example:
//
//	line, err := NewOrderLine(pizzaID, 2, "Extra cheese")
//	if err != nil {
//	    return fmt.Errorf("invalid line: %w", err)
//	}
//	cmd, err := NewCreateOrderCommand([]OrderLine{line})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct {
	lines []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that at least one line is present and every line was built via
// NewOrderLine.
func NewCreateOrderCommand(lines []OrderLine) (CreateOrderCommand, error) {
	if len(lines) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
	}

	cmd := CreateOrderCommand{
		lines: make([]OrderLine, len(lines)),
		guard: guard.NewConstructorGuard(),
	}
	copy(cmd.lines, lines)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Lines returns a copy of the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}
