package order

import (
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// Item is a value object describing one line of an order: which pizza,
// how many, and an optional free-text note for the kitchen.
//
// Items are fixed at order creation. The pizza name is resolved against
// the catalog when the order is created and carried on the item, so the
// order remains a faithful historical record even if the menu changes.
type Item struct {
	pizzaID   kernel.UUID
	pizzaName string
	quantity  int
	notes     string

	isConstructed bool
}

// NewItem creates a validated order line.
// The pizza ID must be valid, the name non-empty, and quantity at least 1.
// Notes are optional and may be empty.
func NewItem(pizzaID kernel.UUID, pizzaName string, quantity int, notes string) (Item, error) {
	if err := pizzaID.Validate(); err != nil {
		return Item{}, err
	}
	if pizzaName == "" {
		return Item{}, errs.NewValueIsRequiredError("pizza name")
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Item{
		pizzaID:       pizzaID,
		pizzaName:     pizzaName,
		quantity:      quantity,
		notes:         notes,
		isConstructed: true,
	}, nil
}

// PizzaID returns the catalog identity of the ordered pizza.
func (i Item) PizzaID() kernel.UUID {
	return i.pizzaID
}

// PizzaName returns the pizza name as resolved at order creation.
func (i Item) PizzaName() string {
	return i.pizzaName
}

// Quantity returns how many of this pizza were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Notes returns the optional kitchen note, empty when none was given.
func (i Item) Notes() string {
	return i.notes
}

// Validate ensures the item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}
