// Package menu contains the pizza catalog entity. The catalog is the
// collaborator order creation resolves item references against; the order
// lifecycle never mutates it.
package menu

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPizzaIsNotConstructed is returned when a Pizza instance was not created
// through the NewPizza constructor.
var ErrPizzaIsNotConstructed = errors.New("Pizza must be created via NewPizza constructor")

// Pizza is a catalog entry customers can order.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Price must be positive
type Pizza struct {
	id          kernel.UUID
	name        string
	description string
	price       decimal.Decimal
	available   bool

	isConstructed bool
}

// NewPizza creates a validated catalog entry.
func NewPizza(id kernel.UUID, name, description string, price decimal.Decimal, available bool) (*Pizza, error) {
	pizza := &Pizza{
		description:   description,
		available:     available,
		isConstructed: true,
	}

	if err := errors.Join(
		pizza.setID(id),
		pizza.setName(name),
		pizza.setPrice(price),
	); err != nil {
		return nil, err
	}

	return pizza, nil
}

// Validate ensures the Pizza instance was properly constructed.
func (p *Pizza) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPizzaIsNotConstructed
	}

	return nil
}

// ID returns the pizza's unique identifier.
func (p *Pizza) ID() kernel.UUID {
	return p.id
}

// Name returns the pizza's display name.
func (p *Pizza) Name() string {
	return p.name
}

// Description returns the list of toppings shown on the menu.
func (p *Pizza) Description() string {
	return p.description
}

// Price returns the menu price.
func (p *Pizza) Price() decimal.Decimal {
	return p.price
}

// Available reports whether the pizza can currently be ordered.
func (p *Pizza) Available() bool {
	return p.available
}

func (p *Pizza) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pizza) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("pizza name")
	}
	p.name = name
	return nil
}

func (p *Pizza) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is not greater than 0", price))
	}
	p.price = price
	return nil
}
