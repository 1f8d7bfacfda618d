package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
)

// PizzaRepository defines the persistence contract for the pizza catalog.
// Order creation resolves item references against it; the lifecycle logic
// never writes to it.
type PizzaRepository interface {
	// Add persists a new catalog entry. Used by menu seeding at startup.
	Add(ctx context.Context, pizza *menu.Pizza) error

	// Get retrieves a pizza by its unique identifier.
	// Returns an error unwrapping to errs.ErrObjectNotFound when the
	// referenced pizza does not exist.
	Get(ctx context.Context, id kernel.UUID) (*menu.Pizza, error)

	// GetAllAvailable retrieves the pizzas currently offered on the menu.
	GetAllAvailable(ctx context.Context) ([]*menu.Pizza, error)

	// Count reports how many catalog entries exist, available or not.
	Count(ctx context.Context) (int64, error)
}
