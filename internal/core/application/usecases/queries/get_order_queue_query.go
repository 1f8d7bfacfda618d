package queries

import (
	"errors"
	"time"

	"pizzeria/internal/pkg/guard"
)

var ErrGetOrderQueueQueryIsNotConstructed = errors.New(
	"GetOrderQueueQuery must be created via NewGetOrderQueueQuery constructor",
)

// GetOrderQueueQuery retrieves the active queue: every order that still needs
// kitchen attention, in the order the pizzaiolo will work through it.
// Completed orders are excluded.
//
// Example:
//
//	query := NewGetOrderQueueQuery()
//	handler := NewGetOrderQueueQueryHandler(db)
//
//	queue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get queue: %w", err)
//	}
//
//	for i, entry := range queue {
//	    fmt.Printf("%d. %s [%s]\n", i+1, entry.Code, entry.Status)
//	}
type GetOrderQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderQueueQuery creates a query for the active order queue.
// This is a parameterless query that fetches all non-completed orders.
func NewGetOrderQueueQuery() GetOrderQueueQuery {
	return GetOrderQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueueQueryIsNotConstructed if validation fails.
func (q GetOrderQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueueQueryIsNotConstructed)
}

// GetOrderQueueQueryItem is a single pizza line within a queued order.
type GetOrderQueueQueryItem struct {
	PizzaName string
	Quantity  int
	Notes     string
}

// GetOrderQueueQueryResponse is one entry of the active queue. Entries are
// returned oldest-first so index zero is the next order to be claimed when
// its status is still Pending.
type GetOrderQueueQueryResponse struct {
	Code      string
	Status    string
	CreatedAt time.Time
	StartedAt *time.Time
	Items     []GetOrderQueueQueryItem
}
