// Package ports defines repository interfaces for the pizzeria domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Retrieval methods that return multiple orders always order by creation time
// ascending, with insertion order as the tie-break for identical timestamps.
// That ordering is the FIFO contract the queue selection logic depends on.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Returns an error unwrapping to errs.ErrObjectAlreadyExists when the
	// order's tracking code collides with an existing one; callers are
	// expected to regenerate the code and retry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The write is a compare-and-swap on the aggregate's version: if a
	// concurrent operation has modified the order since it was loaded,
	// Update returns an error unwrapping to errs.ErrVersionConflict and
	// persists nothing.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByCode retrieves an order by its public tracking code.
	// Returns an error unwrapping to errs.ErrObjectNotFound when no order
	// has that code.
	GetByCode(ctx context.Context, code kernel.TrackingCode) (*order.Order, error)

	// GetFirstPending retrieves the oldest order in Pending status: the
	// next order the kitchen should take. Ties on creation time resolve
	// to the order persisted first.
	// Returns an error unwrapping to errs.ErrObjectNotFound when the
	// queue is empty.
	GetFirstPending(ctx context.Context) (*order.Order, error)

	// GetAllInStatuses retrieves all orders whose status is one of the
	// given statuses, as a single merged view ordered by creation time
	// ascending (not grouped by status).
	GetAllInStatuses(ctx context.Context, statuses []order.Status) ([]*order.Order, error)
}
