package commands

import (
	"context"
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// ErrNoPendingOrders is returned when the queue holds no Pending orders,
// either immediately or after the queue drained while claim retries were in
// flight. It is deliberately distinct from an unknown-code lookup failure so
// callers can tell an empty queue from a bad code, even though both surface
// as not-found conditions.
var ErrNoPendingOrders = errors.New("no pending orders in queue")

// maxClaimAttempts bounds re-selection when an optimistic claim loses the race
// against a concurrent take-next call.
const maxClaimAttempts = 3

// TakeNextOrderCommandHandler claims the oldest pending order for the kitchen.
//
// The claim must be at-most-once per order: two concurrent calls must never
// both take the same order. Each attempt re-selects the queue head, moves it
// to InPreparation (stamping startedAt), and writes through the repository's
// compare-and-swap update. Losing the swap means another caller claimed the
// order first; the handler re-selects and tries again up to maxClaimAttempts.
//
// Example:
//
//	handler := NewTakeNextOrderCommandHandler(uowFactory)
//	claimed, err := handler.Handle(ctx, NewTakeNextOrderCommand())
//	switch {
//	case errors.Is(err, ErrNoPendingOrders):
//	    log.Println("Queue is empty")
//	case err != nil:
//	    log.Printf("Claim failed: %v", err)
//	default:
//	    log.Printf("Preparing order %s", claimed.Code())
//	}
type TakeNextOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTakeNextOrderCommandHandler creates a handler for claiming queue heads.
// Requires an OrderUoWFactory for transactional persistence.
func NewTakeNextOrderCommandHandler(uowFactory OrderUoWFactory) TakeNextOrderCommandHandler {
	return TakeNextOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the take-next command and returns the claimed order with
// status InPreparation and startedAt stamped.
//
// Returns ErrNoPendingOrders when no Pending order exists (including when the
// queue drains during conflict retries). A claim conflict that persists past
// the retry bound is returned as-is; it indicates contention beyond what the
// bound absorbs, not an empty queue.
func (h *TakeNextOrderCommandHandler) Handle(ctx context.Context, cmd TakeNextOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < maxClaimAttempts; attempt++ {
		claimed, err := h.claim(ctx)
		if errors.Is(err, errs.ErrVersionConflict) {
			lastErr = err
			continue
		}
		return claimed, err
	}

	return nil, lastErr
}

func (h *TakeNextOrderCommandHandler) claim(ctx context.Context) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	next, err := orderRepo.GetFirstPending(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNoPendingOrders
	}
	if err != nil {
		return nil, err
	}

	if err = next.StartPreparation(time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, next); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return next, nil
}
