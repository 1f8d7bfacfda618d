package commands

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler moves an order from Ready to Completed and
// stamps completedAt. Completed orders are terminal and remain as historical
// records; there is no outgoing transition.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for the completion transition.
// Requires an OrderUoWFactory for transactional persistence.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command and returns the updated order.
//
// Returns ErrOrderNotFound when no order has the command's code, and an error
// unwrapping to errs.ErrIllegalTransition when the order is not Ready.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	found, err := getOrderByCode(ctx, orderRepo, cmd.Code())
	if err != nil {
		return nil, err
	}

	if err = found.Complete(time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, found); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return found, nil
}
