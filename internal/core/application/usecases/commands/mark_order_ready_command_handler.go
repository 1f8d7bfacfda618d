package commands

import (
	"context"
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// ErrOrderNotFound is returned when a code-addressed staff operation finds no
// order with the given tracking code.
var ErrOrderNotFound = errors.New("order not found")

// getOrderByCode looks an order up by code, translating the repository's
// not-found into the command-level ErrOrderNotFound with the code attached.
func getOrderByCode(ctx context.Context, repo ports.OrderRepository, code kernel.TrackingCode) (*order.Order, error) {
	found, err := repo.GetByCode(ctx, code)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, code)
	}
	if err != nil {
		return nil, err
	}
	return found, nil
}

// MarkOrderReadyCommandHandler moves an order from InPreparation to Ready.
// No timestamp is stamped for this transition. A repeated call fails with an
// illegal-transition error because the state has already advanced; that is
// intentional and protects against double-processing.
type MarkOrderReadyCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderReadyCommandHandler creates a handler for the ready transition.
// Requires an OrderUoWFactory for transactional persistence.
func NewMarkOrderReadyCommandHandler(uowFactory OrderUoWFactory) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-ready command and returns the updated order.
//
// Returns ErrOrderNotFound when no order has the command's code, and an error
// unwrapping to errs.ErrIllegalTransition (carrying the rejected pair) when
// the order is not InPreparation. The read-validate-write sequence is atomic
// with respect to concurrent mutators of the same order via the repository's
// version check.
func (h *MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) (*order.Order, error) {
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

	if err = found.MarkReady(); err != nil {
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
