package commands

import (
	"context"
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// ErrPizzaNotFound is returned when an order line references a pizza that does
// not exist in the catalog. The whole creation fails and nothing is persisted.
var ErrPizzaNotFound = errors.New("pizza not found")

// maxCodeAttempts bounds regeneration when a freshly generated tracking code
// collides with an existing order. Collisions at 8 characters are rare but
// possible; three attempts make the chance of overall failure negligible.
const maxCodeAttempts = 3

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves every order line against the pizza catalog, generates a tracking
// code, and persists the new order in Pending status — all atomically: if any
// reference fails to resolve, no order record is written.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	line, _ := NewOrderLine(pizzaID, 2, "Extra cheese")
//	cmd, _ := NewCreateOrderCommand([]OrderLine{line})
//
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrPizzaNotFound) {
//	    // client referenced an unknown pizza
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory because creation reads the catalog and writes the order
// in one transaction.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the persisted order.
//
// Each attempt runs in its own transaction: a tracking-code collision aborts
// the transaction, so the handler rolls back and retries with a fresh code
// rather than reusing the poisoned transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		created, err := h.attempt(ctx, cmd)
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			lastErr = err
			continue
		}
		return created, err
	}

	return nil, lastErr
}

func (h *CreateOrderCommandHandler) attempt(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pizzaRepo := uow.PizzaRepository()
	items := make([]order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		pizza, err := pizzaRepo.Get(ctx, line.PizzaID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPizzaNotFound, line.PizzaID())
		}
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(pizza.ID(), pizza.Name(), line.Quantity(), line.Notes())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewTrackingCode(), items)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
