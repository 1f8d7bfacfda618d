package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery retrieves the current status of an order by its public
// tracking code. This is the customer-facing read: the caller knows only the
// code, never the internal order ID.
//
// Example:
//
//	code, _ := kernel.TrackingCodeFromString("A1B2C3D4")
//	query, _ := NewGetOrderStatusQuery(code)
//	handler := NewGetOrderStatusQueryHandler(db)
//
//	status, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order status: %w", err)
//	}
//
//	fmt.Printf("Order %s: %s\n", status.Code, status.Message)
type GetOrderStatusQuery struct {
	code  kernel.TrackingCode
	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a status query for the given tracking code.
func NewGetOrderStatusQuery(code kernel.TrackingCode) (GetOrderStatusQuery, error) {
	if err := code.Validate(); err != nil {
		return GetOrderStatusQuery{}, err
	}

	return GetOrderStatusQuery{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatusQueryIsNotConstructed if validation fails.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// Code returns the tracking code being looked up.
func (q GetOrderStatusQuery) Code() kernel.TrackingCode {
	return q.code
}

// GetOrderStatusQueryResponse is the customer-facing status view of an order.
// Status carries the wire name, Description the short human label, and
// Message the friendly sentence shown to the customer.
type GetOrderStatusQueryResponse struct {
	Code        string
	Status      string
	Description string
	Message     string
}
