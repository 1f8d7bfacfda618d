package queries

import (
	"context"
	"database/sql"
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler reads an order's status straight from the
// database, bypassing the aggregate. Status lookups are the hottest read in
// the system and need none of the aggregate's invariant machinery.
type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusQueryHandler creates a handler for status lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle executes the status lookup for the query's tracking code.
// Returns an error unwrapping to errs.ErrObjectNotFound when no order has
// the code.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	var statusValue int
	row := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM orders
		WHERE code = ?
	`, query.Code().String()).Row()

	err := row.Scan(&statusValue)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderStatusQueryResponse{},
			errs.NewObjectNotFoundError("code", query.Code())
	}
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	status := order.Status(statusValue)
	if err = status.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	return GetOrderStatusQueryResponse{
		Code:        query.Code().String(),
		Status:      status.String(),
		Description: status.Description(),
		Message:     status.CustomerMessage(),
	}, nil
}
