package queries

import (
	"context"
	"database/sql"
	"time"

	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueueQueryHandler retrieves the active queue from the database.
// Reads the order and item tables directly; the queue is a monitoring view
// and does not need fully restored aggregates.
type GetOrderQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueueQueryHandler creates a handler for queue queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueueQueryHandler(db *gorm.DB) GetOrderQueueQueryHandler {
	return GetOrderQueueQueryHandler{db: db}
}

// Handle executes the queue query. Returns all orders in Pending,
// InPreparation or Ready status, oldest first, with ties broken by insertion
// order so the view matches what take-next will actually claim.
func (h GetOrderQueueQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQueueQuery,
) ([]GetOrderQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetOrderQueueQueryResponse, 0)
	entryIndex := make(map[uuid.UUID]int)
	orderIDs := make([]uuid.UUID, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			status,
			created_at,
			started_at
		FROM orders
		WHERE status IN (?, ?, ?)
		ORDER BY created_at ASC, seq ASC
	`, order.Pending, order.InPreparation, order.Ready).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var code string
		var statusValue int
		var createdAt time.Time
		var startedAt sql.NullTime

		err = rows.Scan(&id, &code, &statusValue, &createdAt, &startedAt)
		if err != nil {
			return nil, err
		}

		status := order.Status(statusValue)
		if err = status.Validate(); err != nil {
			return nil, err
		}

		entry := GetOrderQueueQueryResponse{
			Code:      code,
			Status:    status.String(),
			CreatedAt: createdAt,
			Items:     make([]GetOrderQueueQueryItem, 0),
		}
		if startedAt.Valid {
			started := startedAt.Time
			entry.StartedAt = &started
		}

		entryIndex[id] = len(entries)
		entries = append(entries, entry)
		orderIDs = append(orderIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return entries, nil
	}

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			pizza_name,
			quantity,
			notes
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID uuid.UUID
		var item GetOrderQueueQueryItem

		err = itemRows.Scan(&orderID, &item.PizzaName, &item.Quantity, &item.Notes)
		if err != nil {
			return nil, err
		}

		if idx, ok := entryIndex[orderID]; ok {
			entries[idx].Items = append(entries[idx].Items, item)
		}
	}

	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
