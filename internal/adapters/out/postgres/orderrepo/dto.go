// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
//
// Code carries a unique index: the tracking code is the public identifier and
// the database is the final arbiter of its uniqueness. Seq is a database-
// assigned serial used as the FIFO tie-breaker when two orders share a
// created_at timestamp; it is never written by the application. Version backs
// the optimistic concurrency check in Update.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"type:varchar(8);uniqueIndex;not null"`
	Status      int       `gorm:"index;not null"`
	CreatedAt   time.Time `gorm:"not null"`
	StartedAt   *time.Time
	CompletedAt *time.Time
	Version     int            `gorm:"not null"`
	Seq         int64          `gorm:"type:bigserial;uniqueIndex;<-:false"`
	Items       []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a single pizza line within an order. Lines are
// immutable after creation; the serial primary key preserves insertion order.
type OrderItemDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	PizzaID   uuid.UUID `gorm:"type:uuid;not null"`
	PizzaName string    `gorm:"not null"`
	Quantity  int       `gorm:"not null"`
	Notes     string
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			PizzaID:   item.PizzaID().Bytes(),
			PizzaName: item.PizzaName(),
			Quantity:  item.Quantity(),
			Notes:     item.Notes(),
		})
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		Code:        aggregate.Code().String(),
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
		StartedAt:   aggregate.StartedAt(),
		CompletedAt: aggregate.CompletedAt(),
		Version:     aggregate.Version(),
		Items:       items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and timestamps using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := kernel.TrackingCodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		pizzaID, itemErr := kernel.UUIDFromBytes(itemDTO.PizzaID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(pizzaID, itemDTO.PizzaName, itemDTO.Quantity, itemDTO.Notes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		code,
		items,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.StartedAt,
		dto.CompletedAt,
		dto.Version,
	)
}
