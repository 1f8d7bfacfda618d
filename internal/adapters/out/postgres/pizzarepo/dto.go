// Package pizzarepo provides data transfer objects and mapping functions for
// the pizza catalog. Catalog rows map one-to-one onto the Pizza entity.
package pizzarepo

import (
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PizzaDTO represents the database structure for persisting catalog pizzas.
// Name carries a unique index so the menu cannot list the same pizza twice.
type PizzaDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Available   bool            `gorm:"not null"`
}

// TableName specifies the database table name for pizza entities.
func (PizzaDTO) TableName() string {
	return "pizzas"
}

func fromDomain(pizza *menu.Pizza) PizzaDTO {
	return PizzaDTO{
		ID:          pizza.ID().Bytes(),
		Name:        pizza.Name(),
		Description: pizza.Description(),
		Price:       pizza.Price(),
		Available:   pizza.Available(),
	}
}

func toDomain(dto PizzaDTO) (*menu.Pizza, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.NewPizza(id, dto.Name, dto.Description, dto.Price, dto.Available)
}
