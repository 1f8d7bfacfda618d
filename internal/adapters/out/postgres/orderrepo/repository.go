package orderrepo

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and its lines to the database.
// Returns an error unwrapping to errs.ErrObjectAlreadyExists when the
// tracking code is already taken; callers regenerate the code and retry.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("code", aggregate.Code().String(), err)
		}
		return err
	}

	return nil
}

// Update saves an existing order using an optimistic concurrency check.
// The row is matched on both id and the version the aggregate was loaded
// with; a zero-row update means another transaction claimed the order first
// and surfaces as an error unwrapping to errs.ErrVersionConflict.
//
// Order lines are immutable after creation and are not touched here.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":       dto.Status,
			"started_at":   dto.StartedAt,
			"completed_at": dto.CompletedAt,
			"version":      dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionConflictError("order", aggregate.ID().String())
	}

	return nil
}

// orderedItems preloads order lines in insertion order so views render lines
// the way the customer entered them.
func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// GetByCode retrieves an order by its public tracking code.
func (r *GormOrderRepository) GetByCode(ctx context.Context, code kernel.TrackingCode) (*order.Order, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items", orderedItems).
		First(&dto, "code = ?", code.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("code", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstPending retrieves the head of the FIFO queue: the oldest order in
// Pending status, with equal timestamps broken by insertion order.
func (r *GormOrderRepository) GetFirstPending(ctx context.Context) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items", orderedItems).
		Where("status = ?", order.Pending).
		Order("created_at ASC, seq ASC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "first pending")
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatuses retrieves all orders in any of the given statuses, oldest
// first with insertion-order tie-break, matching the queue the kitchen works
// through.
func (r *GormOrderRepository) GetAllInStatuses(ctx context.Context, statuses []order.Status) ([]*order.Order, error) {
	values := make([]int, 0, len(statuses))
	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return nil, err
		}
		values = append(values, int(status))
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items", orderedItems).
		Where("status IN ?", values).
		Order("created_at ASC, seq ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
