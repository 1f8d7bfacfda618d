package pizzarepo

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPizzaRepository implements PizzaRepository using GORM.
type GormPizzaRepository struct {
	db *gorm.DB
}

// NewGormPizzaRepository creates a new GORM pizza repository.
func NewGormPizzaRepository(db *gorm.DB) *GormPizzaRepository {
	return &GormPizzaRepository{db: db}
}

// Add saves a new pizza to the catalog.
// Returns an error unwrapping to errs.ErrObjectAlreadyExists when a pizza
// with the same name already exists.
func (r *GormPizzaRepository) Add(ctx context.Context, pizza *menu.Pizza) error {
	if err := pizza.Validate(); err != nil {
		return err
	}

	dto := fromDomain(pizza)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("name", pizza.Name(), err)
		}
		return err
	}

	return nil
}

// Get retrieves a pizza by ID.
func (r *GormPizzaRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Pizza, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PizzaDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pizza", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves the orderable menu, sorted by name.
func (r *GormPizzaRepository) GetAllAvailable(ctx context.Context) ([]*menu.Pizza, error) {
	var dtos []PizzaDTO
	err := r.db.WithContext(ctx).
		Where("available").
		Order("name ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	pizzas := make([]*menu.Pizza, 0, len(dtos))
	for _, dto := range dtos {
		pizza, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		pizzas = append(pizzas, pizza)
	}

	return pizzas, nil
}

// Count returns the total number of pizzas in the catalog, available or not.
// Used by startup seeding to decide whether the catalog is empty.
func (r *GormPizzaRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&PizzaDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
