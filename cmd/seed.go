package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"pizzeria/internal/adapters/out/postgres/pizzarepo"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedMenu populates the pizza catalog with the house menu on first start.
// A non-empty catalog is left untouched so operator edits survive restarts.
func SeedMenu(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	repo := pizzarepo.NewGormPizzaRepository(db)

	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pizzas: %w", err)
	}
	if count > 0 {
		logger.InfoContext(ctx, "Menu already seeded", "pizzas", count)
		return nil
	}

	houseMenu := []struct {
		name        string
		description string
		price       string
	}{
		{"Margherita", "Tomato, mozzarella, fresh basil", "8.50"},
		{"Marinara", "Tomato, garlic, oregano, extra virgin olive oil", "7.00"},
		{"Quattro Stagioni", "Tomato, mozzarella, artichokes, ham, mushrooms, olives", "10.50"},
		{"Diavola", "Tomato, mozzarella, spicy salami", "9.00"},
	}

	for _, entry := range houseMenu {
		pizza, err := menu.NewPizza(
			kernel.NewUUID(),
			entry.name,
			entry.description,
			decimal.RequireFromString(entry.price),
			true,
		)
		if err != nil {
			return fmt.Errorf("failed to build pizza %q: %w", entry.name, err)
		}

		if err := repo.Add(ctx, pizza); err != nil {
			return fmt.Errorf("failed to seed pizza %q: %w", entry.name, err)
		}
	}

	logger.InfoContext(ctx, "Menu seeded", "pizzas", len(houseMenu))
	return nil
}
