package menu_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPizza(t *testing.T) {
	t.Run("creates a valid pizza", func(t *testing.T) {
		id := kernel.NewUUID()
		price := decimal.NewFromFloat(8.00)

		pizza, err := menu.NewPizza(id, "Margherita", "Pomodoro, mozzarella, basilico", price, true)

		require.NoError(t, err)
		assert.True(t, pizza.ID().IsEqual(id))
		assert.Equal(t, "Margherita", pizza.Name())
		assert.Equal(t, "Pomodoro, mozzarella, basilico", pizza.Description())
		assert.True(t, pizza.Price().Equal(price))
		assert.True(t, pizza.Available())
		require.NoError(t, pizza.Validate())
	})

	t.Run("rejects invalid ID", func(t *testing.T) {
		var zeroID kernel.UUID
		_, err := menu.NewPizza(zeroID, "Margherita", "", decimal.NewFromInt(8), true)

		require.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := menu.NewPizza(kernel.NewUUID(), "", "", decimal.NewFromInt(8), true)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		for _, price := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-1)} {
			_, err := menu.NewPizza(kernel.NewUUID(), "Margherita", "", price, true)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestPizza_Validate(t *testing.T) {
	t.Run("nil pizza is invalid", func(t *testing.T) {
		var p *menu.Pizza
		require.ErrorIs(t, p.Validate(), menu.ErrPizzaIsNotConstructed)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		p := &menu.Pizza{}
		require.ErrorIs(t, p.Validate(), menu.ErrPizzaIsNotConstructed)
	})
}
