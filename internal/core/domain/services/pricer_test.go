package services_test

import (
	"testing"

	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	return m
}

func mustSelection(t *testing.T, name, choice string) order.SelectedOption {
	t.Helper()
	sel, err := order.NewSelectedOption(name, choice)
	require.NoError(t, err)
	return sel
}

func newDish(t *testing.T, priceCents int64, options ...catalog.DishOption) *catalog.Dish {
	t.Helper()
	d, err := catalog.NewDish(kernel.NewUUID(), kernel.NewUUID(), "Test Dish",
		mustMoney(t, priceCents), options)
	require.NoError(t, err)
	return d
}

func TestPricer_Price(t *testing.T) {
	pricer := services.NewPricer()

	t.Run("no selections prices at the base price", func(t *testing.T) {
		dish := newDish(t, 1000)

		price := pricer.Price(dish, nil)

		assert.Equal(t, int64(1000), price.Cents())
	})

	t.Run("flat extra is added when selected", func(t *testing.T) {
		spicy, err := catalog.NewFlatOption("Spicy", mustMoney(t, 200))
		require.NoError(t, err)
		dish := newDish(t, 1000, spicy)

		price := pricer.Price(dish, []order.SelectedOption{mustSelection(t, "Spicy", "")})

		assert.Equal(t, int64(1200), price.Cents())
	})

	t.Run("choice extra is added when the choice exists", func(t *testing.T) {
		small, err := catalog.NewOptionChoice("S", kernel.ZeroMoney())
		require.NoError(t, err)
		large, err := catalog.NewOptionChoice("L", mustMoney(t, 300))
		require.NoError(t, err)
		size, err := catalog.NewChoiceOption("Size", []catalog.OptionChoice{small, large})
		require.NoError(t, err)
		dish := newDish(t, 1000, size)

		price := pricer.Price(dish, []order.SelectedOption{mustSelection(t, "Size", "L")})

		assert.Equal(t, int64(1300), price.Cents())
	})

	t.Run("unknown option name is silently ignored", func(t *testing.T) {
		dish := newDish(t, 1000)

		price := pricer.Price(dish, []order.SelectedOption{mustSelection(t, "Gold Leaf", "")})

		assert.Equal(t, int64(1000), price.Cents())
	})

	t.Run("unknown choice name is silently ignored", func(t *testing.T) {
		hot, err := catalog.NewOptionChoice("Hot", mustMoney(t, 300))
		require.NoError(t, err)
		heat, err := catalog.NewChoiceOption("Heat", []catalog.OptionChoice{hot})
		require.NoError(t, err)
		dish := newDish(t, 1000, heat)

		price := pricer.Price(dish, []order.SelectedOption{mustSelection(t, "Heat", "Nuclear")})

		assert.Equal(t, int64(1000), price.Cents())
	})

	t.Run("zero-price extras contribute no delta", func(t *testing.T) {
		free, err := catalog.NewFlatOption("Extra Napkins", kernel.ZeroMoney())
		require.NoError(t, err)
		dish := newDish(t, 750, free)

		price := pricer.Price(dish, []order.SelectedOption{mustSelection(t, "Extra Napkins", "")})

		assert.Equal(t, int64(750), price.Cents())
	})

	t.Run("multiple selections accumulate", func(t *testing.T) {
		spicy, err := catalog.NewFlatOption("Spicy", mustMoney(t, 200))
		require.NoError(t, err)
		cheese, err := catalog.NewOptionChoice("Extra Cheese", mustMoney(t, 150))
		require.NoError(t, err)
		topping, err := catalog.NewChoiceOption("Topping", []catalog.OptionChoice{cheese})
		require.NoError(t, err)
		dish := newDish(t, 1000, spicy, topping)

		price := pricer.Price(dish, []order.SelectedOption{
			mustSelection(t, "Spicy", ""),
			mustSelection(t, "Topping", "Extra Cheese"),
			mustSelection(t, "Nonexistent", ""),
		})

		assert.Equal(t, int64(1350), price.Cents())
	})

	t.Run("price is base plus sum of applicable surcharges", func(t *testing.T) {
		// property-style sweep over a grid of base prices and surcharges
		for _, base := range []int64{0, 1, 500, 12345} {
			for _, extra := range []int64{0, 1, 250} {
				opt, err := catalog.NewFlatOption("Extra", mustMoney(t, extra))
				require.NoError(t, err)
				dish := newDish(t, base, opt)

				price := pricer.Price(dish, []order.SelectedOption{mustSelection(t, "Extra", "")})

				assert.Equal(t, base+extra, price.Cents())
			}
		}
	})
}

func TestPricer_Total(t *testing.T) {
	pricer := services.NewPricer()

	t.Run("total of no items is zero", func(t *testing.T) {
		assert.True(t, pricer.Total(nil).IsZero())
	})

	t.Run("total is the sum of item prices", func(t *testing.T) {
		item1, err := order.NewItem(kernel.NewUUID(), "A", mustMoney(t, 1200), nil)
		require.NoError(t, err)
		item2, err := order.NewItem(kernel.NewUUID(), "B", mustMoney(t, 800), nil)
		require.NoError(t, err)

		total := pricer.Total([]order.Item{item1, item2})

		assert.Equal(t, int64(2000), total.Cents())
	})
}
