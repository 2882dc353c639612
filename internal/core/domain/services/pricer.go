package services

import (
	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// Pricer is the domain service that resolves the price of one order item from a
// dish and the customer's selections.
//
// Pricing rules:
//   - The price starts at the dish's base price
//   - A selection whose name matches a flat-extra option adds that option's surcharge
//   - A selection matching a choice-group option adds the surcharge of the chosen
//     choice, when that choice exists on the option
//   - Selections naming options or choices the dish does not define are silently
//     ignored; they are not an error
//
// Pricing is a pure function of its inputs with no side effects.
//
// Example:
//
//	pricer := services.NewPricer()
//	price := pricer.Price(dish, item.Options())
type Pricer struct{}

// NewPricer creates a pricing service instance.
func NewPricer() Pricer {
	return Pricer{}
}

// Price computes the resolved price of a single item: the dish base price plus
// the surcharges of every applicable selection.
func (Pricer) Price(dish *catalog.Dish, selections []order.SelectedOption) kernel.Money {
	price := dish.Price()

	for _, sel := range selections {
		option, ok := dish.FindOption(sel.Name())
		if !ok {
			continue
		}

		if extra, flat := option.FlatExtra(); flat {
			price = price.Add(extra)
			continue
		}

		if choice, found := option.FindChoice(sel.Choice()); found {
			price = price.Add(choice.Extra())
		}
	}

	return price
}

// Total sums a sequence of priced items into an order total.
func (Pricer) Total(items []order.Item) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.Price())
	}
	return total
}
