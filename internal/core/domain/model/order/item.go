package order

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// SelectedOption records one customization the customer picked for an item:
// the option's name and, for choice-group options, the chosen choice name.
// It is stored verbatim; resolution against the dish's definitions happened
// at pricing time and unmatched names were ignored there.
type SelectedOption struct {
	name   string
	choice string
}

// NewSelectedOption creates a selection. The choice is empty for flat-extra options.
func NewSelectedOption(name string, choice string) (SelectedOption, error) {
	if name == "" {
		return SelectedOption{}, errs.NewValueIsRequiredError("option name")
	}
	return SelectedOption{name: name, choice: choice}, nil
}

// Name returns the selected option's name.
func (o SelectedOption) Name() string {
	return o.name
}

// Choice returns the chosen choice name, empty for flat-extra options.
func (o SelectedOption) Choice() string {
	return o.choice
}

// Item is one dish instance within an order together with the customer's
// selections and the price resolved at creation time. Items are owned
// exclusively by their order, created once, and immutable afterward.
type Item struct {
	dishID   kernel.UUID
	dishName string
	price    kernel.Money
	options  []SelectedOption

	isConstructed bool
}

// NewItem creates an order item with its resolved price. The price must come
// from the pricing engine; the item does not recompute it.
func NewItem(dishID kernel.UUID, dishName string, price kernel.Money, options []SelectedOption) (Item, error) {
	if err := dishID.Validate(); err != nil {
		return Item{}, err
	}
	if dishName == "" {
		return Item{}, errs.NewValueIsRequiredError("dish name")
	}

	return Item{
		dishID:        dishID,
		dishName:      dishName,
		price:         price,
		options:       options,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// DishID returns the identifier of the dish this item was created from.
func (i Item) DishID() kernel.UUID {
	return i.dishID
}

// DishName returns the dish's display name captured at creation time.
func (i Item) DishName() string {
	return i.dishName
}

// Price returns the item's resolved price: dish base price plus applicable
// option surcharges.
func (i Item) Price() kernel.Money {
	return i.price
}

// Options returns the customer's selections in the order they were submitted.
func (i Item) Options() []SelectedOption {
	return i.options
}
