package catalog

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var (
	// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was not
	// created through the NewRestaurant factory function.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

	// ErrDishIsNotConstructed is returned when a Dish instance was not created
	// through the NewDish factory function.
	ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")
)

// Restaurant is the slice of catalog state the order core needs: identity and the
// owner who must be notified of new pending orders.
type Restaurant struct {
	id      kernel.UUID
	ownerID kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

// NewRestaurant creates a restaurant snapshot with a validated identity and owner.
func NewRestaurant(id kernel.UUID, ownerID kernel.UUID, name string) (*Restaurant, error) {
	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("restaurant name")
	}

	return &Restaurant{
		id:      id,
		ownerID: ownerID,
		name:    name,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Restaurant was created through NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// OwnerID returns the identity of the user who owns this restaurant.
func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// OptionChoice is one named selection within a choice-group option, carrying the
// surcharge applied when a customer picks it. A zero surcharge is a free choice.
type OptionChoice struct {
	name  string
	extra kernel.Money
}

// NewOptionChoice creates a named choice with its surcharge.
func NewOptionChoice(name string, extra kernel.Money) (OptionChoice, error) {
	if name == "" {
		return OptionChoice{}, errs.NewValueIsRequiredError("choice name")
	}
	return OptionChoice{name: name, extra: extra}, nil
}

// Name returns the choice's name.
func (c OptionChoice) Name() string {
	return c.name
}

// Extra returns the surcharge applied when this choice is selected.
func (c OptionChoice) Extra() kernel.Money {
	return c.extra
}

// DishOption is a customization a dish offers. It is either a flat-extra option,
// adding a fixed surcharge when selected, or a choice-group option, whose surcharge
// depends on which named choice the customer picks. A flat extra takes precedence
// over choices when both are present.
type DishOption struct {
	name    string
	extra   *kernel.Money
	choices []OptionChoice
}

// NewFlatOption creates an option that adds a fixed surcharge when selected.
func NewFlatOption(name string, extra kernel.Money) (DishOption, error) {
	if name == "" {
		return DishOption{}, errs.NewValueIsRequiredError("option name")
	}
	return DishOption{name: name, extra: &extra}, nil
}

// NewChoiceOption creates an option whose surcharge depends on the selected choice.
func NewChoiceOption(name string, choices []OptionChoice) (DishOption, error) {
	if name == "" {
		return DishOption{}, errs.NewValueIsRequiredError("option name")
	}
	return DishOption{name: name, choices: choices}, nil
}

// Name returns the option's name.
func (o DishOption) Name() string {
	return o.name
}

// FlatExtra returns the fixed surcharge and true when this is a flat-extra option.
func (o DishOption) FlatExtra() (kernel.Money, bool) {
	if o.extra == nil {
		return kernel.ZeroMoney(), false
	}
	return *o.extra, true
}

// Choices returns the option's named choices. Empty for flat-extra options.
func (o DishOption) Choices() []OptionChoice {
	return o.choices
}

// FindChoice looks up a choice by exact name.
func (o DishOption) FindChoice(name string) (OptionChoice, bool) {
	for _, c := range o.choices {
		if c.name == name {
			return c, true
		}
	}
	return OptionChoice{}, false
}

// Dish is the read-only menu entry the pricing engine works from: a base price
// plus the option definitions customers may select against.
type Dish struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        kernel.Money
	options      []DishOption

	guard guard.ConstructorGuard
}

// NewDish creates a dish snapshot with a validated identity, owning restaurant,
// and base price.
func NewDish(id kernel.UUID, restaurantID kernel.UUID, name string, price kernel.Money, options []DishOption) (*Dish, error) {
	if err := errors.Join(
		id.Validate(),
		restaurantID.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("dish name")
	}

	return &Dish{
		id:           id,
		restaurantID: restaurantID,
		name:         name,
		price:        price,
		options:      options,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Dish was created through NewDish.
func (d *Dish) Validate() error {
	if d == nil {
		return ErrDishIsNotConstructed
	}
	return d.guard.Validate(ErrDishIsNotConstructed)
}

// ID returns the dish's unique identifier.
func (d *Dish) ID() kernel.UUID {
	return d.id
}

// RestaurantID returns the identifier of the restaurant serving this dish.
func (d *Dish) RestaurantID() kernel.UUID {
	return d.restaurantID
}

// Name returns the dish's display name.
func (d *Dish) Name() string {
	return d.name
}

// Price returns the dish's base price before any option surcharges.
func (d *Dish) Price() kernel.Money {
	return d.price
}

// Options returns the dish's option definitions in menu order.
func (d *Dish) Options() []DishOption {
	return d.options
}

// FindOption looks up an option definition by exact name.
func (d *Dish) FindOption(name string) (DishOption, bool) {
	for _, o := range d.options {
		if o.name == name {
			return o, true
		}
	}
	return DishOption{}, false
}
