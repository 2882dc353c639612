// Package catalogrepo provides read-side persistence for the catalog
// collaborator: restaurants and dishes. The order core only resolves
// identifiers into snapshots here; catalog management writes happen outside
// the core and land in the same tables.
package catalogrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for restaurants.
type RestaurantDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;index"`
	Name    string
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// DishDTO represents the database structure for dishes. Option definitions are
// stored as a jsonb document since the pricing engine always reads them whole.
type DishDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;index"`
	Name         string
	PriceCents   int64
	Options      OptionsDTO `gorm:"type:jsonb"`
}

// TableName specifies the database table name for dish entities.
func (DishDTO) TableName() string {
	return "dishes"
}

// OptionDTO is one dish option definition inside the jsonb options document.
// ExtraCents is set for flat-extra options; Choices for choice-group options.
type OptionDTO struct {
	Name       string      `json:"name"`
	ExtraCents *int64      `json:"extra_cents,omitempty"`
	Choices    []ChoiceDTO `json:"choices,omitempty"`
}

// ChoiceDTO is one named choice with its surcharge.
type ChoiceDTO struct {
	Name       string `json:"name"`
	ExtraCents int64  `json:"extra_cents"`
}

// OptionsDTO stores the option definitions as a single jsonb column.
type OptionsDTO []OptionDTO

// Value implements driver.Valuer for jsonb serialization.
func (options OptionsDTO) Value() (driver.Value, error) {
	return json.Marshal(options)
}

// Scan implements sql.Scanner for jsonb deserialization.
func (options *OptionsDTO) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, options)
	case string:
		return json.Unmarshal([]byte(v), options)
	default:
		return fmt.Errorf("unsupported options column type %T", value)
	}
}

// restaurantToDomain converts a database DTO to a restaurant snapshot.
func restaurantToDomain(dto RestaurantDTO) (*catalog.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return catalog.NewRestaurant(id, ownerID, dto.Name)
}

// dishToDomain converts a database DTO to a dish snapshot including its
// option definitions.
func dishToDomain(dto DishDTO) (*catalog.Dish, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	options := make([]catalog.DishOption, 0, len(dto.Options))
	for _, optionDTO := range dto.Options {
		option, optionErr := optionToDomain(optionDTO)
		if optionErr != nil {
			return nil, optionErr
		}
		options = append(options, option)
	}

	return catalog.NewDish(id, restaurantID, dto.Name, price, options)
}

func optionToDomain(dto OptionDTO) (catalog.DishOption, error) {
	if dto.ExtraCents != nil {
		extra, err := kernel.NewMoneyFromCents(*dto.ExtraCents)
		if err != nil {
			return catalog.DishOption{}, err
		}
		return catalog.NewFlatOption(dto.Name, extra)
	}

	choices := make([]catalog.OptionChoice, 0, len(dto.Choices))
	for _, choiceDTO := range dto.Choices {
		extra, err := kernel.NewMoneyFromCents(choiceDTO.ExtraCents)
		if err != nil {
			return catalog.DishOption{}, err
		}

		choice, err := catalog.NewOptionChoice(choiceDTO.Name, extra)
		if err != nil {
			return catalog.DishOption{}, err
		}
		choices = append(choices, choice)
	}

	return catalog.NewChoiceOption(dto.Name, choices)
}

// FromRestaurant converts a restaurant snapshot to its database representation.
// Exists for fixtures and seeding; the order core itself never writes catalog rows.
func FromRestaurant(restaurant *catalog.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:      restaurant.ID().Bytes(),
		OwnerID: restaurant.OwnerID().Bytes(),
		Name:    restaurant.Name(),
	}
}

// FromDish converts a dish snapshot to its database representation.
// Exists for fixtures and seeding; the order core itself never writes catalog rows.
func FromDish(dish *catalog.Dish) DishDTO {
	options := make(OptionsDTO, 0, len(dish.Options()))
	for _, option := range dish.Options() {
		optionDTO := OptionDTO{Name: option.Name()}
		if extra, ok := option.FlatExtra(); ok {
			cents := extra.Cents()
			optionDTO.ExtraCents = &cents
		} else {
			for _, choice := range option.Choices() {
				optionDTO.Choices = append(optionDTO.Choices, ChoiceDTO{
					Name:       choice.Name(),
					ExtraCents: choice.Extra().Cents(),
				})
			}
		}
		options = append(options, optionDTO)
	}

	return DishDTO{
		ID:           dish.ID().Bytes(),
		RestaurantID: dish.RestaurantID().Bytes(),
		Name:         dish.Name(),
		PriceCents:   dish.Price().Cents(),
		Options:      options,
	}
}
