// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order aggregate is stored as one row: scalar fields in
// columns and the immutable item list as a jsonb document, so the aggregate is
// read and written atomically without join bookkeeping.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by customer, restaurant, driver, and status to serve the role-scoped
// listing queries.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;index"`
	DriverID     *uuid.UUID `gorm:"type:uuid;index"`
	Items        ItemsDTO   `gorm:"type:jsonb"`
	TotalCents   int64
	Status       int `gorm:"index"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one line item inside the order's jsonb items document.
type ItemDTO struct {
	DishID     uuid.UUID           `json:"dish_id"`
	DishName   string              `json:"dish_name"`
	PriceCents int64               `json:"price_cents"`
	Options    []SelectedOptionDTO `json:"options,omitempty"`
}

// SelectedOptionDTO is one recorded customization inside an item.
// Choice is empty for flat-extra options.
type SelectedOptionDTO struct {
	Name   string `json:"name"`
	Choice string `json:"choice,omitempty"`
}

// ItemsDTO stores the item list as a single jsonb column.
type ItemsDTO []ItemDTO

// Value implements driver.Valuer for jsonb serialization.
func (items ItemsDTO) Value() (driver.Value, error) {
	return json.Marshal(items)
}

// Scan implements sql.Scanner for jsonb deserialization.
func (items *ItemsDTO) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	default:
		return fmt.Errorf("unsupported items column type %T", value)
	}
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := make(ItemsDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		options := make([]SelectedOptionDTO, 0, len(item.Options()))
		for _, option := range item.Options() {
			options = append(options, SelectedOptionDTO{
				Name:   option.Name(),
				Choice: option.Choice(),
			})
		}

		items = append(items, ItemDTO{
			DishID:     item.DishID().Bytes(),
			DishName:   item.DishName(),
			PriceCents: item.Price().Cents(),
			Options:    options,
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		DriverID:     driverID,
		Items:        items,
		TotalCents:   aggregate.Total().Cents(),
		Status:       int(aggregate.Status()),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstruction goes through RestoreOrder so corrupted rows are rejected.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemFromDTO(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoneyFromCents(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		driverID,
		items,
		total,
		order.Status(dto.Status),
		dto.CreatedAt,
	)
}

func itemFromDTO(dto ItemDTO) (order.Item, error) {
	dishID, err := kernel.UUIDFromBytes(dto.DishID[:])
	if err != nil {
		return order.Item{}, err
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return order.Item{}, err
	}

	options := make([]order.SelectedOption, 0, len(dto.Options))
	for _, optionDTO := range dto.Options {
		option, optionErr := order.NewSelectedOption(optionDTO.Name, optionDTO.Choice)
		if optionErr != nil {
			return order.Item{}, optionErr
		}
		options = append(options, option)
	}

	return order.NewItem(dishID, dto.DishName, price, options)
}
