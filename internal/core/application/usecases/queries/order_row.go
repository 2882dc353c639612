package queries

import (
	"encoding/json"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// itemDocument mirrors the jsonb layout of one line item in the orders table.
type itemDocument struct {
	DishID     uuid.UUID            `json:"dish_id"`
	DishName   string               `json:"dish_name"`
	PriceCents int64                `json:"price_cents"`
	Options    []selectedOptionDocument `json:"options,omitempty"`
}

type selectedOptionDocument struct {
	Name   string `json:"name"`
	Choice string `json:"choice,omitempty"`
}

// restoreOrderRow rebuilds a domain order from one scanned row. Restoration
// goes through the aggregate factory so the handlers evaluate visibility
// against validated domain state, never raw columns.
func restoreOrderRow(
	id uuid.UUID,
	customerID uuid.UUID,
	restaurantID uuid.UUID,
	driverID *uuid.UUID,
	itemsRaw []byte,
	totalCents int64,
	status int,
	createdAt time.Time,
) (*order.Order, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	cID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return nil, err
	}

	rID, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return nil, err
	}

	var dID *kernel.UUID
	if driverID != nil {
		parsed, driverErr := kernel.UUIDFromBytes((*driverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		dID = &parsed
	}

	var itemDocs []itemDocument
	if err = json.Unmarshal(itemsRaw, &itemDocs); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDocs))
	for _, doc := range itemDocs {
		item, itemErr := itemFromDocument(doc)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoneyFromCents(totalCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(orderID, cID, rID, dID, items, total, order.Status(status), createdAt)
}

func itemFromDocument(doc itemDocument) (order.Item, error) {
	dishID, err := kernel.UUIDFromBytes(doc.DishID[:])
	if err != nil {
		return order.Item{}, err
	}

	price, err := kernel.NewMoneyFromCents(doc.PriceCents)
	if err != nil {
		return order.Item{}, err
	}

	options := make([]order.SelectedOption, 0, len(doc.Options))
	for _, optionDoc := range doc.Options {
		option, optionErr := order.NewSelectedOption(optionDoc.Name, optionDoc.Choice)
		if optionErr != nil {
			return order.Item{}, optionErr
		}
		options = append(options, option)
	}

	return order.NewItem(dishID, doc.DishName, price, options)
}
