// Package order provides the Order aggregate and its lifecycle state machine for
// the food-delivery marketplace.
//
// The package includes:
//   - Order: the aggregate root holding customer, restaurant, driver, items, and total
//   - Item / SelectedOption: immutable priced line items with the customer's selections
//   - Status: the state machine over Pending -> Cooking -> Cooked -> PickedUp -> Delivered
//
// Key business rules:
//   - The order total always equals the sum of its items' resolved prices
//   - Status transitions move strictly forward along the lifecycle chain
//   - A driver is bound to an order at most once; re-claiming is a conflict
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
