package ports

import (
	"context"

	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
)

// CatalogRepository is the read-only lookup the order core needs from the
// catalog collaborator. Catalog management (restaurant and menu CRUD) lives
// outside the core; the core only resolves identifiers into snapshots.
type CatalogRepository interface {
	// GetRestaurant resolves a restaurant by id, including its owner identity.
	GetRestaurant(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error)

	// GetDish resolves a dish by id, including its option definitions.
	GetDish(ctx context.Context, id kernel.UUID) (*catalog.Dish, error)
}
