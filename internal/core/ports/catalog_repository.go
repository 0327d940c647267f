package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
)

// RestaurantFilter narrows a restaurant listing. Only active restaurants are listed.
type RestaurantFilter struct {
	Cuisine string
}

// RestaurantRepository is the restaurant half of the Catalog Store.
type RestaurantRepository interface {
	Add(ctx context.Context, restaurant *catalog.Restaurant) error

	// Get returns errs.ObjectNotFoundError when id does not exist.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error)

	List(ctx context.Context, filter RestaurantFilter, page Page) ([]*catalog.Restaurant, int64, error)
}

// MenuFilter narrows the menu of one restaurant.
type MenuFilter struct {
	Category string

	// IncludeUnavailable lists inactive and unavailable items too.
	IncludeUnavailable bool
}

// MenuItemRepository is the menu item half of the Catalog Store.
type MenuItemRepository interface {
	Add(ctx context.Context, item *catalog.MenuItem) error

	// Get returns errs.ObjectNotFoundError when id does not exist.
	Get(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error)

	// ListByRestaurant returns the menu sorted by category and name.
	ListByRestaurant(ctx context.Context, restaurantID kernel.UUID, filter MenuFilter) ([]*catalog.MenuItem, error)
}
