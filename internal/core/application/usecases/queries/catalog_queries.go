package queries

import (
	"context"
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrListRestaurantsQueryIsNotConstructed = errors.New(
		"ListRestaurantsQuery must be created via NewListRestaurantsQuery constructor",
	)
	ErrListMenuQueryIsNotConstructed = errors.New(
		"ListMenuQuery must be created via NewListMenuQuery constructor",
	)
)

type GetRestaurantQueryHandler struct {
	restaurants ports.RestaurantRepository
}

func NewGetRestaurantQueryHandler(restaurants ports.RestaurantRepository) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{restaurants: restaurants}
}

func (h GetRestaurantQueryHandler) Handle(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return h.restaurants.Get(ctx, id)
}

// ListRestaurantsQuery pages through active restaurants, optionally of one cuisine.
type ListRestaurantsQuery struct {
	filter ports.RestaurantFilter
	page   ports.Page

	guard guard.ConstructorGuard
}

func NewListRestaurantsQuery(cuisine string, pageNumber, limit int) (ListRestaurantsQuery, error) {
	page, err := ports.NewPage(pageNumber, limit)
	if err != nil {
		return ListRestaurantsQuery{}, err
	}
	return ListRestaurantsQuery{
		filter: ports.RestaurantFilter{Cuisine: strings.TrimSpace(cuisine)},
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantsQueryIsNotConstructed)
}

func (q ListRestaurantsQuery) Filter() ports.RestaurantFilter {
	return q.filter
}

func (q ListRestaurantsQuery) Page() ports.Page {
	return q.page
}

type ListRestaurantsQueryResponse struct {
	Restaurants []*catalog.Restaurant
	Total       int64
	TotalPages  int
	CurrentPage int
}

type ListRestaurantsQueryHandler struct {
	restaurants ports.RestaurantRepository
}

func NewListRestaurantsQueryHandler(restaurants ports.RestaurantRepository) ListRestaurantsQueryHandler {
	return ListRestaurantsQueryHandler{restaurants: restaurants}
}

func (h ListRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query ListRestaurantsQuery,
) (ListRestaurantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListRestaurantsQueryResponse{}, err
	}

	page := query.Page()
	restaurants, total, err := h.restaurants.List(ctx, query.Filter(), page)
	if err != nil {
		return ListRestaurantsQueryResponse{}, err
	}
	if restaurants == nil {
		restaurants = make([]*catalog.Restaurant, 0)
	}

	return ListRestaurantsQueryResponse{
		Restaurants: restaurants,
		Total:       total,
		TotalPages:  page.TotalPages(total),
		CurrentPage: page.Number,
	}, nil
}

type GetMenuItemQueryHandler struct {
	items ports.MenuItemRepository
}

func NewGetMenuItemQueryHandler(items ports.MenuItemRepository) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{items: items}
}

func (h GetMenuItemQueryHandler) Handle(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return h.items.Get(ctx, id)
}

// ListMenuQuery lists the menu of one restaurant. By default only items that
// can be ordered right now are listed.
type ListMenuQuery struct {
	restaurantID kernel.UUID
	filter       ports.MenuFilter

	guard guard.ConstructorGuard
}

func NewListMenuQuery(restaurantID kernel.UUID, category string, includeUnavailable bool) (ListMenuQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return ListMenuQuery{}, err
	}
	return ListMenuQuery{
		restaurantID: restaurantID,
		filter: ports.MenuFilter{
			Category:           strings.TrimSpace(category),
			IncludeUnavailable: includeUnavailable,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ListMenuQuery) Validate() error {
	return q.guard.Validate(ErrListMenuQueryIsNotConstructed)
}

func (q ListMenuQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

func (q ListMenuQuery) Filter() ports.MenuFilter {
	return q.filter
}

// ListMenuQueryHandler returns errs.ObjectNotFoundError for an unknown restaurant
// rather than an empty menu.
type ListMenuQueryHandler struct {
	restaurants ports.RestaurantRepository
	items       ports.MenuItemRepository
}

func NewListMenuQueryHandler(
	restaurants ports.RestaurantRepository,
	items ports.MenuItemRepository,
) ListMenuQueryHandler {
	return ListMenuQueryHandler{restaurants: restaurants, items: items}
}

func (h ListMenuQueryHandler) Handle(ctx context.Context, query ListMenuQuery) ([]*catalog.MenuItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.restaurants.Get(ctx, query.RestaurantID()); err != nil {
		return nil, err
	}

	items, err := h.items.ListByRestaurant(ctx, query.RestaurantID(), query.Filter())
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]*catalog.MenuItem, 0)
	}
	return items, nil
}
