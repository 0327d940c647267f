package queries_test

import (
	"context"
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetRestaurantQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	r := newRestaurant(t)

	repo := &MockRestaurantRepository{}
	repo.On("Get", ctx, r.ID()).Return(r, nil).Once()

	got, err := queries.NewGetRestaurantQueryHandler(repo).Handle(ctx, r.ID())
	require.NoError(t, err)
	assert.Same(t, r, got)

	_, err = queries.NewGetRestaurantQueryHandler(repo).Handle(ctx, kernel.UUID{})
	require.Error(t, err)
	repo.AssertNumberOfCalls(t, "Get", 1)
}

func TestListRestaurantsQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	q, err := queries.NewListRestaurantsQuery("  South Indian ", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, ports.RestaurantFilter{Cuisine: "South Indian"}, q.Filter())

	repo := &MockRestaurantRepository{}
	repo.On("List", ctx, q.Filter(), ports.Page{Number: 1, Size: 2}).
		Return([]*catalog.Restaurant{newRestaurant(t), newRestaurant(t)}, int64(5), nil).Once()

	resp, err := queries.NewListRestaurantsQueryHandler(repo).Handle(ctx, q)
	require.NoError(t, err)
	assert.Len(t, resp.Restaurants, 2)
	assert.Equal(t, int64(5), resp.Total)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 1, resp.CurrentPage)
}

func TestNewListRestaurantsQuery_RejectsBadPage(t *testing.T) {
	_, err := queries.NewListRestaurantsQuery("", -1, 10)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestGetMenuItemQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	item := newMenuItem(t, kernel.NewUUID(), "Masala Dosa")
	missing := kernel.NewUUID()

	repo := &MockMenuItemRepository{}
	repo.On("Get", ctx, item.ID()).Return(item, nil).Once()
	repo.On("Get", ctx, missing).Return(nil, errs.NewObjectNotFoundError("menuItem", missing.String())).Once()

	h := queries.NewGetMenuItemQueryHandler(repo)

	got, err := h.Handle(ctx, item.ID())
	require.NoError(t, err)
	assert.Equal(t, "Masala Dosa", got.Name())

	_, err = h.Handle(ctx, missing)
	assert.True(t, errs.IsNotFound(err))
}

func TestListMenuQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	r := newRestaurant(t)

	q, err := queries.NewListMenuQuery(r.ID(), "Dosa", false)
	require.NoError(t, err)

	t.Run("lists items", func(t *testing.T) {
		restaurants := &MockRestaurantRepository{}
		items := &MockMenuItemRepository{}
		menu := []*catalog.MenuItem{newMenuItem(t, r.ID(), "Masala Dosa"), newMenuItem(t, r.ID(), "Rava Dosa")}

		restaurants.On("Get", ctx, r.ID()).Return(r, nil).Once()
		items.On("ListByRestaurant", ctx, r.ID(), ports.MenuFilter{Category: "Dosa"}).Return(menu, nil).Once()

		got, err := queries.NewListMenuQueryHandler(restaurants, items).Handle(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, menu, got)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		restaurants := &MockRestaurantRepository{}
		items := &MockMenuItemRepository{}
		restaurants.On("Get", ctx, r.ID()).Return(nil, errs.NewObjectNotFoundError("restaurant", r.ID().String())).Once()

		_, err := queries.NewListMenuQueryHandler(restaurants, items).Handle(ctx, q)
		assert.True(t, errs.IsNotFound(err))
		items.AssertNotCalled(t, "ListByRestaurant", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty menu", func(t *testing.T) {
		restaurants := &MockRestaurantRepository{}
		items := &MockMenuItemRepository{}
		restaurants.On("Get", ctx, r.ID()).Return(r, nil).Once()
		items.On("ListByRestaurant", ctx, r.ID(), mock.Anything).Return(nil, nil).Once()

		got, err := queries.NewListMenuQueryHandler(restaurants, items).Handle(ctx, q)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestGetUserQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	u, err := user.NewUser(kernel.NewUUID(), "Ravi", "Ravi@Example.com", "+91 90000 00000", user.RoleDeliveryAgent, fixedTime)
	require.NoError(t, err)

	repo := &MockUserRepository{}
	repo.On("Get", ctx, u.ID()).Return(u, nil).Once()

	got, err := queries.NewGetUserQueryHandler(repo).Handle(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "ravi@example.com", got.Email())
	assert.Equal(t, user.RoleDeliveryAgent, got.Role())
}
