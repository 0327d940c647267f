package catalog_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pizza(t *testing.T, restaurantID kernel.UUID) *catalog.MenuItem {
	t.Helper()
	m, err := catalog.NewMenuItem(catalog.MenuItemParams{
		ID:           kernel.NewUUID(),
		RestaurantID: restaurantID,
		Name:         "Margherita",
		Category:     "Pizza",
		Price:        d("10.00"),
		Customizations: []catalog.CustomizationGroup{
			{
				Name:     "Size",
				Required: true,
				Options:  []catalog.Option{{Name: "Regular"}, {Name: "Large", PriceDelta: d("2.50")}},
			},
			{
				Name:     "Toppings",
				Multiple: true,
				Options: []catalog.Option{
					{Name: "Olives", PriceDelta: d("0.75")},
					{Name: "Cheese", PriceDelta: d("1.50")},
				},
			},
		},
		CreatedAt: createdAt,
	})
	require.NoError(t, err)
	return m
}

func TestNewMenuItem(t *testing.T) {
	t.Run("should create available item", func(t *testing.T) {
		m := pizza(t, kernel.NewUUID())

		require.NoError(t, m.Validate())
		assert.True(t, m.IsAvailable())
		assert.True(t, m.IsActive())
		assert.Len(t, m.Customizations(), 2)
	})

	t.Run("should reject invalid groups", func(t *testing.T) {
		tests := map[string][]catalog.CustomizationGroup{
			"empty group name": {{Name: "", Options: []catalog.Option{{Name: "a"}}}},
			"no options":       {{Name: "Size"}},
			"duplicate option": {{Name: "Size", Options: []catalog.Option{{Name: "a"}, {Name: "a"}}}},
			"negative delta":   {{Name: "Size", Options: []catalog.Option{{Name: "a", PriceDelta: d("-1")}}}},
			"duplicate group": {
				{Name: "Size", Options: []catalog.Option{{Name: "a"}}},
				{Name: "Size", Options: []catalog.Option{{Name: "b"}}},
			},
		}

		for name, groups := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := catalog.NewMenuItem(catalog.MenuItemParams{
					ID:             kernel.NewUUID(),
					RestaurantID:   kernel.NewUUID(),
					Name:           "Item",
					Category:       "Mains",
					Price:          d("1"),
					Customizations: groups,
					CreatedAt:      createdAt,
				})

				require.Error(t, err)
				assert.True(t, errs.IsValidation(err))
			})
		}
	})
}

func TestMenuItem_ValidateOrderable(t *testing.T) {
	restaurantID := kernel.NewUUID()
	m := pizza(t, restaurantID)

	require.NoError(t, m.ValidateOrderable(restaurantID))

	err := m.ValidateOrderable(kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "does not belong")

	unavailable, err := catalog.RestoreMenuItem(catalog.MenuItemParams{
		ID:           kernel.NewUUID(),
		RestaurantID: restaurantID,
		Name:         "Seasonal",
		Category:     "Pizza",
		Price:        d("12"),
		IsActive:     true,
		IsAvailable:  false,
		CreatedAt:    createdAt,
	})
	require.NoError(t, err)
	err = unavailable.ValidateOrderable(restaurantID)
	require.ErrorIs(t, err, catalog.ErrMenuItemIsUnavailable)
	assert.True(t, errs.IsValidation(err))
}

func TestMenuItem_PriceSelections(t *testing.T) {
	m := pizza(t, kernel.NewUUID())

	t.Run("prices deltas from the catalog", func(t *testing.T) {
		priced, err := m.PriceSelections([]catalog.Selection{
			{Group: "Size", Options: []string{"Large"}},
			{Group: "Toppings", Options: []string{"Olives", "Cheese"}},
		})

		require.NoError(t, err)
		require.Len(t, priced, 2)
		assert.Equal(t, "2.50", priced[0].PriceDelta.StringFixed(2))
		assert.Equal(t, "2.25", priced[1].PriceDelta.StringFixed(2))
		assert.Equal(t, []string{"Olives", "Cheese"}, priced[1].Options)
	})

	tests := []struct {
		name       string
		selections []catalog.Selection
		wantErr    string
	}{
		{
			name:       "missing required group",
			selections: []catalog.Selection{{Group: "Toppings", Options: []string{"Olives"}}},
			wantErr:    "customizations[Size]",
		},
		{
			name:       "unknown group",
			selections: []catalog.Selection{{Group: "Size", Options: []string{"Large"}}, {Group: "Crust", Options: []string{"Thin"}}},
			wantErr:    `"Crust" is not a customization`,
		},
		{
			name:       "unknown option",
			selections: []catalog.Selection{{Group: "Size", Options: []string{"Huge"}}},
			wantErr:    `"Huge" is not an option`,
		},
		{
			name:       "two options in a single choice group",
			selections: []catalog.Selection{{Group: "Size", Options: []string{"Regular", "Large"}}},
			wantErr:    "allows a single option",
		},
		{
			name: "group chosen twice",
			selections: []catalog.Selection{
				{Group: "Size", Options: []string{"Large"}},
				{Group: "Size", Options: []string{"Regular"}},
			},
			wantErr: "chosen more than once",
		},
		{
			name: "option repeated in a multiple choice group",
			selections: []catalog.Selection{
				{Group: "Size", Options: []string{"Large"}},
				{Group: "Toppings", Options: []string{"Cheese", "Cheese", "Cheese"}},
			},
			wantErr: `"Cheese" is chosen more than once in "Toppings"`,
		},
		{
			name:       "group without options",
			selections: []catalog.Selection{{Group: "Size"}},
			wantErr:    "customizations[Size].options",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			priced, err := m.PriceSelections(tt.selections)

			require.Error(t, err)
			assert.Nil(t, priced)
			assert.True(t, errs.IsValidation(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
