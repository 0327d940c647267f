package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand adds a dish to a restaurant's menu.
type CreateMenuItemCommand struct {
	params catalog.MenuItemParams
	guard  guard.ConstructorGuard
}

func NewCreateMenuItemCommand(
	restaurantID kernel.UUID,
	name, description, category string,
	price decimal.Decimal,
	customizations []catalog.CustomizationGroup,
) (CreateMenuItemCommand, error) {
	if err := restaurantID.Validate(); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return CreateMenuItemCommand{
		params: catalog.MenuItemParams{
			RestaurantID:   restaurantID,
			Name:           name,
			Description:    description,
			Category:       category,
			Price:          price,
			Customizations: append([]catalog.CustomizationGroup(nil), customizations...),
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) RestaurantID() kernel.UUID {
	return c.params.RestaurantID
}
