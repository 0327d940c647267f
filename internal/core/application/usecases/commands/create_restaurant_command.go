package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand registers a restaurant owned by an existing user.
type CreateRestaurantCommand struct {
	params catalog.RestaurantParams
	guard  guard.ConstructorGuard
}

// NewCreateRestaurantCommand checks the owner reference; the remaining attributes
// are validated by catalog.NewRestaurant.
func NewCreateRestaurantCommand(
	ownerID kernel.UUID,
	name, description, cuisine string,
	deliveryFee decimal.Decimal,
	deliveryTime catalog.DeliveryTime,
	minimumOrder decimal.Decimal,
) (CreateRestaurantCommand, error) {
	if err := ownerID.Validate(); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return CreateRestaurantCommand{
		params: catalog.RestaurantParams{
			OwnerID:      ownerID,
			Name:         name,
			Description:  description,
			Cuisine:      cuisine,
			DeliveryFee:  deliveryFee,
			DeliveryTime: deliveryTime,
			MinimumOrder: minimumOrder,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

func (c CreateRestaurantCommand) OwnerID() kernel.UUID {
	return c.params.OwnerID
}
