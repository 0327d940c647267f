package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
)

type CreateRestaurantCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateRestaurantCommandHandler(uowFactory CatalogUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{uowFactory: uowFactory}
}

// Handle creates an open, active restaurant. The owner must exist.
func (h *CreateRestaurantCommandHandler) Handle(
	ctx context.Context,
	cmd CreateRestaurantCommand,
) (*catalog.Restaurant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.UserRepository().Get(ctx, cmd.OwnerID()); err != nil {
		return nil, err
	}

	params := cmd.params
	params.ID = kernel.NewUUID()
	params.CreatedAt = time.Now().UTC()
	restaurant, err := catalog.NewRestaurant(params)
	if err != nil {
		return nil, err
	}

	if err = uow.RestaurantRepository().Add(ctx, restaurant); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return restaurant, nil
}
