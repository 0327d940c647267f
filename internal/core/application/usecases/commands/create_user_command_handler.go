package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/user"
)

type CreateUserCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateUserCommandHandler(uowFactory CatalogUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{uowFactory: uowFactory}
}

// Handle persists the user. A taken email is a validation error from the repository.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
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

	if err := uow.UserRepository().Add(ctx, cmd.User()); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return cmd.User(), nil
}
