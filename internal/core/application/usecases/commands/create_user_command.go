package commands

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand registers a user. The user is built up front so that field
// validation errors surface before a transaction is opened.
type CreateUserCommand struct {
	user  *user.User
	guard guard.ConstructorGuard
}

func NewCreateUserCommand(name, email, phone string, role user.Role) (CreateUserCommand, error) {
	u, err := user.NewUser(kernel.NewUUID(), name, email, phone, role, time.Now().UTC())
	if err != nil {
		return CreateUserCommand{}, err
	}

	return CreateUserCommand{user: u, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) User() *user.User {
	return c.user
}
