package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

type Role string

const (
	RoleCustomer        Role = "customer"
	RoleDeliveryAgent   Role = "delivery_agent"
	RoleRestaurantOwner Role = "restaurant_owner"
)

func ParseRole(s string) (Role, error) {
	r := Role(s)
	switch r {
	case RoleCustomer, RoleDeliveryAgent, RoleRestaurantOwner:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
	}
}

func (r Role) String() string {
	return string(r)
}

// User is an account of the marketplace. Credentials live elsewhere.
type User struct {
	id        kernel.UUID
	name      string
	email     string
	phone     string
	role      Role
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewUser validates and creates a user. email is stored lower cased.
func NewUser(id kernel.UUID, name, email, phone string, role Role, createdAt time.Time) (*User, error) {
	u := &User{
		phone: strings.TrimSpace(phone),
		guard: guard.NewConstructorGuard(),
	}

	var errCreatedAt error
	if createdAt.IsZero() {
		errCreatedAt = errs.NewValueIsRequiredError("createdAt")
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
		errCreatedAt,
	); err != nil {
		return nil, err
	}

	u.createdAt = createdAt
	return u, nil
}

// RestoreUser rebuilds a user read from storage.
func RestoreUser(id kernel.UUID, name, email, phone string, role Role, createdAt time.Time) (*User, error) {
	return NewUser(id, name, email, phone, role, createdAt)
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Phone() string {
	return u.phone
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if _, err := ParseRole(string(role)); err != nil {
		return err
	}
	u.role = role
	return nil
}
