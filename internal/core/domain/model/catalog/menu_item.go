package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
	ErrMenuItemIsUnavailable    = errors.New("menu item is not available")
)

// Option is one selectable choice of a customization group, e.g. "Large" +2.00.
type Option struct {
	Name       string
	PriceDelta decimal.Decimal
}

// CustomizationGroup is a set of options for a menu item, e.g. "Size".
// Multiple groups allow several options at once; Required groups must be chosen.
type CustomizationGroup struct {
	Name     string
	Multiple bool
	Required bool
	Options  []Option
}

// Validate checks names are present and unique and deltas are non negative.
func (g CustomizationGroup) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return errs.NewValueIsRequiredError("customizations.name")
	}
	if len(g.Options) == 0 {
		return errs.NewValueIsRequiredError("customizations[" + g.Name + "].options")
	}

	seen := make(map[string]struct{}, len(g.Options))
	for _, o := range g.Options {
		if strings.TrimSpace(o.Name) == "" {
			return errs.NewValueIsRequiredError("customizations[" + g.Name + "].options.name")
		}
		if _, dup := seen[o.Name]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"customizations["+g.Name+"]", fmt.Errorf("duplicate option %q", o.Name),
			)
		}
		seen[o.Name] = struct{}{}
		if err := kernel.ValidateMoney("customizations["+g.Name+"].options.priceDelta", o.PriceDelta); err != nil {
			return err
		}
	}
	return nil
}

func (g CustomizationGroup) option(name string) (Option, bool) {
	for _, o := range g.Options {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

// Selection is what the customer asked for in one group.
type Selection struct {
	Group   string
	Options []string
}

// PricedSelection is a Selection resolved against the catalog.
type PricedSelection struct {
	Group      string
	Options    []string
	PriceDelta decimal.Decimal
}

// MenuItem is a dish a restaurant sells.
type MenuItem struct {
	id             kernel.UUID
	restaurantID   kernel.UUID
	name           string
	description    string
	category       string
	price          decimal.Decimal
	isAvailable    bool
	isActive       bool
	customizations []CustomizationGroup
	createdAt      time.Time
	guard          guard.ConstructorGuard
}

// MenuItemParams groups the attributes of a menu item.
type MenuItemParams struct {
	ID             kernel.UUID
	RestaurantID   kernel.UUID
	Name           string
	Description    string
	Category       string
	Price          decimal.Decimal
	IsAvailable    bool
	IsActive       bool
	Customizations []CustomizationGroup
	CreatedAt      time.Time
}

// NewMenuItem creates an available and active menu item.
func NewMenuItem(p MenuItemParams) (*MenuItem, error) {
	p.IsAvailable = true
	p.IsActive = true
	return RestoreMenuItem(p)
}

// RestoreMenuItem rebuilds a menu item read from storage.
func RestoreMenuItem(p MenuItemParams) (*MenuItem, error) {
	m := &MenuItem{
		description: strings.TrimSpace(p.Description),
		isAvailable: p.IsAvailable,
		isActive:    p.IsActive,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(p.ID),
		m.setRestaurantID(p.RestaurantID),
		m.setName(p.Name),
		m.setCategory(p.Category),
		m.setPrice(p.Price),
		m.setCustomizations(p.Customizations),
		m.setCreatedAt(p.CreatedAt),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

func (m *MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

func (m *MenuItem) Name() string {
	return m.name
}

func (m *MenuItem) Description() string {
	return m.description
}

func (m *MenuItem) Category() string {
	return m.category
}

// Price is the current catalog price. Orders snapshot it at checkout.
func (m *MenuItem) Price() decimal.Decimal {
	return m.price
}

func (m *MenuItem) IsAvailable() bool {
	return m.isAvailable
}

func (m *MenuItem) IsActive() bool {
	return m.isActive
}

func (m *MenuItem) Customizations() []CustomizationGroup {
	return append([]CustomizationGroup(nil), m.customizations...)
}

func (m *MenuItem) CreatedAt() time.Time {
	return m.createdAt
}

// ValidateOrderable checks the item can be put on an order at restaurantID.
func (m *MenuItem) ValidateOrderable(restaurantID kernel.UUID) error {
	if !m.restaurantID.IsEqual(restaurantID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"menuItemId",
			fmt.Errorf("menu item %s does not belong to restaurant %s", m.id, restaurantID),
		)
	}
	if !m.isActive || !m.isAvailable {
		return errs.NewValueIsInvalidErrorWithCause(
			"menuItemId", fmt.Errorf("%w: %s", ErrMenuItemIsUnavailable, m.id),
		)
	}
	return nil
}

// PriceSelections resolves the customer's choices against the item's groups. Deltas
// come from the catalog. Fails when a group or option is unknown, a single choice
// group gets more than one option, a group or an option is chosen twice, or a
// required group is missing.
func (m *MenuItem) PriceSelections(selections []Selection) ([]PricedSelection, error) {
	chosen := make(map[string]struct{}, len(selections))
	priced := make([]PricedSelection, 0, len(selections))

	for _, sel := range selections {
		group, ok := m.group(sel.Group)
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"customizations", fmt.Errorf("%q is not a customization of %s", sel.Group, m.name),
			)
		}
		if _, dup := chosen[group.Name]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"customizations", fmt.Errorf("%q is chosen more than once", group.Name),
			)
		}
		chosen[group.Name] = struct{}{}

		if len(sel.Options) == 0 {
			return nil, errs.NewValueIsRequiredError("customizations[" + group.Name + "].options")
		}
		if !group.Multiple && len(sel.Options) > 1 {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"customizations", fmt.Errorf("%q allows a single option", group.Name),
			)
		}

		delta := decimal.Zero
		picked := make(map[string]struct{}, len(sel.Options))
		for _, name := range sel.Options {
			opt, found := group.option(name)
			if !found {
				return nil, errs.NewValueIsInvalidErrorWithCause(
					"customizations", fmt.Errorf("%q is not an option of %q", name, group.Name),
				)
			}
			if _, dup := picked[opt.Name]; dup {
				return nil, errs.NewValueIsInvalidErrorWithCause(
					"customizations", fmt.Errorf("%q is chosen more than once in %q", opt.Name, group.Name),
				)
			}
			picked[opt.Name] = struct{}{}
			delta = delta.Add(opt.PriceDelta)
		}

		priced = append(priced, PricedSelection{
			Group:      group.Name,
			Options:    append([]string(nil), sel.Options...),
			PriceDelta: delta,
		})
	}

	for _, g := range m.customizations {
		if _, ok := chosen[g.Name]; g.Required && !ok {
			return nil, errs.NewValueIsRequiredError("customizations[" + g.Name + "]")
		}
	}

	return priced, nil
}

func (m *MenuItem) group(name string) (CustomizationGroup, bool) {
	for _, g := range m.customizations {
		if g.Name == name {
			return g, true
		}
	}
	return CustomizationGroup{}, false
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	m.restaurantID = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	m.category = category
	return nil
}

func (m *MenuItem) setPrice(price decimal.Decimal) error {
	if err := kernel.ValidateMoney("price", price); err != nil {
		return err
	}
	m.price = kernel.RoundMoney(price)
	return nil
}

func (m *MenuItem) setCustomizations(groups []CustomizationGroup) error {
	seen := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		if err := g.Validate(); err != nil {
			return err
		}
		if _, dup := seen[g.Name]; dup {
			return errs.NewValueIsInvalidErrorWithCause("customizations", fmt.Errorf("duplicate group %q", g.Name))
		}
		seen[g.Name] = struct{}{}
	}
	m.customizations = append([]CustomizationGroup(nil), groups...)
	return nil
}

func (m *MenuItem) setCreatedAt(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	m.createdAt = t
	return nil
}
