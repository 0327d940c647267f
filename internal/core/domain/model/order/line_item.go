package order

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MinQuantity is the smallest quantity of a line. There is no upper bound.
const MinQuantity = 1

// Customization is the resolved choice of one customization group of a menu item,
// for example {"Size", ["Large"], 1.50}. PriceDelta is the sum of the chosen
// options' deltas as the catalog priced them at checkout.
type Customization struct {
	name       string
	options    []string
	priceDelta decimal.Decimal
}

func NewCustomization(name string, options []string, priceDelta decimal.Decimal) (Customization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customization{}, errs.NewValueIsRequiredError("customization.name")
	}
	if len(options) == 0 {
		return Customization{}, errs.NewValueIsRequiredError("customization.options")
	}
	if err := kernel.ValidateMoney("customization.priceDelta", priceDelta); err != nil {
		return Customization{}, err
	}

	return Customization{
		name:       name,
		options:    append([]string(nil), options...),
		priceDelta: kernel.RoundMoney(priceDelta),
	}, nil
}

func (c Customization) Name() string {
	return c.name
}

func (c Customization) Options() []string {
	return append([]string(nil), c.options...)
}

func (c Customization) PriceDelta() decimal.Decimal {
	return c.priceDelta
}

// LineItem is one row of an order. unitPrice is a snapshot of the menu item price
// when the order was placed; it is not a reference to the catalog.
type LineItem struct {
	menuItemID          kernel.UUID
	name                string
	quantity            int
	unitPrice           decimal.Decimal
	customizations      []Customization
	specialInstructions string
}

// NewLineItem validates and builds a line.
//
// Parameters:
//   - menuItemID: catalog reference of the ordered item
//   - name: item name as shown on the menu at checkout
//   - quantity: at least MinQuantity
//   - unitPrice: non negative catalog price, rounded to cents
//   - customizations: resolved customization choices, may be empty
//   - specialInstructions: optional free text for the kitchen
func NewLineItem(
	menuItemID kernel.UUID,
	name string,
	quantity int,
	unitPrice decimal.Decimal,
	customizations []Customization,
	specialInstructions string,
) (LineItem, error) {
	var errQuantity, errPrice error
	if quantity < MinQuantity {
		errQuantity = errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, "∞")
	}
	errPrice = kernel.ValidateMoney("unitPrice", unitPrice)

	if err := errors.Join(menuItemID.Validate(), errQuantity, errPrice); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		menuItemID:          menuItemID,
		name:                strings.TrimSpace(name),
		quantity:            quantity,
		unitPrice:           kernel.RoundMoney(unitPrice),
		customizations:      append([]Customization(nil), customizations...),
		specialInstructions: strings.TrimSpace(specialInstructions),
	}, nil
}

func (l LineItem) MenuItemID() kernel.UUID {
	return l.menuItemID
}

func (l LineItem) Name() string {
	return l.name
}

func (l LineItem) Quantity() int {
	return l.quantity
}

// UnitPrice is the catalog price captured at checkout, without customizations.
func (l LineItem) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

func (l LineItem) Customizations() []Customization {
	return append([]Customization(nil), l.customizations...)
}

func (l LineItem) SpecialInstructions() string {
	return l.specialInstructions
}

// Total returns (unitPrice + sum of customization deltas) * quantity.
func (l LineItem) Total() decimal.Decimal {
	price := l.unitPrice
	for _, c := range l.customizations {
		price = price.Add(c.priceDelta)
	}
	return price.Mul(decimal.NewFromInt(int64(l.quantity)))
}

func (l LineItem) String() string {
	return fmt.Sprintf("%dx %s @ %s", l.quantity, l.menuItemID, l.unitPrice.StringFixed(kernel.MoneyScale))
}
