package services

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMenuItemMissing is returned when a cart line has no resolved menu item.
var ErrMenuItemMissing = errors.New("cart line has no menu item")

// CartLine is one requested line whose menu item has already been loaded from the
// catalog.
type CartLine struct {
	Item                *catalog.MenuItem
	Quantity            int
	Selections          []catalog.Selection
	SpecialInstructions string
}

// PricedCart is the outcome of pricing: order lines carrying price snapshots and the
// totals computed from them.
type PricedCart struct {
	Lines  []order.LineItem
	Totals order.Totals
}

// CheckoutPricer prices a cart against the catalog.
//
// Business rules:
//   - The restaurant must accept orders
//   - Every item must belong to the restaurant and be orderable
//   - Customization deltas are taken from the catalog, never from the client
//   - Unit prices are snapshotted onto the lines
//   - Delivery fee is the restaurant's flat fee; tax is order.TaxRate of the subtotal
//   - Discount is zero: promo codes are recorded on the order but not resolved
//
// Example usage:
//
//	pricer := services.NewCheckoutPricer()
//	cart, err := pricer.Price(restaurant, []services.CartLine{{Item: margherita, Quantity: 2}}, "")
type CheckoutPricer struct{}

func NewCheckoutPricer() CheckoutPricer {
	return CheckoutPricer{}
}

// Price validates and prices lines in the order given. The first failing line aborts
// pricing and nothing is returned.
func (p CheckoutPricer) Price(restaurant *catalog.Restaurant, lines []CartLine, promoCode string) (PricedCart, error) {
	if err := restaurant.Validate(); err != nil {
		return PricedCart{}, err
	}
	if err := restaurant.ValidateAcceptsOrders(); err != nil {
		return PricedCart{}, err
	}
	if len(lines) == 0 {
		return PricedCart{}, errs.NewValueIsRequiredError("items")
	}

	priced := make([]order.LineItem, 0, len(lines))
	for i, l := range lines {
		line, err := p.priceLine(restaurant, l)
		if err != nil {
			return PricedCart{}, fmt.Errorf("items[%d]: %w", i, err)
		}
		priced = append(priced, line)
	}

	totals, err := order.ComputeTotals(priced, restaurant.DeliveryFee(), p.Discount(promoCode))
	if err != nil {
		return PricedCart{}, err
	}

	return PricedCart{Lines: priced, Totals: totals}, nil
}

// Discount resolves a promo code into an amount off the order. No promo code scheme
// exists yet, so every code is worth zero.
func (p CheckoutPricer) Discount(_ string) decimal.Decimal {
	return decimal.Zero
}

func (p CheckoutPricer) priceLine(restaurant *catalog.Restaurant, l CartLine) (order.LineItem, error) {
	if l.Item == nil {
		return order.LineItem{}, ErrMenuItemMissing
	}
	if err := l.Item.Validate(); err != nil {
		return order.LineItem{}, err
	}
	if err := l.Item.ValidateOrderable(restaurant.ID()); err != nil {
		return order.LineItem{}, err
	}

	selections, err := l.Item.PriceSelections(l.Selections)
	if err != nil {
		return order.LineItem{}, err
	}

	customizations := make([]order.Customization, 0, len(selections))
	for _, s := range selections {
		c, err := order.NewCustomization(s.Group, s.Options, s.PriceDelta)
		if err != nil {
			return order.LineItem{}, err
		}
		customizations = append(customizations, c)
	}

	return order.NewLineItem(
		l.Item.ID(),
		l.Item.Name(),
		l.Quantity,
		l.Item.Price(),
		customizations,
		l.SpecialInstructions,
	)
}
