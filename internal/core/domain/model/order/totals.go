package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// TaxRate is the flat tax applied to the subtotal.
var TaxRate = decimal.RequireFromString("0.10")

// ErrNegativeTotal means the pricing inputs produced a total below zero. It is a
// programming error, not a user facing condition.
var ErrNegativeTotal = errors.New("order total is negative")

// Totals holds the monetary fields of an order. It is computed once at checkout.
type Totals struct {
	subtotal    decimal.Decimal
	deliveryFee decimal.Decimal
	tax         decimal.Decimal
	discount    decimal.Decimal
	total       decimal.Decimal
}

// ComputeTotals prices a set of lines.
//
//	subtotal = sum(line totals)
//	tax      = round(subtotal * TaxRate)
//	total    = subtotal + deliveryFee + tax - discount
//
// Discount is supplied by the caller; promo code resolution does not exist yet
// and always passes zero.
func ComputeTotals(lines []LineItem, deliveryFee, discount decimal.Decimal) (Totals, error) {
	if len(lines) == 0 {
		return Totals{}, errs.NewValueIsRequiredError("items")
	}
	if err := errors.Join(
		kernel.ValidateMoney("deliveryFee", deliveryFee),
		kernel.ValidateMoney("discount", discount),
	); err != nil {
		return Totals{}, err
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Total())
	}
	subtotal = kernel.RoundMoney(subtotal)
	tax := kernel.RoundMoney(subtotal.Mul(TaxRate))
	deliveryFee = kernel.RoundMoney(deliveryFee)
	discount = kernel.RoundMoney(discount)

	return RestoreTotals(subtotal, deliveryFee, tax, discount)
}

// RestoreTotals rebuilds Totals from persisted values and checks the identity
// total = subtotal + deliveryFee + tax - discount.
func RestoreTotals(subtotal, deliveryFee, tax, discount decimal.Decimal) (Totals, error) {
	if err := errors.Join(
		kernel.ValidateMoney("subtotal", subtotal),
		kernel.ValidateMoney("deliveryFee", deliveryFee),
		kernel.ValidateMoney("tax", tax),
		kernel.ValidateMoney("discount", discount),
	); err != nil {
		return Totals{}, err
	}

	total := subtotal.Add(deliveryFee).Add(tax).Sub(discount)
	if total.IsNegative() {
		return Totals{}, fmt.Errorf("%w: %s", ErrNegativeTotal, total.StringFixed(kernel.MoneyScale))
	}

	return Totals{
		subtotal:    subtotal,
		deliveryFee: deliveryFee,
		tax:         tax,
		discount:    discount,
		total:       total,
	}, nil
}

func (t Totals) Subtotal() decimal.Decimal {
	return t.subtotal
}

func (t Totals) DeliveryFee() decimal.Decimal {
	return t.deliveryFee
}

func (t Totals) Tax() decimal.Decimal {
	return t.tax
}

func (t Totals) Discount() decimal.Decimal {
	return t.discount
}

func (t Totals) Total() decimal.Decimal {
	return t.total
}
