package order

import (
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Analytics is a summary over a set of orders of one restaurant.
type Analytics struct {
	TotalOrders       int
	TotalRevenue      decimal.Decimal
	AverageOrderValue decimal.Decimal
	StatusBreakdown   map[Status]int
}

// Summarize reduces orders into Analytics. Every order counts towards revenue
// whatever its status. An empty set yields zero for every figure.
func Summarize(orders []*Order) Analytics {
	a := Analytics{
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
		StatusBreakdown:   make(map[Status]int),
	}

	for _, o := range orders {
		if o == nil {
			continue
		}
		a.TotalOrders++
		a.TotalRevenue = a.TotalRevenue.Add(o.totals.Total())
		a.StatusBreakdown[o.status]++
	}

	if a.TotalOrders > 0 {
		a.AverageOrderValue = kernel.RoundMoney(a.TotalRevenue.Div(decimal.NewFromInt(int64(a.TotalOrders))))
	}

	return a
}
