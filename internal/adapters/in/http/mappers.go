package http

import (
	"encoding/json"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"

	"github.com/shopspring/decimal"
)

func money(d decimal.Decimal) Money {
	return json.Number(d.StringFixed(2))
}

func toUser(u *user.User) User {
	return User{
		Id:        u.ID().String(),
		Name:      u.Name(),
		Email:     u.Email(),
		Phone:     u.Phone(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}

func toRestaurant(r *catalog.Restaurant) Restaurant {
	return Restaurant{
		Id:          r.ID().String(),
		OwnerId:     r.OwnerID().String(),
		Name:        r.Name(),
		Description: r.Description(),
		Cuisine:     r.Cuisine(),
		DeliveryFee: money(r.DeliveryFee()),
		DeliveryTime: DeliveryTime{
			Min: r.DeliveryTime().MinMinutes,
			Max: r.DeliveryTime().MaxMinutes,
		},
		MinimumOrder: money(r.MinimumOrder()),
		IsOpen:       r.IsOpen(),
		IsActive:     r.IsActive(),
		CreatedAt:    r.CreatedAt(),
	}
}

func toMenuItem(m *catalog.MenuItem) MenuItem {
	groups := make([]CustomizationGroupView, 0, len(m.Customizations()))
	for _, g := range m.Customizations() {
		options := make([]CustomizationOptionView, 0, len(g.Options))
		for _, o := range g.Options {
			options = append(options, CustomizationOptionView{Name: o.Name, Price: money(o.PriceDelta)})
		}
		groups = append(groups, CustomizationGroupView{
			Name:       g.Name,
			Multiple:   g.Multiple,
			IsRequired: g.Required,
			Options:    options,
		})
	}

	return MenuItem{
		Id:             m.ID().String(),
		RestaurantId:   m.RestaurantID().String(),
		Name:           m.Name(),
		Description:    m.Description(),
		Category:       m.Category(),
		Price:          money(m.Price()),
		IsAvailable:    m.IsAvailable(),
		IsActive:       m.IsActive(),
		Customizations: groups,
		CreatedAt:      m.CreatedAt(),
	}
}

func toMenu(items []*catalog.MenuItem) []MenuItem {
	out := make([]MenuItem, 0, len(items))
	for _, m := range items {
		out = append(out, toMenuItem(m))
	}
	return out
}

func toOrder(o *order.Order) Order {
	items := make([]OrderItem, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		custom := make([]OrderItemCustomization, 0, len(l.Customizations()))
		for _, c := range l.Customizations() {
			custom = append(custom, OrderItemCustomization{
				Name:    c.Name(),
				Options: c.Options(),
				Price:   money(c.PriceDelta()),
			})
		}
		items = append(items, OrderItem{
			MenuItemId:          l.MenuItemID().String(),
			Name:                l.Name(),
			Quantity:            l.Quantity(),
			Price:               money(l.UnitPrice()),
			Customizations:      custom,
			SpecialInstructions: l.SpecialInstructions(),
		})
	}

	var agentID *string
	if id := o.DeliveryAgentID(); id != nil {
		s := id.String()
		agentID = &s
	}

	addr := o.DeliveryAddress()
	totals := o.Totals()

	return Order{
		Id:              o.ID().String(),
		OrderNumber:     o.Number().String(),
		CustomerId:      o.CustomerID().String(),
		RestaurantId:    o.RestaurantID().String(),
		DeliveryAgentId: agentID,
		Items:           items,
		Status:          o.Status().String(),
		DeliveryAddress: Address{
			Label:   addr.Label(),
			Address: addr.Address(),
			Coordinates: Coordinates{
				Lat: addr.Location().Lat(),
				Lng: addr.Location().Lng(),
			},
		},
		DeliveryInstructions:  o.DeliveryInstructions(),
		Subtotal:              money(totals.Subtotal()),
		DeliveryFee:           money(totals.DeliveryFee()),
		Tax:                   money(totals.Tax()),
		Discount:              money(totals.Discount()),
		TotalAmount:           money(totals.Total()),
		PaymentMethod:         o.PaymentMethod().String(),
		PaymentStatus:         o.PaymentStatus().String(),
		PromoCode:             o.PromoCode(),
		Notes:                 o.Notes(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		ActualDeliveryTime:    o.ActualDeliveryTime(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}
}

func toOrders(orders []*order.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrder(o))
	}
	return out
}

func toAuditEntries(entries []ports.AuditEntry) []AuditEntry {
	out := make([]AuditEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditEntry{Action: e.Action, Status: e.Status, Details: e.Details, At: e.At})
	}
	return out
}

func toAnalytics(a order.Analytics) Analytics {
	breakdown := make(map[string]int, len(a.StatusBreakdown))
	for status, n := range a.StatusBreakdown {
		breakdown[status.String()] = n
	}
	return Analytics{
		TotalOrders:       a.TotalOrders,
		TotalRevenue:      money(a.TotalRevenue),
		AverageOrderValue: money(a.AverageOrderValue),
		StatusBreakdown:   breakdown,
	}
}
