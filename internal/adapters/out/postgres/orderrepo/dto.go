// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored as one row in "orders" and one row per line in "order_items";
// customizations of a line are kept as a JSON document on the line row.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Timestamps are owned by the domain, so GORM's automatic tracking is disabled.
type OrderDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Number          string         `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	RestaurantID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	DeliveryAgentID *uuid.UUID     `gorm:"type:uuid;index"`
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	Subtotal    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Tax         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Discount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	Status        string `gorm:"type:varchar(32);not null;index"`
	PaymentMethod string `gorm:"type:varchar(16);not null"`
	PaymentStatus string `gorm:"type:varchar(16);not null"`

	DeliveryAddress      AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	DeliveryInstructions string     `gorm:"type:text"`
	PromoCode            string     `gorm:"type:varchar(64)"`
	Notes                string     `gorm:"type:text"`

	EstimatedDeliveryTime time.Time  `gorm:"type:timestamptz;not null;index"`
	ActualDeliveryTime    *time.Time `gorm:"type:timestamptz"`
	CreatedAt             time.Time  `gorm:"type:timestamptz;not null;index;autoCreateTime:false"`
	UpdatedAt             time.Time  `gorm:"type:timestamptz;not null;autoUpdateTime:false"`
}

// TableName overrides GORM's default "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is the delivery address snapshot embedded in the order row.
type AddressDTO struct {
	Label   string  `gorm:"type:varchar(64)"`
	Address string  `gorm:"type:text;not null"`
	Lat     float64 `gorm:"type:double precision;not null"`
	Lng     float64 `gorm:"type:double precision;not null"`
}

// OrderItemDTO is one line of an order. Position keeps the lines in checkout order.
type OrderItemDTO struct {
	ID                  uint                `gorm:"primaryKey;autoIncrement"`
	OrderID             uuid.UUID           `gorm:"type:uuid;not null;index"`
	Position            int                 `gorm:"not null"`
	MenuItemID          uuid.UUID           `gorm:"type:uuid;not null"`
	Name                string              `gorm:"type:varchar(255);not null"`
	Quantity            int                 `gorm:"not null"`
	UnitPrice           decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	Customizations      []CustomizationJSON `gorm:"type:jsonb;serializer:json"`
	SpecialInstructions string              `gorm:"type:text"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// CustomizationJSON is the stored shape of a resolved customization.
type CustomizationJSON struct {
	Name       string          `json:"name"`
	Options    []string        `json:"options"`
	PriceDelta decimal.Decimal `json:"priceDelta"`
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	var agentID *uuid.UUID
	if id := o.DeliveryAgentID(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	items := make([]OrderItemDTO, 0, len(o.Lines()))
	for i, line := range o.Lines() {
		customizations := make([]CustomizationJSON, 0, len(line.Customizations()))
		for _, c := range line.Customizations() {
			customizations = append(customizations, CustomizationJSON{
				Name:       c.Name(),
				Options:    c.Options(),
				PriceDelta: c.PriceDelta(),
			})
		}

		items = append(items, OrderItemDTO{
			OrderID:             orderID,
			Position:            i,
			MenuItemID:          line.MenuItemID().Bytes(),
			Name:                line.Name(),
			Quantity:            line.Quantity(),
			UnitPrice:           line.UnitPrice(),
			Customizations:      customizations,
			SpecialInstructions: line.SpecialInstructions(),
		})
	}

	totals := o.Totals()
	address := o.DeliveryAddress()

	return OrderDTO{
		ID:              orderID,
		Number:          o.Number().String(),
		CustomerID:      o.CustomerID().Bytes(),
		RestaurantID:    o.RestaurantID().Bytes(),
		DeliveryAgentID: agentID,
		Items:           items,
		Subtotal:        totals.Subtotal(),
		DeliveryFee:     totals.DeliveryFee(),
		Tax:             totals.Tax(),
		Discount:        totals.Discount(),
		Total:           totals.Total(),
		Status:          o.Status().String(),
		PaymentMethod:   o.PaymentMethod().String(),
		PaymentStatus:   o.PaymentStatus().String(),
		DeliveryAddress: AddressDTO{
			Label:   address.Label(),
			Address: address.Address(),
			Lat:     address.Location().Lat(),
			Lng:     address.Location().Lng(),
		},
		DeliveryInstructions:  o.DeliveryInstructions(),
		PromoCode:             o.PromoCode(),
		Notes:                 o.Notes(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		ActualDeliveryTime:    o.ActualDeliveryTime(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}
}

// toDomain rebuilds the aggregate with RestoreOrder. Stored totals are trusted.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.DeliveryAgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.DeliveryAgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &aID
	}

	lines := make([]order.LineItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		line, lineErr := lineToDomain(item)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	totals, err := order.RestoreTotals(dto.Subtotal, dto.DeliveryFee, dto.Tax, dto.Discount)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.DeliveryAddress.Lat, dto.DeliveryAddress.Lng)
	if err != nil {
		return nil, err
	}
	address, err := order.NewDeliveryAddress(dto.DeliveryAddress.Label, dto.DeliveryAddress.Address, location)
	if err != nil {
		return nil, err
	}

	method, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	var delivered *time.Time
	if dto.ActualDeliveryTime != nil {
		at := dto.ActualDeliveryTime.UTC()
		delivered = &at
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:                    id,
		Number:                order.Number(dto.Number),
		CustomerID:            customerID,
		RestaurantID:          restaurantID,
		DeliveryAgentID:       agentID,
		Lines:                 lines,
		Totals:                totals,
		Status:                order.Status(dto.Status),
		PaymentMethod:         method,
		PaymentStatus:         paymentStatus,
		DeliveryAddress:       address,
		DeliveryInstructions:  dto.DeliveryInstructions,
		PromoCode:             dto.PromoCode,
		Notes:                 dto.Notes,
		EstimatedDeliveryTime: dto.EstimatedDeliveryTime.UTC(),
		ActualDeliveryTime:    delivered,
		CreatedAt:             dto.CreatedAt.UTC(),
		UpdatedAt:             dto.UpdatedAt.UTC(),
	})
}

func lineToDomain(dto OrderItemDTO) (order.LineItem, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	customizations := make([]order.Customization, 0, len(dto.Customizations))
	for _, c := range dto.Customizations {
		customization, cErr := order.NewCustomization(c.Name, c.Options, c.PriceDelta)
		if cErr != nil {
			return order.LineItem{}, cErr
		}
		customizations = append(customizations, customization)
	}

	return order.NewLineItem(menuItemID, dto.Name, dto.Quantity, dto.UnitPrice, customizations, dto.SpecialInstructions)
}
