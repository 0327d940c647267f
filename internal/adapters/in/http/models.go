package http

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Money is a non negative amount rendered as a JSON number with two decimals.
type Money = json.Number

type NewUser struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Role  string `json:"role,omitempty" validate:"omitempty,oneof=customer delivery_agent restaurant_owner"`
}

type User struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type DeliveryTime struct {
	Min int `json:"min" validate:"required,min=1"`
	Max int `json:"max" validate:"required,gtefield=Min"`
}

type NewRestaurant struct {
	OwnerId      string          `json:"ownerId" validate:"required,uuid"`
	Name         string          `json:"name" validate:"required,max=100"`
	Description  string          `json:"description,omitempty" validate:"max=500"`
	Cuisine      string          `json:"cuisine" validate:"required"`
	DeliveryFee  decimal.Decimal `json:"deliveryFee"`
	DeliveryTime DeliveryTime    `json:"deliveryTime"`
	MinimumOrder decimal.Decimal `json:"minimumOrder"`
}

type Restaurant struct {
	Id           string       `json:"id"`
	OwnerId      string       `json:"ownerId"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Cuisine      string       `json:"cuisine"`
	DeliveryFee  Money        `json:"deliveryFee"`
	DeliveryTime DeliveryTime `json:"deliveryTime"`
	MinimumOrder Money        `json:"minimumOrder"`
	IsOpen       bool         `json:"isOpen"`
	IsActive     bool         `json:"isActive"`
	CreatedAt    time.Time    `json:"createdAt"`
}

type RestaurantPage struct {
	Restaurants []Restaurant `json:"restaurants"`
	Total       int64        `json:"total"`
	TotalPages  int          `json:"totalPages"`
	CurrentPage int          `json:"currentPage"`
}

type CustomizationOption struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

type CustomizationGroup struct {
	Name       string                `json:"name" validate:"required"`
	Multiple   bool                  `json:"multiple"`
	IsRequired bool                  `json:"isRequired"`
	Options    []CustomizationOption `json:"options" validate:"required,min=1,dive"`
}

type NewMenuItem struct {
	RestaurantId   string               `json:"restaurantId" validate:"required,uuid"`
	Name           string               `json:"name" validate:"required,max=100"`
	Description    string               `json:"description,omitempty" validate:"max=500"`
	Category       string               `json:"category" validate:"required"`
	Price          decimal.Decimal      `json:"price"`
	Customizations []CustomizationGroup `json:"customizations,omitempty" validate:"dive"`
}

type CustomizationOptionView struct {
	Name  string `json:"name"`
	Price Money  `json:"price"`
}

type CustomizationGroupView struct {
	Name       string                    `json:"name"`
	Multiple   bool                      `json:"multiple"`
	IsRequired bool                      `json:"isRequired"`
	Options    []CustomizationOptionView `json:"options"`
}

type MenuItem struct {
	Id             string                   `json:"id"`
	RestaurantId   string                   `json:"restaurantId"`
	Name           string                   `json:"name"`
	Description    string                   `json:"description,omitempty"`
	Category       string                   `json:"category"`
	Price          Money                    `json:"price"`
	IsAvailable    bool                     `json:"isAvailable"`
	IsActive       bool                     `json:"isActive"`
	Customizations []CustomizationGroupView `json:"customizations"`
	CreatedAt      time.Time                `json:"createdAt"`
}

type Coordinates struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type Address struct {
	Label       string      `json:"label,omitempty"`
	Address     string      `json:"address" validate:"required"`
	Coordinates Coordinates `json:"coordinates"`
}

type SelectedCustomization struct {
	Name    string   `json:"name" validate:"required"`
	Options []string `json:"options" validate:"required,min=1,dive,required"`
}

type NewOrderItem struct {
	MenuItemId          string                  `json:"menuItemId" validate:"required,uuid"`
	Quantity            int                     `json:"quantity" validate:"required,min=1"`
	Customizations      []SelectedCustomization `json:"customizations,omitempty" validate:"dive"`
	SpecialInstructions string                  `json:"specialInstructions,omitempty" validate:"max=500"`
}

type NewOrder struct {
	CustomerId           string         `json:"customerId" validate:"required,uuid"`
	RestaurantId         string         `json:"restaurantId" validate:"required,uuid"`
	Items                []NewOrderItem `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress      Address        `json:"deliveryAddress"`
	DeliveryInstructions string         `json:"deliveryInstructions,omitempty" validate:"max=500"`
	PaymentMethod        string         `json:"paymentMethod" validate:"required,oneof=card upi wallet cod"`
	PromoCode            string         `json:"promoCode,omitempty"`
}

type OrderItemCustomization struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
	Price   Money    `json:"price"`
}

type OrderItem struct {
	MenuItemId          string                   `json:"menuItemId"`
	Name                string                   `json:"name"`
	Quantity            int                      `json:"quantity"`
	Price               Money                    `json:"price"`
	Customizations      []OrderItemCustomization `json:"customizations"`
	SpecialInstructions string                   `json:"specialInstructions,omitempty"`
}

type Order struct {
	Id                    string      `json:"id"`
	OrderNumber           string      `json:"orderNumber"`
	CustomerId            string      `json:"customerId"`
	RestaurantId          string      `json:"restaurantId"`
	DeliveryAgentId       *string     `json:"deliveryAgentId,omitempty"`
	Items                 []OrderItem `json:"items"`
	Status                string      `json:"status"`
	DeliveryAddress       Address     `json:"deliveryAddress"`
	DeliveryInstructions  string      `json:"deliveryInstructions,omitempty"`
	Subtotal              Money       `json:"subtotal"`
	DeliveryFee           Money       `json:"deliveryFee"`
	Tax                   Money       `json:"tax"`
	Discount              Money       `json:"discount"`
	TotalAmount           Money       `json:"totalAmount"`
	PaymentMethod         string      `json:"paymentMethod"`
	PaymentStatus         string      `json:"paymentStatus"`
	PromoCode             string      `json:"promoCode,omitempty"`
	Notes                 string      `json:"notes,omitempty"`
	EstimatedDeliveryTime time.Time   `json:"estimatedDeliveryTime"`
	ActualDeliveryTime    *time.Time  `json:"actualDeliveryTime,omitempty"`
	CreatedAt             time.Time   `json:"createdAt"`
	UpdatedAt             time.Time   `json:"updatedAt"`
}

type OrderPage struct {
	Orders      []Order `json:"orders"`
	Total       int64   `json:"total"`
	TotalPages  int     `json:"totalPages"`
	CurrentPage int     `json:"currentPage"`
}

type StatusChange struct {
	Status          string `json:"status" validate:"required"`
	DeliveryAgentId string `json:"deliveryAgentId,omitempty" validate:"omitempty,uuid"`
}

type Cancellation struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type AuditEntry struct {
	Action  string            `json:"action"`
	Status  string            `json:"status"`
	Details map[string]string `json:"details,omitempty"`
	At      time.Time         `json:"at"`
}

type Analytics struct {
	TotalOrders       int            `json:"totalOrders"`
	TotalRevenue      Money          `json:"totalRevenue"`
	AverageOrderValue Money          `json:"averageOrderValue"`
	StatusBreakdown   map[string]int `json:"statusBreakdown"`
}
