// Package catalogrepo persists restaurants and menu items. Customization groups
// of a menu item are stored as a JSON document on the menu item row.
package catalogrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantDTO is the "restaurants" row.
type RestaurantDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name            string          `gorm:"type:varchar(255);not null"`
	Description     string          `gorm:"type:text"`
	Cuisine         string          `gorm:"type:varchar(64);not null;index"`
	DeliveryFee     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryTimeMin int             `gorm:"not null"`
	DeliveryTimeMax int             `gorm:"not null"`
	MinimumOrder    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsOpen          bool            `gorm:"not null"`
	IsActive        bool            `gorm:"not null;index"`
	CreatedAt       time.Time       `gorm:"type:timestamptz;not null;autoCreateTime:false"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO is the "menu_items" row.
type MenuItemDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Description    string          `gorm:"type:text"`
	Category       string          `gorm:"type:varchar(64);not null"`
	Price          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsAvailable    bool            `gorm:"not null"`
	IsActive       bool            `gorm:"not null"`
	Customizations []GroupJSON     `gorm:"type:jsonb;serializer:json"`
	CreatedAt      time.Time       `gorm:"type:timestamptz;not null;autoCreateTime:false"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

type GroupJSON struct {
	Name     string       `json:"name"`
	Multiple bool         `json:"multiple"`
	Required bool         `json:"required"`
	Options  []OptionJSON `json:"options"`
}

type OptionJSON struct {
	Name       string          `json:"name"`
	PriceDelta decimal.Decimal `json:"priceDelta"`
}

func restaurantFromDomain(r *catalog.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:              r.ID().Bytes(),
		OwnerID:         r.OwnerID().Bytes(),
		Name:            r.Name(),
		Description:     r.Description(),
		Cuisine:         r.Cuisine(),
		DeliveryFee:     r.DeliveryFee(),
		DeliveryTimeMin: r.DeliveryTime().MinMinutes,
		DeliveryTimeMax: r.DeliveryTime().MaxMinutes,
		MinimumOrder:    r.MinimumOrder(),
		IsOpen:          r.IsOpen(),
		IsActive:        r.IsActive(),
		CreatedAt:       r.CreatedAt(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*catalog.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreRestaurant(catalog.RestaurantParams{
		ID:           id,
		OwnerID:      ownerID,
		Name:         dto.Name,
		Description:  dto.Description,
		Cuisine:      dto.Cuisine,
		DeliveryFee:  dto.DeliveryFee,
		DeliveryTime: catalog.DeliveryTime{MinMinutes: dto.DeliveryTimeMin, MaxMinutes: dto.DeliveryTimeMax},
		MinimumOrder: dto.MinimumOrder,
		IsOpen:       dto.IsOpen,
		IsActive:     dto.IsActive,
		CreatedAt:    dto.CreatedAt.UTC(),
	})
}

func menuItemFromDomain(m *catalog.MenuItem) MenuItemDTO {
	groups := make([]GroupJSON, 0, len(m.Customizations()))
	for _, g := range m.Customizations() {
		options := make([]OptionJSON, 0, len(g.Options))
		for _, o := range g.Options {
			options = append(options, OptionJSON{Name: o.Name, PriceDelta: o.PriceDelta})
		}
		groups = append(groups, GroupJSON{
			Name:     g.Name,
			Multiple: g.Multiple,
			Required: g.Required,
			Options:  options,
		})
	}

	return MenuItemDTO{
		ID:             m.ID().Bytes(),
		RestaurantID:   m.RestaurantID().Bytes(),
		Name:           m.Name(),
		Description:    m.Description(),
		Category:       m.Category(),
		Price:          m.Price(),
		IsAvailable:    m.IsAvailable(),
		IsActive:       m.IsActive(),
		Customizations: groups,
		CreatedAt:      m.CreatedAt(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	groups := make([]catalog.CustomizationGroup, 0, len(dto.Customizations))
	for _, g := range dto.Customizations {
		options := make([]catalog.Option, 0, len(g.Options))
		for _, o := range g.Options {
			options = append(options, catalog.Option{Name: o.Name, PriceDelta: o.PriceDelta})
		}
		groups = append(groups, catalog.CustomizationGroup{
			Name:     g.Name,
			Multiple: g.Multiple,
			Required: g.Required,
			Options:  options,
		})
	}

	return catalog.RestoreMenuItem(catalog.MenuItemParams{
		ID:             id,
		RestaurantID:   restaurantID,
		Name:           dto.Name,
		Description:    dto.Description,
		Category:       dto.Category,
		Price:          dto.Price,
		IsAvailable:    dto.IsAvailable,
		IsActive:       dto.IsActive,
		Customizations: groups,
		CreatedAt:      dto.CreatedAt.UTC(),
	})
}
