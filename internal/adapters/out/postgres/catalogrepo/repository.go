package catalogrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements ports.RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

func (r *GormRestaurantRepository) Add(ctx context.Context, restaurant *catalog.Restaurant) error {
	if err := restaurant.Validate(); err != nil {
		return err
	}

	dto := restaurantFromDomain(restaurant)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return restaurantToDomain(dto)
}

// List pages through active restaurants ordered by name. Cuisine matches case
// insensitively.
func (r *GormRestaurantRepository) List(
	ctx context.Context,
	filter ports.RestaurantFilter,
	page ports.Page,
) ([]*catalog.Restaurant, int64, error) {
	query := r.db.WithContext(ctx).Model(&RestaurantDTO{}).Where("is_active = ?", true)
	if filter.Cuisine != "" {
		query = query.Where("LOWER(cuisine) = LOWER(?)", filter.Cuisine)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dtos []RestaurantDTO
	if err := query.Order("name").Order("id").Offset(page.Offset()).Limit(page.Size).Find(&dtos).Error; err != nil {
		return nil, 0, err
	}

	restaurants := make([]*catalog.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		restaurant, err := restaurantToDomain(dto)
		if err != nil {
			return nil, 0, err
		}
		restaurants = append(restaurants, restaurant)
	}

	return restaurants, total, nil
}

// GormMenuItemRepository implements ports.MenuItemRepository using GORM.
type GormMenuItemRepository struct {
	db *gorm.DB
}

func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

func (r *GormMenuItemRepository) Add(ctx context.Context, item *catalog.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuItem", id.String())
		}
		return nil, err
	}

	return menuItemToDomain(dto)
}

func (r *GormMenuItemRepository) ListByRestaurant(
	ctx context.Context,
	restaurantID kernel.UUID,
	filter ports.MenuFilter,
) ([]*catalog.MenuItem, error) {
	query := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID.Bytes())
	if !filter.IncludeUnavailable {
		query = query.Where("is_available = ? AND is_active = ?", true, true)
	}
	if filter.Category != "" {
		query = query.Where("LOWER(category) = LOWER(?)", filter.Category)
	}

	var dtos []MenuItemDTO
	if err := query.Order("category").Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*catalog.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := menuItemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
