package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListRestaurantsParams defines parameters for ListRestaurants.
type ListRestaurantsParams struct {
	Cuisine *string `form:"cuisine,omitempty" json:"cuisine,omitempty"`
	Page    *int    `form:"page,omitempty" json:"page,omitempty"`
	Limit   *int    `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetRestaurantMenuParams defines parameters for GetRestaurantMenu.
type GetRestaurantMenuParams struct {
	Category           *string `form:"category,omitempty" json:"category,omitempty"`
	IncludeUnavailable *bool   `form:"includeUnavailable,omitempty" json:"includeUnavailable,omitempty"`
}

// GetOrderAnalyticsParams defines parameters for GetOrderAnalytics.
type GetOrderAnalyticsParams struct {
	From      *time.Time `form:"from,omitempty" json:"from,omitempty"`
	To        *time.Time `form:"to,omitempty" json:"to,omitempty"`
	StartDate *time.Time `form:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate   *time.Time `form:"endDate,omitempty" json:"endDate,omitempty"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	CustomerId   *openapi_types.UUID `form:"customerId,omitempty" json:"customerId,omitempty"`
	RestaurantId *openapi_types.UUID `form:"restaurantId,omitempty" json:"restaurantId,omitempty"`
	Status       *string             `form:"status,omitempty" json:"status,omitempty"`
	Page         *int                `form:"page,omitempty" json:"page,omitempty"`
	Limit        *int                `form:"limit,omitempty" json:"limit,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /health)
	GetHealth(ctx echo.Context) error
	// (POST /api/v1/users)
	CreateUser(ctx echo.Context) error
	// (GET /api/v1/users/{userId})
	GetUser(ctx echo.Context, userId openapi_types.UUID) error
	// (POST /api/v1/restaurants)
	CreateRestaurant(ctx echo.Context) error
	// (GET /api/v1/restaurants)
	ListRestaurants(ctx echo.Context, params ListRestaurantsParams) error
	// (GET /api/v1/restaurants/{restaurantId})
	GetRestaurant(ctx echo.Context, restaurantId openapi_types.UUID) error
	// (GET /api/v1/restaurants/{restaurantId}/menu)
	GetRestaurantMenu(ctx echo.Context, restaurantId openapi_types.UUID, params GetRestaurantMenuParams) error
	// (GET /api/v1/restaurants/{restaurantId}/analytics)
	GetOrderAnalytics(ctx echo.Context, restaurantId openapi_types.UUID, params GetOrderAnalyticsParams) error
	// (POST /api/v1/menu-items)
	CreateMenuItem(ctx echo.Context) error
	// (GET /api/v1/menu-items/{menuItemId})
	GetMenuItem(ctx echo.Context, menuItemId openapi_types.UUID) error
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId string) error
	// (PUT /api/v1/orders/{orderId}/status)
	UpdateOrderStatus(ctx echo.Context, orderId string) error
	// (PUT /api/v1/orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderId string) error
	// (GET /api/v1/orders/{orderId}/history)
	GetOrderHistory(ctx echo.Context, orderId string) error
	// (GET /api/v1/orders/{orderId}/events)
	StreamOrderEvents(ctx echo.Context, orderId string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

func (w *ServerInterfaceWrapper) CreateUser(ctx echo.Context) error {
	return w.Handler.CreateUser(ctx)
}

func (w *ServerInterfaceWrapper) GetUser(ctx echo.Context) error {
	var userId openapi_types.UUID
	if err := bindUUIDPath(ctx, "userId", &userId); err != nil {
		return err
	}
	return w.Handler.GetUser(ctx, userId)
}

func (w *ServerInterfaceWrapper) CreateRestaurant(ctx echo.Context) error {
	return w.Handler.CreateRestaurant(ctx)
}

func (w *ServerInterfaceWrapper) ListRestaurants(ctx echo.Context) error {
	var params ListRestaurantsParams
	if err := bindQuery(ctx, "cuisine", &params.Cuisine); err != nil {
		return err
	}
	if err := bindQuery(ctx, "page", &params.Page); err != nil {
		return err
	}
	if err := bindQuery(ctx, "limit", &params.Limit); err != nil {
		return err
	}
	return w.Handler.ListRestaurants(ctx, params)
}

func (w *ServerInterfaceWrapper) GetRestaurant(ctx echo.Context) error {
	var restaurantId openapi_types.UUID
	if err := bindUUIDPath(ctx, "restaurantId", &restaurantId); err != nil {
		return err
	}
	return w.Handler.GetRestaurant(ctx, restaurantId)
}

func (w *ServerInterfaceWrapper) GetRestaurantMenu(ctx echo.Context) error {
	var restaurantId openapi_types.UUID
	if err := bindUUIDPath(ctx, "restaurantId", &restaurantId); err != nil {
		return err
	}

	var params GetRestaurantMenuParams
	if err := bindQuery(ctx, "category", &params.Category); err != nil {
		return err
	}
	if err := bindQuery(ctx, "includeUnavailable", &params.IncludeUnavailable); err != nil {
		return err
	}
	return w.Handler.GetRestaurantMenu(ctx, restaurantId, params)
}

func (w *ServerInterfaceWrapper) GetOrderAnalytics(ctx echo.Context) error {
	var restaurantId openapi_types.UUID
	if err := bindUUIDPath(ctx, "restaurantId", &restaurantId); err != nil {
		return err
	}

	var params GetOrderAnalyticsParams
	if err := bindQuery(ctx, "from", &params.From); err != nil {
		return err
	}
	if err := bindQuery(ctx, "to", &params.To); err != nil {
		return err
	}
	if err := bindQuery(ctx, "startDate", &params.StartDate); err != nil {
		return err
	}
	if err := bindQuery(ctx, "endDate", &params.EndDate); err != nil {
		return err
	}
	return w.Handler.GetOrderAnalytics(ctx, restaurantId, params)
}

func (w *ServerInterfaceWrapper) CreateMenuItem(ctx echo.Context) error {
	return w.Handler.CreateMenuItem(ctx)
}

func (w *ServerInterfaceWrapper) GetMenuItem(ctx echo.Context) error {
	var menuItemId openapi_types.UUID
	if err := bindUUIDPath(ctx, "menuItemId", &menuItemId); err != nil {
		return err
	}
	return w.Handler.GetMenuItem(ctx, menuItemId)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	if err := bindQuery(ctx, "customerId", &params.CustomerId); err != nil {
		return err
	}
	if err := bindQuery(ctx, "restaurantId", &params.RestaurantId); err != nil {
		return err
	}
	if err := bindQuery(ctx, "status", &params.Status); err != nil {
		return err
	}
	if err := bindQuery(ctx, "page", &params.Page); err != nil {
		return err
	}
	if err := bindQuery(ctx, "limit", &params.Limit); err != nil {
		return err
	}
	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var orderId string
	if err := bindStringPath(ctx, "orderId", &orderId); err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	var orderId string
	if err := bindStringPath(ctx, "orderId", &orderId); err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, orderId)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	var orderId string
	if err := bindStringPath(ctx, "orderId", &orderId); err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) GetOrderHistory(ctx echo.Context) error {
	var orderId string
	if err := bindStringPath(ctx, "orderId", &orderId); err != nil {
		return err
	}
	return w.Handler.GetOrderHistory(ctx, orderId)
}

func (w *ServerInterfaceWrapper) StreamOrderEvents(ctx echo.Context) error {
	var orderId string
	if err := bindStringPath(ctx, "orderId", &orderId); err != nil {
		return err
	}
	return w.Handler.StreamOrderEvents(ctx, orderId)
}

func bindUUIDPath(ctx echo.Context, name string, dest *openapi_types.UUID) error {
	return bindPath(ctx, name, dest)
}

func bindStringPath(ctx echo.Context, name string, dest *string) error {
	return bindPath(ctx, name, dest)
}

func bindPath(ctx echo.Context, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

func bindQuery(ctx echo.Context, name string, dest any) error {
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET("/health", w.GetHealth)
	router.POST("/api/v1/users", w.CreateUser)
	router.GET("/api/v1/users/:userId", w.GetUser)
	router.POST("/api/v1/restaurants", w.CreateRestaurant)
	router.GET("/api/v1/restaurants", w.ListRestaurants)
	router.GET("/api/v1/restaurants/:restaurantId", w.GetRestaurant)
	router.GET("/api/v1/restaurants/:restaurantId/menu", w.GetRestaurantMenu)
	router.GET("/api/v1/restaurants/:restaurantId/analytics", w.GetOrderAnalytics)
	router.POST("/api/v1/menu-items", w.CreateMenuItem)
	router.GET("/api/v1/menu-items/:menuItemId", w.GetMenuItem)
	router.POST("/api/v1/orders", w.CreateOrder)
	router.GET("/api/v1/orders", w.ListOrders)
	router.GET("/api/v1/orders/:orderId", w.GetOrder)
	router.PUT("/api/v1/orders/:orderId/status", w.UpdateOrderStatus)
	router.PUT("/api/v1/orders/:orderId/cancel", w.CancelOrder)
	router.GET("/api/v1/orders/:orderId/history", w.GetOrderHistory)
	router.GET("/api/v1/orders/:orderId/events", w.StreamOrderEvents)
}
