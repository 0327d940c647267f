// Package http is the inbound REST adapter. Handlers translate requests into
// commands and queries and map their results and errors back to JSON.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handler is the shape shared by command and query handlers.
type Handler[Q, R any] interface {
	Handle(ctx context.Context, q Q) (R, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc[Q, R any] func(ctx context.Context, q Q) (R, error)

func (f HandlerFunc[Q, R]) Handle(ctx context.Context, q Q) (R, error) {
	return f(ctx, q)
}

// Handlers groups the use cases the server exposes.
type Handlers struct {
	// Command handlers
	CreateUser        Handler[commands.CreateUserCommand, *user.User]
	CreateRestaurant  Handler[commands.CreateRestaurantCommand, *catalog.Restaurant]
	CreateMenuItem    Handler[commands.CreateMenuItemCommand, *catalog.MenuItem]
	CreateOrder       Handler[commands.CreateOrderCommand, *order.Order]
	UpdateOrderStatus Handler[commands.UpdateOrderStatusCommand, *order.Order]
	CancelOrder       Handler[commands.CancelOrderCommand, *order.Order]

	// Query handlers
	GetUser         Handler[kernel.UUID, *user.User]
	GetRestaurant   Handler[kernel.UUID, *catalog.Restaurant]
	ListRestaurants Handler[queries.ListRestaurantsQuery, queries.ListRestaurantsQueryResponse]
	GetMenuItem     Handler[kernel.UUID, *catalog.MenuItem]
	ListMenu        Handler[queries.ListMenuQuery, []*catalog.MenuItem]
	GetOrder        Handler[queries.GetOrderQuery, *order.Order]
	ListOrders      Handler[queries.ListOrdersQuery, queries.ListOrdersQueryResponse]
	OrderAnalytics  Handler[queries.GetOrderAnalyticsQuery, order.Analytics]
	OrderHistory    Handler[queries.GetOrderHistoryQuery, []ports.AuditEntry]
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h         Handlers
	events    ports.EventBus
	heartbeat time.Duration
	logger    *slog.Logger
}

// NewServer creates a new HTTP server. events feeds the order event streams.
func NewServer(handlers Handlers, events ports.EventBus, logger *slog.Logger) *Server {
	return &Server{
		h:         handlers,
		events:    events,
		heartbeat: DefaultHeartbeat,
		logger:    logger.With("component", "http"),
	}
}

var _ ServerInterface = (*Server)(nil)

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateUser handles POST /api/v1/users.
func (s *Server) CreateUser(ctx echo.Context) error {
	var req NewUser
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	role := user.RoleCustomer
	if req.Role != "" {
		parsed, err := user.ParseRole(req.Role)
		if err != nil {
			return s.fail(ctx, err)
		}
		role = parsed
	}

	cmd, err := commands.NewCreateUserCommand(req.Name, req.Email, req.Phone, role)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.h.CreateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toUser(created))
}

// GetUser handles GET /api/v1/users/{userId}.
func (s *Server) GetUser(ctx echo.Context, userId openapi_types.UUID) error {
	id, err := kernelID(userId)
	if err != nil {
		return s.fail(ctx, err)
	}

	u, err := s.h.GetUser.Handle(ctx.Request().Context(), id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toUser(u))
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var req NewRestaurant
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateRestaurantCommand(
		ownerID,
		req.Name, req.Description, req.Cuisine,
		req.DeliveryFee,
		catalog.DeliveryTime{MinMinutes: req.DeliveryTime.Min, MaxMinutes: req.DeliveryTime.Max},
		req.MinimumOrder,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.h.CreateRestaurant.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toRestaurant(created))
}

// ListRestaurants handles GET /api/v1/restaurants.
func (s *Server) ListRestaurants(ctx echo.Context, params ListRestaurantsParams) error {
	query, err := queries.NewListRestaurantsQuery(deref(params.Cuisine), deref(params.Page), deref(params.Limit))
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.h.ListRestaurants.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	restaurants := make([]Restaurant, 0, len(res.Restaurants))
	for _, r := range res.Restaurants {
		restaurants = append(restaurants, toRestaurant(r))
	}
	return ctx.JSON(http.StatusOK, RestaurantPage{
		Restaurants: restaurants,
		Total:       res.Total,
		TotalPages:  res.TotalPages,
		CurrentPage: res.CurrentPage,
	})
}

// GetRestaurant handles GET /api/v1/restaurants/{restaurantId}.
func (s *Server) GetRestaurant(ctx echo.Context, restaurantId openapi_types.UUID) error {
	id, err := kernelID(restaurantId)
	if err != nil {
		return s.fail(ctx, err)
	}

	r, err := s.h.GetRestaurant.Handle(ctx.Request().Context(), id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toRestaurant(r))
}

// GetRestaurantMenu handles GET /api/v1/restaurants/{restaurantId}/menu.
func (s *Server) GetRestaurantMenu(
	ctx echo.Context,
	restaurantId openapi_types.UUID,
	params GetRestaurantMenuParams,
) error {
	id, err := kernelID(restaurantId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListMenuQuery(id, deref(params.Category), deref(params.IncludeUnavailable))
	if err != nil {
		return s.fail(ctx, err)
	}

	items, err := s.h.ListMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toMenu(items))
}

// GetOrderAnalytics handles GET /api/v1/restaurants/{restaurantId}/analytics.
func (s *Server) GetOrderAnalytics(
	ctx echo.Context,
	restaurantId openapi_types.UUID,
	params GetOrderAnalyticsParams,
) error {
	id, err := kernelID(restaurantId)
	if err != nil {
		return s.fail(ctx, err)
	}

	// startDate and endDate are older names of from and to.
	from, to := params.From, params.To
	if from == nil {
		from = params.StartDate
	}
	if to == nil {
		to = params.EndDate
	}

	query, err := queries.NewGetOrderAnalyticsQuery(id, from, to)
	if err != nil {
		return s.fail(ctx, err)
	}

	analytics, err := s.h.OrderAnalytics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAnalytics(analytics))
}

// CreateMenuItem handles POST /api/v1/menu-items.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var req NewMenuItem
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantId)
	if err != nil {
		return s.fail(ctx, err)
	}

	groups := make([]catalog.CustomizationGroup, 0, len(req.Customizations))
	for _, g := range req.Customizations {
		options := make([]catalog.Option, 0, len(g.Options))
		for _, o := range g.Options {
			options = append(options, catalog.Option{Name: o.Name, PriceDelta: o.Price})
		}
		groups = append(groups, catalog.CustomizationGroup{
			Name:     g.Name,
			Multiple: g.Multiple,
			Required: g.IsRequired,
			Options:  options,
		})
	}

	cmd, err := commands.NewCreateMenuItemCommand(
		restaurantID, req.Name, req.Description, req.Category, req.Price, groups,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.h.CreateMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toMenuItem(created))
}

// GetMenuItem handles GET /api/v1/menu-items/{menuItemId}.
func (s *Server) GetMenuItem(ctx echo.Context, menuItemId openapi_types.UUID) error {
	id, err := kernelID(menuItemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	item, err := s.h.GetMenuItem.Handle(ctx.Request().Context(), id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toMenuItem(item))
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrder
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	cmd, err := newCreateOrderCommand(req)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toOrder(created))
}

func newCreateOrderCommand(req NewOrder) (commands.CreateOrderCommand, error) {
	customerID, err := kernel.UUIDFromString(req.CustomerId)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	restaurantID, err := kernel.UUIDFromString(req.RestaurantId)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	lines := make([]commands.OrderLineRequest, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, idErr := kernel.UUIDFromString(item.MenuItemId)
		if idErr != nil {
			return commands.CreateOrderCommand{}, idErr
		}

		selections := make([]catalog.Selection, 0, len(item.Customizations))
		for _, c := range item.Customizations {
			selections = append(selections, catalog.Selection{Group: c.Name, Options: c.Options})
		}

		lines = append(lines, commands.OrderLineRequest{
			MenuItemID:          menuItemID,
			Quantity:            item.Quantity,
			Customizations:      selections,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	point, err := kernel.NewGeoPoint(req.DeliveryAddress.Coordinates.Lat, req.DeliveryAddress.Coordinates.Lng)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	address, err := order.NewDeliveryAddress(req.DeliveryAddress.Label, req.DeliveryAddress.Address, point)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	method, err := order.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(
		customerID, restaurantID, lines, address, req.DeliveryInstructions, method, req.PromoCode,
	)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	customerID, err := optionalKernelID(params.CustomerId)
	if err != nil {
		return s.fail(ctx, err)
	}
	restaurantID, err := optionalKernelID(params.RestaurantId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var status *order.Status
	if params.Status != nil {
		parsed, parseErr := order.ParseStatus(*params.Status)
		if parseErr != nil {
			return s.fail(ctx, parseErr)
		}
		status = &parsed
	}

	query, err := queries.NewListOrdersQuery(customerID, restaurantID, status, deref(params.Page), deref(params.Limit))
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, OrderPage{
		Orders:      toOrders(res.Orders),
		Total:       res.Total,
		TotalPages:  res.TotalPages,
		CurrentPage: res.CurrentPage,
	})
}

// GetOrder handles GET /api/v1/orders/{orderId}. orderId is an id or an order number.
func (s *Server) GetOrder(ctx echo.Context, orderId string) error {
	o, err := s.resolveOrder(ctx.Request().Context(), orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId string) error {
	var req StatusChange
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	var agentID *kernel.UUID
	if req.DeliveryAgentId != "" {
		id, idErr := kernel.UUIDFromString(req.DeliveryAgentId)
		if idErr != nil {
			return s.fail(ctx, idErr)
		}
		agentID = &id
	}

	o, err := s.resolveOrder(ctx.Request().Context(), orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), status, agentID)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.h.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(updated))
}

// CancelOrder handles PUT /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId string) error {
	var req Cancellation
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	o, err := s.resolveOrder(ctx.Request().Context(), orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(o.ID(), req.Reason)
	if err != nil {
		return s.fail(ctx, err)
	}

	cancelled, err := s.h.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(cancelled))
}

// GetOrderHistory handles GET /api/v1/orders/{orderId}/history.
func (s *Server) GetOrderHistory(ctx echo.Context, orderId string) error {
	o, err := s.resolveOrder(ctx.Request().Context(), orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(o.ID())
	if err != nil {
		return s.fail(ctx, err)
	}

	entries, err := s.h.OrderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAuditEntries(entries))
}

func (s *Server) resolveOrder(ctx context.Context, ref string) (*order.Order, error) {
	query, err := queries.NewGetOrderQuery(ref)
	if err != nil {
		return nil, err
	}
	return s.h.GetOrder.Handle(ctx, query)
}

// bind decodes the JSON body into req and validates it. Failures are returned as
// 400 echo.HTTPErrors for the error handler to render.
func (s *Server) bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := ctx.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, flatten(err))
	}
	return nil
}

func kernelID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optionalKernelID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := kernelID(*id)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
