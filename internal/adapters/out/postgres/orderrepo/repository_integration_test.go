package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

var placedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// OrderRepositoryIntegrationTestSuite verifies order persistence against a real
// PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsAggregate() {
	ctx := context.Background()
	original := suite.newOrder(kernel.NewUUID(), kernel.NewUUID(), placedAt)

	suite.Require().NoError(suite.repository.Add(ctx, original))

	got, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(got.ID()))
	suite.Equal(original.Number(), got.Number())
	suite.Equal(order.Pending, got.Status())
	suite.Equal(order.PaymentUPI, got.PaymentMethod())
	suite.Equal(order.PaymentPending, got.PaymentStatus())
	suite.Equal("Home", got.DeliveryAddress().Label())
	suite.InDelta(12.9716, got.DeliveryAddress().Location().Lat(), 1e-9)
	suite.Equal("SAVE10", got.PromoCode())
	suite.True(placedAt.Equal(got.CreatedAt()))
	suite.True(original.EstimatedDeliveryTime().Equal(got.EstimatedDeliveryTime()))
	suite.Nil(got.ActualDeliveryTime())

	suite.True(decimal.RequireFromString("26.50").Equal(got.Totals().Subtotal()))
	suite.True(decimal.RequireFromString("2.65").Equal(got.Totals().Tax()))
	suite.True(decimal.RequireFromString("32.15").Equal(got.Totals().Total()))

	suite.Require().Len(got.Lines(), 2)
	first := got.Lines()[0]
	suite.Equal("Margherita", first.Name())
	suite.Equal(2, first.Quantity())
	suite.True(decimal.RequireFromString("10.00").Equal(first.UnitPrice()))
	suite.Require().Len(first.Customizations(), 1)
	suite.Equal("Size", first.Customizations()[0].Name())
	suite.Equal([]string{"Large"}, first.Customizations()[0].Options())
	suite.True(decimal.RequireFromString("1.50").Equal(first.Customizations()[0].PriceDelta()))
	suite.Equal("Cola", got.Lines()[1].Name())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_IsValidationError() {
	ctx := context.Background()
	first := suite.newOrder(kernel.NewUUID(), kernel.NewUUID(), placedAt)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.newOrderWithNumber(first.Number(), kernel.NewUUID(), kernel.NewUUID(), placedAt)
	err := suite.repository.Add(ctx, second)

	suite.Require().Error(err)
	suite.True(errs.IsValidation(err), err.Error())
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_Rejected() {
	err := suite.repository.Add(context.Background(), &order.Order{})
	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.True(errs.IsNotFound(err))

	_, err = suite.repository.GetByNumber(context.Background(), order.Number("FD1000000000000AAAAA"))
	suite.True(errs.IsNotFound(err))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber() {
	ctx := context.Background()
	o := suite.newOrder(kernel.NewUUID(), kernel.NewUUID(), placedAt)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.GetByNumber(ctx, o.Number())
	suite.Require().NoError(err)
	suite.True(o.ID().IsEqual(got.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_WritesMutableFieldsOnly() {
	ctx := context.Background()
	o := suite.newOrder(kernel.NewUUID(), kernel.NewUUID(), placedAt)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	agent := kernel.NewUUID()
	now := placedAt.Add(10 * time.Minute)
	for _, next := range []order.Status{order.Confirmed, order.Preparing, order.Ready, order.OutForDelivery} {
		suite.Require().NoError(o.ChangeStatus(next, &agent, now))
	}
	suite.Require().NoError(o.ChangeStatus(order.Delivered, nil, now.Add(20*time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, got.Status())
	suite.Require().NotNil(got.DeliveryAgentID())
	suite.True(agent.IsEqual(*got.DeliveryAgentID()))
	suite.Require().NotNil(got.ActualDeliveryTime())
	suite.True(now.Add(20 * time.Minute).Equal(*got.ActualDeliveryTime()))
	suite.True(now.Add(20 * time.Minute).Equal(got.UpdatedAt()))
	suite.Len(got.Lines(), 2)
	suite.True(o.Totals().Total().Equal(got.Totals().Total()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Cancel_StoresReason() {
	ctx := context.Background()
	o := suite.newOrder(kernel.NewUUID(), kernel.NewUUID(), placedAt)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.Cancel("customer changed mind", placedAt.Add(time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, got.Status())
	suite.Equal("customer changed mind", got.Notes())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	o := suite.newOrder(kernel.NewUUID(), kernel.NewUUID(), placedAt)
	err := suite.repository.Update(context.Background(), o)
	suite.True(errs.IsNotFound(err))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFind_FiltersPagesAndSortsNewestFirst() {
	ctx := context.Background()
	customer := kernel.NewUUID()
	restaurant := kernel.NewUUID()

	var ids []kernel.UUID
	for i := range 5 {
		o := suite.newOrder(customer, restaurant, placedAt.Add(time.Duration(i)*time.Minute))
		suite.Require().NoError(suite.repository.Add(ctx, o))
		ids = append(ids, o.ID())
	}
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder(kernel.NewUUID(), restaurant, placedAt)))

	page, err := ports.NewPage(1, 2)
	suite.Require().NoError(err)

	orders, total, err := suite.repository.Find(ctx, ports.OrderFilter{CustomerID: &customer}, page)
	suite.Require().NoError(err)
	suite.Equal(int64(5), total)
	suite.Require().Len(orders, 2)
	suite.True(ids[4].IsEqual(orders[0].ID()))
	suite.True(ids[3].IsEqual(orders[1].ID()))

	last, err := ports.NewPage(3, 2)
	suite.Require().NoError(err)
	orders, _, err = suite.repository.Find(ctx, ports.OrderFilter{CustomerID: &customer}, last)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(ids[0].IsEqual(orders[0].ID()))

	status := order.Confirmed
	orders, total, err = suite.repository.Find(ctx, ports.OrderFilter{RestaurantID: &restaurant, Status: &status}, page)
	suite.Require().NoError(err)
	suite.Equal(int64(0), total)
	suite.Empty(orders)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindAll_DateWindowIsInclusive() {
	ctx := context.Background()
	restaurant := kernel.NewUUID()
	for i := range 3 {
		o := suite.newOrder(kernel.NewUUID(), restaurant, placedAt.Add(time.Duration(i)*time.Hour))
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	from := placedAt.Add(time.Hour)
	to := placedAt.Add(2 * time.Hour)
	orders, err := suite.repository.FindAll(ctx, ports.OrderFilter{RestaurantID: &restaurant, From: &from, To: &to})
	suite.Require().NoError(err)
	suite.Len(orders, 2)

	orders, err = suite.repository.FindAll(ctx, ports.OrderFilter{RestaurantID: &restaurant})
	suite.Require().NoError(err)
	suite.Len(orders, 3)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindOverdue_SkipsTerminalAndFutureOrders() {
	ctx := context.Background()
	now := placedAt.Add(2 * time.Hour)

	late := suite.newOrder(kernel.NewUUID(), kernel.NewUUID(), placedAt)
	suite.Require().NoError(suite.repository.Add(ctx, late))

	cancelled := suite.newOrder(kernel.NewUUID(), kernel.NewUUID(), placedAt)
	suite.Require().NoError(cancelled.Cancel("closed", placedAt.Add(time.Minute)))
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))

	fresh := suite.newOrder(kernel.NewUUID(), kernel.NewUUID(), now)
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	orders, err := suite.repository.FindOverdue(ctx, now, 10)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(late.ID().IsEqual(orders[0].ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(customer, restaurant kernel.UUID, at time.Time) *order.Order {
	return suite.newOrderWithNumber(order.NewNumber(at), customer, restaurant, at)
}

// newOrderWithNumber builds the 2×(10.00+1.50) + 3.50 cart with a 3.00 fee.
func (suite *OrderRepositoryIntegrationTestSuite) newOrderWithNumber(
	number order.Number,
	customer, restaurant kernel.UUID,
	at time.Time,
) *order.Order {
	size, err := order.NewCustomization("Size", []string{"Large"}, decimal.RequireFromString("1.50"))
	suite.Require().NoError(err)
	pizza, err := order.NewLineItem(
		kernel.NewUUID(), "Margherita", 2, decimal.RequireFromString("10.00"),
		[]order.Customization{size}, "extra crispy",
	)
	suite.Require().NoError(err)
	cola, err := order.NewLineItem(kernel.NewUUID(), "Cola", 1, decimal.RequireFromString("3.50"), nil, "")
	suite.Require().NoError(err)

	lines := []order.LineItem{pizza, cola}
	totals, err := order.ComputeTotals(lines, decimal.RequireFromString("3.00"), decimal.Zero)
	suite.Require().NoError(err)

	location, err := kernel.NewGeoPoint(12.9716, 77.5946)
	suite.Require().NoError(err)
	address, err := order.NewDeliveryAddress("Home", "MG Road 1", location)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), order.Checkout{
		Number:          number,
		CustomerID:      customer,
		RestaurantID:    restaurant,
		Lines:           lines,
		Totals:          totals,
		DeliveryAddress: address,
		PaymentMethod:   order.PaymentUPI,
		PromoCode:       "SAVE10",
		DeliveryWindow:  45 * time.Minute,
		PlacedAt:        at,
	})
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
