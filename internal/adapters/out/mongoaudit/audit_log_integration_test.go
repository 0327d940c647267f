package mongoaudit_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/mongoaudit"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
)

type AuditLogIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *mongo.Client
	audit     *mongoaudit.AuditLog
}

func (suite *AuditLogIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	client, err := mongoaudit.Connect(ctx, fmt.Sprintf("mongodb://%s", endpoint))
	suite.Require().NoError(err)
	suite.client = client

	suite.audit = mongoaudit.New(client.Database("fooddelivery_test"), "")
	suite.Require().NoError(suite.audit.EnsureIndexes(ctx))
}

func (suite *AuditLogIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		_ = suite.client.Disconnect(context.Background())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AuditLogIntegrationTestSuite) TestRecordThenHistory_OldestFirst() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	at := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	suite.Require().NoError(suite.audit.Record(ctx, ports.AuditEntry{
		OrderID: orderID, OrderNumber: "FD1748800800000ABCDE", Action: "order_status_update",
		Status: "confirmed", Details: map[string]string{"from": "pending", "to": "confirmed"}, At: at.Add(time.Minute),
	}))
	suite.Require().NoError(suite.audit.Record(ctx, ports.AuditEntry{
		OrderID: orderID, OrderNumber: "FD1748800800000ABCDE", Action: "order_created", Status: "pending", At: at,
	}))
	suite.Require().NoError(suite.audit.Record(ctx, ports.AuditEntry{
		OrderID: kernel.NewUUID(), Action: "order_created", Status: "pending", At: at,
	}))

	history, err := suite.audit.History(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal("order_created", history[0].Action)
	suite.Equal("order_status_update", history[1].Action)
	suite.Equal(map[string]string{"from": "pending", "to": "confirmed"}, history[1].Details)
	suite.True(at.Equal(history[0].At))
	suite.True(orderID.IsEqual(history[1].OrderID))
}

func (suite *AuditLogIntegrationTestSuite) TestHistory_UnknownOrderIsEmpty() {
	history, err := suite.audit.History(context.Background(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(history)
}

func TestAuditLogIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(AuditLogIntegrationTestSuite))
}
