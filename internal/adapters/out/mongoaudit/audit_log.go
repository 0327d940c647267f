// Package mongoaudit keeps the change history of orders in a MongoDB collection.
// The order itself stays in PostgreSQL; this trail is append only.
package mongoaudit

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DefaultCollection = "order_audit"

type entryDocument struct {
	ID          any               `bson:"_id,omitempty"`
	OrderID     string            `bson:"order_id"`
	OrderNumber string            `bson:"order_number"`
	Action      string            `bson:"action"`
	Status      string            `bson:"status"`
	Details     map[string]string `bson:"details,omitempty"`
	At          time.Time         `bson:"at"`
}

// AuditLog implements ports.AuditLog.
type AuditLog struct {
	collection *mongo.Collection
}

func New(db *mongo.Database, collection string) *AuditLog {
	if collection == "" {
		collection = DefaultCollection
	}
	return &AuditLog{collection: db.Collection(collection)}
}

// Connect dials uri and checks the server answers.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the (order_id, at) index History reads through.
func (a *AuditLog) EnsureIndexes(ctx context.Context) error {
	_, err := a.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "order_id", Value: 1}, {Key: "at", Value: 1}},
	})
	return err
}

func (a *AuditLog) Record(ctx context.Context, entry ports.AuditEntry) error {
	_, err := a.collection.InsertOne(ctx, entryDocument{
		OrderID:     entry.OrderID.String(),
		OrderNumber: entry.OrderNumber,
		Action:      entry.Action,
		Status:      entry.Status,
		Details:     entry.Details,
		At:          entry.At.UTC(),
	})
	return err
}

func (a *AuditLog) History(ctx context.Context, orderID kernel.UUID) ([]ports.AuditEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := a.collection.Find(ctx, bson.M{"order_id": orderID.String()}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []entryDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	entries := make([]ports.AuditEntry, 0, len(docs))
	for _, doc := range docs {
		id, idErr := kernel.UUIDFromString(doc.OrderID)
		if idErr != nil {
			return nil, idErr
		}
		entries = append(entries, ports.AuditEntry{
			OrderID:     id,
			OrderNumber: doc.OrderNumber,
			Action:      doc.Action,
			Status:      doc.Status,
			Details:     doc.Details,
			At:          doc.At.UTC(),
		})
	}
	return entries, nil
}
