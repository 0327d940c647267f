package order

import (
	"time"
)

// Event names published on an order topic.
const (
	EventCreated      = "order_created"
	EventStatusUpdate = "order_status_update"
	EventCancelled    = "order_cancelled"
	EventDelayed      = "order_delayed"
)

// Event is a notification about one order. Payload is serialized as JSON by the
// notification adapters.
type Event struct {
	Name    string
	Topic   string
	Payload any
}

// Topic returns the notification topic of an order, "order_<id>".
func Topic(o *Order) string {
	return TopicFor(o.ID().String())
}

// TopicFor builds the topic from a raw order id.
func TopicFor(orderID string) string {
	return "order_" + orderID
}

type CreatedPayload struct {
	OrderID     string    `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	Status      string    `json:"status"`
	Total       string    `json:"total"`
	Timestamp   time.Time `json:"timestamp"`
}

type StatusUpdatePayload struct {
	OrderID         string    `json:"orderId"`
	Status          string    `json:"status"`
	DeliveryAgentID string    `json:"deliveryAgentId,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

type CancelledPayload struct {
	OrderID   string    `json:"orderId"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

type DelayedPayload struct {
	OrderID               string    `json:"orderId"`
	Status                string    `json:"status"`
	EstimatedDeliveryTime time.Time `json:"estimatedDeliveryTime"`
	Timestamp             time.Time `json:"timestamp"`
}

func NewCreatedEvent(o *Order, at time.Time) Event {
	return Event{
		Name:  EventCreated,
		Topic: Topic(o),
		Payload: CreatedPayload{
			OrderID:     o.ID().String(),
			OrderNumber: o.Number().String(),
			Status:      o.Status().String(),
			Total:       o.Totals().Total().StringFixed(2),
			Timestamp:   at,
		},
	}
}

func NewStatusUpdateEvent(o *Order, at time.Time) Event {
	p := StatusUpdatePayload{
		OrderID:   o.ID().String(),
		Status:    o.Status().String(),
		Timestamp: at,
	}
	if agent := o.DeliveryAgentID(); agent != nil {
		p.DeliveryAgentID = agent.String()
	}
	return Event{Name: EventStatusUpdate, Topic: Topic(o), Payload: p}
}

func NewCancelledEvent(o *Order, at time.Time) Event {
	return Event{
		Name:  EventCancelled,
		Topic: Topic(o),
		Payload: CancelledPayload{
			OrderID:   o.ID().String(),
			Reason:    o.Notes(),
			Timestamp: at,
		},
	}
}

func NewDelayedEvent(o *Order, at time.Time) Event {
	return Event{
		Name:  EventDelayed,
		Topic: Topic(o),
		Payload: DelayedPayload{
			OrderID:               o.ID().String(),
			Status:                o.Status().String(),
			EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
			Timestamp:             at,
		},
	}
}
