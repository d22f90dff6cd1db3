package ports

import (
	"context"
	"time"
)

// Order event types published after successful lifecycle commits.
const (
	EventOrderPlaced    = "OrderPlaced"
	EventDriverAssigned = "DriverAssigned"
	EventStatusChanged  = "StatusChanged"
	EventOrderDeleted   = "OrderDeleted"
)

// OrderEvent is the envelope published to downstream consumers (dashboards,
// notification services). Publishing is best-effort and post-commit; the
// database remains the source of truth.
type OrderEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	OrderCode  string    `json:"order_code"`
	Status     string    `json:"status,omitempty"`
	DriverID   string    `json:"driver_id,omitempty"`
	ProductID  string    `json:"product_id,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
}

// OrderEventPublisher publishes order lifecycle events.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}
