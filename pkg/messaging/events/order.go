package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mayasbakes/bakehouse/pkg/messaging"
)

// OrderCreatedEvent is published when a checkout completes.
type OrderCreatedEvent struct {
	OrderID       uuid.UUID `json:"order_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	TotalCents    int64     `json:"total_cents"`
	ItemCount     int       `json:"item_count"`
	CreatedAt     time.Time `json:"created_at"`
}

func (e OrderCreatedEvent) Subject() string {
	return messaging.OrderCreatedSubject
}

func (e OrderCreatedEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}
