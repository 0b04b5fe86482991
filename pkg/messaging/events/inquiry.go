package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mayasbakes/bakehouse/pkg/messaging"
)

// InquiryReceivedEvent is published when a visitor submits a contact or custom-order inquiry.
type InquiryReceivedEvent struct {
	InquiryID uuid.UUID `json:"inquiry_id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	EventDate string    `json:"event_date,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (e InquiryReceivedEvent) Subject() string {
	return messaging.InquiryReceivedSubject
}

func (e InquiryReceivedEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}
