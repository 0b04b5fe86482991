package messaging

import (
	"context"
)

// Subjects for the bakehouse event stream.
const (
	InquiryReceivedSubject = "bakehouse.inquiries.received"
	OrderCreatedSubject    = "bakehouse.orders.created"
)

type Event interface {
	Subject() string
	Payload() ([]byte, error)
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
