package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mayasbakes/bakehouse/internal/catalog/engine"
	"github.com/mayasbakes/bakehouse/pkg/config"
	"github.com/mayasbakes/bakehouse/pkg/messaging"
	"github.com/mayasbakes/bakehouse/pkg/messaging/events"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"golang.org/x/sync/errgroup"
)

// ackableMsg is the slice of jetstream.Msg the handler needs.
type ackableMsg interface {
	Subject() string
	Data() []byte
	Ack() error
	Nak() error
}

// Start initializes the NATS JetStream consumer and starts multiple worker goroutines to process messages.
func Start(ctx context.Context, js jetstream.JetStream, subscriberCfg config.SubscriberConfig, mailer Mailer, logger *slog.Logger) error {
	cfg := jetstream.ConsumerConfig{
		FilterSubject: subscriberCfg.Subject,
		Durable:       subscriberCfg.Consumer,
		AckPolicy:     jetstream.AckExplicitPolicy,
	}
	consumer, err := js.CreateOrUpdateConsumer(ctx, subscriberCfg.Stream, cfg)
	if err != nil {
		return err
	}
	g, gCtx := errgroup.WithContext(ctx)
	for i := 0; i < subscriberCfg.Workers; i++ {
		g.Go(func() error {
			return runWorker(gCtx, consumer, subscriberCfg, mailer, logger)
		})
	}
	return g.Wait()
}

// runWorker fetches messages from the NATS JetStream consumer and processes them.
func runWorker(ctx context.Context, consumer jetstream.Consumer, cfg config.SubscriberConfig, mailer Mailer, logger *slog.Logger) error {
	for {
		select {
		case <-ctx.Done():
			// ctx was cancelled or timed out (e.g., application shutdown)
			return ctx.Err()
		default:
			batch, err := consumer.Fetch(cfg.Batch, jetstream.FetchMaxWait(cfg.Timeout))
			if err != nil {
				// if the error is a timeout, we can just continue to the next iteration
				if errors.Is(err, nats.ErrTimeout) {
					continue
				}
				logger.Error("failed to fetch messages", "error", err)
				// for other errors, we can log and retry
				time.Sleep(cfg.Interval)
				continue
			}
			for msg := range batch.Messages() {
				handleMessage(ctx, msg, mailer, logger)
			}
		}
	}
}

// handleMessage dispatches one event to the mailer by subject. Messages
// that cannot be decoded or delivered are NAKed for redelivery.
func handleMessage(ctx context.Context, msg ackableMsg, mailer Mailer, logger *slog.Logger) {
	if msg == nil {
		logger.Error("received nil message")
		return
	}

	subject, html, err := composeEmail(msg.Subject(), msg.Data())
	if err != nil {
		logger.Error("failed to decode message", "error", err, "subject", msg.Subject())
		if err := msg.Nak(); err != nil {
			logger.Error("failed to nack message", "error", err)
		}
		return
	}

	if err := mailer.Send(ctx, subject, html); err != nil {
		logger.Error("failed to send notification", "error", err, "subject", msg.Subject())
		if err := msg.Nak(); err != nil {
			logger.Error("failed to nack message", "error", err)
		}
		return
	}

	logger.Info("notification sent", "subject", msg.Subject(), "email_subject", subject)
	if err := msg.Ack(); err != nil {
		logger.Error("failed to ack message", "error", err)
	}
}

// composeEmail renders the email subject and body for one event payload.
func composeEmail(natsSubject string, data []byte) (string, string, error) {
	switch natsSubject {
	case messaging.InquiryReceivedSubject:
		var event events.InquiryReceivedEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return "", "", fmt.Errorf("failed to unmarshal inquiry event: %w", err)
		}
		return inquiryEmail(event)
	case messaging.OrderCreatedSubject:
		var event events.OrderCreatedEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return "", "", fmt.Errorf("failed to unmarshal order event: %w", err)
		}
		return orderEmail(event)
	default:
		return "", "", fmt.Errorf("unknown subject %q", natsSubject)
	}
}

func inquiryEmail(event events.InquiryReceivedEvent) (string, string, error) {
	subject := fmt.Sprintf("New cake inquiry from %s", event.Name)
	html := fmt.Sprintf(
		"<h2>New inquiry</h2><p><b>Type:</b> %s</p><p><b>From:</b> %s (%s)</p><p><b>Event date:</b> %s</p><p>%s</p>",
		event.Type, event.Name, event.Email, event.EventDate, event.Message)
	return subject, html, nil
}

func orderEmail(event events.OrderCreatedEvent) (string, string, error) {
	subject := fmt.Sprintf("New order from %s (%s)", event.CustomerName, engine.FormatUSD(event.TotalCents))
	html := fmt.Sprintf(
		"<h2>New order</h2><p><b>Order:</b> %s</p><p><b>Customer:</b> %s (%s)</p><p><b>Items:</b> %d</p><p><b>Total:</b> %s</p>",
		event.OrderID, event.CustomerName, event.CustomerEmail, event.ItemCount, engine.FormatUSD(event.TotalCents))
	return subject, html, nil
}
