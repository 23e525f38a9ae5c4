// Package publisher hands submitted booking requests to whatever delivers
// them onward. Delivery is fire-and-forget from the caller's point of view.
package publisher

import (
	"context"

	"agencysite/pkg/kafka"
	"agencysite/pkg/logger"
	"agencysite/pkg/model"
)

const (
	EventTypeBookingSubmitted = "booking.submitted"
	SchemaVersion             = "1"
	Source                    = "agencysite"
)

// Publisher must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event model.BookingSubmitted) error
	Close() error
}

// messageProducer is satisfied by *kafka.Producer.
type messageProducer interface {
	Publish(ctx context.Context, msg kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	producer messageProducer
	log      *logger.Logger
}

func NewKafkaPublisher(producer messageProducer, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		log:      log,
	}
}

// Publish writes the event keyed by its reference so retries of the same
// booking land on the same partition.
func (p *KafkaPublisher) Publish(ctx context.Context, event model.BookingSubmitted) error {
	msg, err := kafka.NewMessageAt(event.SubmittedAt).
		WithKey(event.Reference).
		WithValue(event).
		WithEventType(EventTypeBookingSubmitted).
		WithCorrelationID(event.Reference).
		WithSchemaVersion(SchemaVersion).
		WithSource(Source).
		Build()
	if err != nil {
		return err
	}
	if err := p.producer.Publish(ctx, msg); err != nil {
		return err
	}
	p.log.Info("Booking request submitted",
		"reference", event.Reference,
		"service", event.Request.Service,
		"date", event.Date,
		"time", event.Request.Time,
		"event_id", msg.GetEventID(),
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// LogPublisher records submissions in the structured log only. Contact
// details stay out of the log line.
type LogPublisher struct {
	log *logger.Logger
}

func NewLogPublisher(log *logger.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, event model.BookingSubmitted) error {
	p.log.Info("Booking request submitted",
		"reference", event.Reference,
		"service", event.Request.Service,
		"date", event.Date,
		"time", event.Request.Time,
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
