// Package publisher hands submitted project intakes to whatever delivers
// them onward.
package publisher

import (
	"context"

	"agencysite/pkg/kafka"
	"agencysite/pkg/logger"
	"agencysite/pkg/model"
)

const (
	EventTypeProjectIntakeSubmitted = "project.intake.submitted"
	SchemaVersion                   = "1"
	Source                          = "agencysite"
)

// Publisher must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event model.ProjectIntakeSubmitted) error
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

func (p *KafkaPublisher) Publish(ctx context.Context, event model.ProjectIntakeSubmitted) error {
	msg, err := kafka.NewMessageAt(event.SubmittedAt).
		WithKey(event.Reference).
		WithValue(event).
		WithEventType(EventTypeProjectIntakeSubmitted).
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
	p.log.Info("Project intake submitted",
		"reference", event.Reference,
		"website_type", event.Intake.WebsiteType,
		"timeline", event.Intake.Timeline,
		"budget", event.Intake.Budget,
		"event_id", msg.GetEventID(),
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// LogPublisher records intakes in the structured log only. Names, contact
// details and free text stay out of the log line.
type LogPublisher struct {
	log *logger.Logger
}

func NewLogPublisher(log *logger.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, event model.ProjectIntakeSubmitted) error {
	p.log.Info("Project intake submitted",
		"reference", event.Reference,
		"website_type", event.Intake.WebsiteType,
		"timeline", event.Intake.Timeline,
		"budget", event.Intake.Budget,
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
