package publisher

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"agencysite/pkg/kafka"
	"agencysite/pkg/logger"
	"agencysite/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProducer struct {
	published []kafka.Message
	err       error
	closed    bool
}

func (m *mockProducer) Publish(_ context.Context, msg kafka.Message) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, msg)
	return nil
}

func (m *mockProducer) Close() error {
	m.closed = true
	return nil
}

func testEvent() model.BookingSubmitted {
	return model.BookingSubmitted{
		Reference: "ref-123",
		Request: model.BookingRequest{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Phone:     "555-0100",
			Service:   "seo-audit",
			Time:      "10:00 AM",
		},
		ServiceName: "SEO Audit & Optimization",
		Date:        "2026-10-20",
		SubmittedAt: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestKafkaPublisher_Publish(t *testing.T) {
	producer := &mockProducer{}
	p := NewKafkaPublisher(producer, logger.Discard())

	require.NoError(t, p.Publish(context.Background(), testEvent()))
	require.Len(t, producer.published, 1)

	msg := producer.published[0]
	assert.Equal(t, "ref-123", msg.Key)
	assert.Equal(t, EventTypeBookingSubmitted, msg.GetEventType())
	assert.Equal(t, "ref-123", msg.GetCorrelationID())
	assert.Equal(t, Source, msg.Headers[kafka.HeaderSource])
	assert.Equal(t, SchemaVersion, msg.Headers[kafka.HeaderSchemaVersion])
	assert.Equal(t, "2026-10-15T12:00:00Z", msg.Headers[kafka.HeaderTimestamp])

	var decoded model.BookingSubmitted
	require.NoError(t, msg.DecodeValue(&decoded))
	assert.Equal(t, "seo-audit", decoded.Request.Service)
	assert.Equal(t, "2026-10-20", decoded.Date)
}

func TestKafkaPublisher_PropagatesProducerError(t *testing.T) {
	producerErr := errors.New("broker unavailable")
	p := NewKafkaPublisher(&mockProducer{err: producerErr}, logger.Discard())

	err := p.Publish(context.Background(), testEvent())
	assert.ErrorIs(t, err, producerErr)
}

func TestKafkaPublisher_Close(t *testing.T) {
	producer := &mockProducer{}
	p := NewKafkaPublisher(producer, logger.Discard())

	require.NoError(t, p.Close())
	assert.True(t, producer.closed)
}

func TestLogPublisher_OmitsContactDetails(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: logger.INFO, Format: logger.JSON, Output: &buf})
	p := NewLogPublisher(log)

	require.NoError(t, p.Publish(context.Background(), testEvent()))
	require.NoError(t, p.Close())

	out := buf.String()
	assert.Contains(t, out, "ref-123")
	assert.Contains(t, out, "seo-audit")
	assert.NotContains(t, out, "jane@example.com")
	assert.NotContains(t, out, "555-0100")
}
