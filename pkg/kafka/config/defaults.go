package kafka_config

import "time"

const (
	// No brokers means bookings and project intakes are only logged.
	DefaultKafkaBrokers = ""

	DefaultBookingTopic    = "booking.requested"
	DefaultBookingDLQTopic = ""

	DefaultProjectIntakeTopic    = "project.intake.submitted"
	DefaultProjectIntakeDLQTopic = ""

	// Producer defaults
	DefaultProducerMaxAttempts  = 3
	DefaultProducerBatchTimeout = 10 * time.Millisecond
	DefaultProducerRequireAcks  = -1 // Require all replicas
	DefaultProducerCompression  = "snappy"
	DefaultProducerAsync        = false
)
