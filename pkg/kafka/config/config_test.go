package kafka_config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvKafkaBrokers, "")

	cfg := Load()
	assert.False(t, cfg.Enabled())
	assert.Equal(t, DefaultBookingTopic, cfg.BookingTopic)
	assert.Equal(t, DefaultProjectIntakeTopic, cfg.ProjectIntakeTopic)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv(EnvKafkaBrokers, " kafka-1:9092, ,kafka-2:9092 ")
	t.Setenv(EnvKafkaBookingTopic, "bookings")
	t.Setenv(EnvKafkaProjectIntakeTopic, "intakes")
	t.Setenv(EnvKafkaProducerBatchTimeout, "50ms")
	t.Setenv(EnvKafkaProducerAsync, "true")

	cfg := Load()
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Brokers)
	assert.Equal(t, "bookings", cfg.BookingTopic)
	assert.Equal(t, "intakes", cfg.ProjectIntakeTopic)
	assert.Equal(t, 50*time.Millisecond, cfg.ProducerBatchTimeout)
	assert.True(t, cfg.ProducerAsync)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Brokers:              []string{"localhost:9092"},
			BookingTopic:         "bookings",
			ProjectIntakeTopic:   "intakes",
			ProducerMaxAttempts:  3,
			ProducerBatchTimeout: time.Millisecond,
			ProducerRequireAcks:  -1,
			ProducerCompression:  "snappy",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty topic", mutate: func(c *Config) { c.BookingTopic = "" }, wantErr: "BookingTopic"},
		{name: "empty intake topic", mutate: func(c *Config) { c.ProjectIntakeTopic = "" }, wantErr: "ProjectIntakeTopic"},
		{name: "bad compression", mutate: func(c *Config) { c.ProducerCompression = "brotli" }, wantErr: "ProducerCompression"},
		{name: "bad acks", mutate: func(c *Config) { c.ProducerRequireAcks = 2 }, wantErr: "ProducerRequireAcks"},
		{name: "zero attempts", mutate: func(c *Config) { c.ProducerMaxAttempts = 0 }, wantErr: "ProducerMaxAttempts"},
		{name: "disabled skips checks", mutate: func(c *Config) { c.Brokers = nil; c.BookingTopic = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
