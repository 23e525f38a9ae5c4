package config

import "time"

const (
	DefaultPort      = "3000"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultStaticDir       = ""
	DefaultBookingTimezone = "Local"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// No URI means contact submissions are only logged and newsletter
	// subscriptions live in memory.
	DefaultMongoURI             = ""
	DefaultMongoDatabaseName    = "agencysite"
	DefaultMongoConnTimeout     = 10 * time.Second
	DefaultContactCollection    = "contact_submissions"
	DefaultNewsletterCollection = "newsletter_subscriptions"
)
