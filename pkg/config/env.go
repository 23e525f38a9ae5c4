package config

const (
	EnvPort      = "PORT"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"

	EnvStaticDir       = "STATIC_DIR"
	EnvBookingTimezone = "BOOKING_TIMEZONE"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvMongoURI             = "MONGO_URI"
	EnvMongoDatabaseName    = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout     = "MONGO_CONN_TIMEOUT"
	EnvContactCollection    = "CONTACT_COLLECTION"
	EnvNewsletterCollection = "NEWSLETTER_COLLECTION"
)
