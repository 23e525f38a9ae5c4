package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"agencysite/pkg/client"
	kafka_config "agencysite/pkg/kafka/config"
	"agencysite/pkg/logger"
)

type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	StaticDir       string
	BookingTimezone string
	// BookingLocation is the zone whose calendar decides which dates are
	// bookable. Set by Load from BookingTimezone.
	BookingLocation *time.Location

	RequestTimeout time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	MongoURI             string
	MongoDatabaseName    string
	MongoConnTimeout     time.Duration
	ContactCollection    string
	NewsletterCollection string

	Kafka *kafka_config.Config

	Log    *logger.Logger
	Client *client.Client
}

// Load reads the environment, validates it and exits on any problem.
func Load(serviceName string) *Config {
	cfg := FromEnv()
	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: true,
		Service:   serviceName,
	})

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.BookingLocation, _ = time.LoadLocation(cfg.BookingTimezone)
	cfg.LogConfiguration()
	return cfg
}

// FromEnv reads every setting without validating. Log and BookingLocation
// are left for Load to fill in.
func FromEnv() *Config {
	return &Config{
		Port:      getEnvStr(EnvPort, DefaultPort),
		LogLevel:  getEnvStr(EnvLogLevel, DefaultLogLevel),
		LogFormat: getEnvStr(EnvLogFormat, DefaultLogFormat),

		StaticDir:       getEnvStr(EnvStaticDir, DefaultStaticDir),
		BookingTimezone: getEnvStr(EnvBookingTimezone, DefaultBookingTimezone),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		MongoURI:             getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName:    getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:     getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),
		ContactCollection:    getEnvStr(EnvContactCollection, DefaultContactCollection),
		NewsletterCollection: getEnvStr(EnvNewsletterCollection, DefaultNewsletterCollection),

		Kafka: kafka_config.Load(),

		Client: client.NewClient(),
	}
}

// MongoEnabled reports whether contact submissions and newsletter
// subscriptions go to MongoDB.
func (cfg *Config) MongoEnabled() bool {
	return cfg.MongoURI != ""
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

var mongoURIRegex = regexp.MustCompile(`^mongodb(\+srv)?://`)

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	switch strings.ToLower(cfg.LogFormat) {
	case logger.JSON, logger.TEXT:
	default:
		errors = append(errors, fmt.Sprintf("LogFormat must be json or text, got: %s", cfg.LogFormat))
	}

	if _, err := time.LoadLocation(cfg.BookingTimezone); err != nil {
		errors = append(errors, fmt.Sprintf("BookingTimezone must be an IANA zone name, got: %s", cfg.BookingTimezone))
	}

	if cfg.StaticDir != "" {
		if info, err := os.Stat(cfg.StaticDir); err != nil || !info.IsDir() {
			errors = append(errors, fmt.Sprintf("StaticDir must be an existing directory, got: %s", cfg.StaticDir))
		}
	}

	if cfg.MongoEnabled() {
		if len(cfg.MongoURI) < 10 || !mongoURIRegex.MatchString(cfg.MongoURI) {
			errors = append(errors, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactMongoURI(cfg.MongoURI)))
		}
		if cfg.MongoDatabaseName == "" {
			errors = append(errors, "MongoDatabaseName cannot be empty")
		}
		if cfg.ContactCollection == "" {
			errors = append(errors, "ContactCollection cannot be empty")
		}
		if cfg.NewsletterCollection == "" {
			errors = append(errors, "NewsletterCollection cannot be empty")
		}
		if cfg.MongoConnTimeout <= 0 {
			errors = append(errors, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
		}
	}

	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if cfg.Kafka != nil {
		if err := cfg.Kafka.Validate(); err != nil {
			errors = append(errors, strings.TrimSpace(err.Error()))
		}
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"static_dir", cfg.StaticDir,
		"booking_timezone", cfg.BookingTimezone,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"contact_collection", cfg.ContactCollection,
		"newsletter_collection", cfg.NewsletterCollection,
	)
	if cfg.Kafka != nil {
		cfg.Kafka.LogConfiguration(cfg.Log.Info)
	}
}

var credentialRegex = regexp.MustCompile(`(mongodb(\+srv)?://)[^:@/]+:[^@]+@`)

func redactMongoURI(uri string) string {
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log, cfg.ShutdownTimeout)
}
