package main

import (
	bookinghandler "agencysite/internal/bookings/handler"
	"agencysite/internal/bookings/publisher"
	bookingservice "agencysite/internal/bookings/service"
	bookingvalidator "agencysite/internal/bookings/validator"
	contacthandler "agencysite/internal/contact/handler"
	"agencysite/internal/contact/recorder"
	contactservice "agencysite/internal/contact/service"
	contactvalidator "agencysite/internal/contact/validator"
	newsletterhandler "agencysite/internal/newsletter/handler"
	newsletterservice "agencysite/internal/newsletter/service"
	newsletterstore "agencysite/internal/newsletter/store"
	intakehandler "agencysite/internal/projectintake/handler"
	intakepublisher "agencysite/internal/projectintake/publisher"
	intakeservice "agencysite/internal/projectintake/service"
	intakevalidator "agencysite/internal/projectintake/validator"
	sitehandler "agencysite/internal/site/handler"
	"agencysite/pkg/app"
	"agencysite/pkg/config"
	"agencysite/pkg/kafka"
	kafka_middleware "agencysite/pkg/kafka/middleware"
)

const ServiceName = "agencysite"

func main() {
	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting agency site service")

	serverApp := app.NewApplication(cfg)

	var health *sitehandler.HealthHandler
	if cfg.MongoEnabled() {
		cfg.SetMongo()
		serverApp.OnShutdown("mongo", func() error {
			cfg.GracefulShutdown()
			return nil
		})
		health = sitehandler.NewHealthHandler(cfg.Client.Mongo, cfg.Log)
	} else {
		health = sitehandler.NewHealthHandler(nil, cfg.Log)
	}

	bookingPublisher := initBookingPublisher(cfg)
	serverApp.OnShutdown("booking publisher", bookingPublisher.Close)

	intakePublisher := initIntakePublisher(cfg)
	serverApp.OnShutdown("project intake publisher", intakePublisher.Close)

	serverApp.SetApp(
		health,
		bookinghandler.NewBookingHandler(initBookingService(cfg, bookingPublisher), cfg.Log),
		contacthandler.NewContactHandler(initContactService(cfg), cfg.Log),
		intakehandler.NewProjectIntakeHandler(initIntakeService(cfg, intakePublisher), cfg.Log),
		newsletterhandler.NewNewsletterHandler(initNewsletterService(cfg), cfg.Log),
	)
	serverApp.Run()
}

func newProducer(cfg *config.Config, topic, dlqTopic string) *kafka.Producer {
	producer, err := kafka.NewProducer(cfg.Kafka, topic, dlqTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "topic", topic, "error", err)
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	return producer
}

func initBookingPublisher(cfg *config.Config) publisher.Publisher {
	if !cfg.Kafka.Enabled() {
		cfg.Log.Info("No Kafka brokers configured, booking requests will be logged only")
		return publisher.NewLogPublisher(cfg.Log)
	}

	producer := newProducer(cfg, cfg.Kafka.BookingTopic, cfg.Kafka.BookingDLQTopic)
	cfg.Log.Info("Booking requests will be published to Kafka", "topic", producer.Topic())
	return publisher.NewKafkaPublisher(producer, cfg.Log)
}

func initIntakePublisher(cfg *config.Config) intakepublisher.Publisher {
	if !cfg.Kafka.Enabled() {
		cfg.Log.Info("No Kafka brokers configured, project intakes will be logged only")
		return intakepublisher.NewLogPublisher(cfg.Log)
	}

	producer := newProducer(cfg, cfg.Kafka.ProjectIntakeTopic, cfg.Kafka.ProjectIntakeDLQTopic)
	cfg.Log.Info("Project intakes will be published to Kafka", "topic", producer.Topic())
	return intakepublisher.NewKafkaPublisher(producer, cfg.Log)
}

func initBookingService(cfg *config.Config, pub publisher.Publisher) bookingservice.BookingService {
	bookingService := bookingservice.NewBookingService(
		bookingvalidator.NewBookingValidator(cfg.Log),
		pub,
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "timezone", cfg.BookingLocation.String())
	return bookingService
}

func initContactService(cfg *config.Config) contactservice.ContactService {
	var contactRecorder recorder.Recorder
	if cfg.Client.Mongo != nil {
		db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
		contactRecorder = recorder.NewMongoRecorder(db, cfg.ContactCollection, cfg.Log)
		cfg.Log.Info("Contact submissions will be recorded in MongoDB",
			"database", cfg.MongoDatabaseName,
			"collection", cfg.ContactCollection,
		)
	} else {
		contactRecorder = recorder.NewLogRecorder(cfg.Log)
	}

	return contactservice.NewContactService(
		contactvalidator.NewContactValidator(cfg.Log),
		contactRecorder,
		cfg,
	)
}

func initIntakeService(cfg *config.Config, pub intakepublisher.Publisher) intakeservice.ProjectIntakeService {
	return intakeservice.NewProjectIntakeService(
		intakevalidator.NewIntakeValidator(cfg.Log),
		pub,
		cfg,
	)
}

func initNewsletterService(cfg *config.Config) newsletterservice.NewsletterService {
	var subscriptions newsletterstore.Store
	if cfg.Client.Mongo != nil {
		db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
		subscriptions = newsletterstore.NewMongoStore(db, cfg.NewsletterCollection)
		cfg.Log.Info("Newsletter subscriptions will be stored in MongoDB",
			"database", cfg.MongoDatabaseName,
			"collection", cfg.NewsletterCollection,
		)
	} else {
		subscriptions = newsletterstore.NewMemoryStore()
		cfg.Log.Warn("No MongoDB configured, newsletter subscriptions are kept in memory")
	}

	return newsletterservice.NewNewsletterService(subscriptions, cfg)
}
