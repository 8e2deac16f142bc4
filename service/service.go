package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	kafka "github.com/ONSdigital/dp-kafka/v3"
	dphttp "github.com/ONSdigital/dp-net/http"
	"github.com/ONSdigital/log.go/v2/log"

	"github.com/ONSdigital/dp-script-error-collector/api"
	"github.com/ONSdigital/dp-script-error-collector/config"
	"github.com/ONSdigital/dp-script-error-collector/event"
	"github.com/ONSdigital/dp-script-error-collector/handler"
	"github.com/ONSdigital/dp-script-error-collector/store"
	"github.com/ONSdigital/dp-script-error-collector/webhook"

	"github.com/gorilla/mux"
)

// Service contains all the configs, server and clients to run the service
type Service struct {
	cfg         *config.Config
	server      HTTPServer
	healthCheck HealthChecker
	api         *api.API
	consumer    kafka.IConsumerGroup
	producer    kafka.IProducer
	processor   Processor
	store       ErrorEventStore
	webhook     WebhookClient
}

// GetKafkaConsumer returns a Kafka consumer with the provided config
var GetKafkaConsumer = func(ctx context.Context, cfg *config.Config) (kafka.IConsumerGroup, error) {
	kafkaOffset := kafka.OffsetNewest
	if cfg.KafkaConfig.OffsetOldest {
		kafkaOffset = kafka.OffsetOldest
	}
	cgConfig := &kafka.ConsumerGroupConfig{
		BrokerAddrs:  cfg.KafkaConfig.Addr,
		Topic:        cfg.KafkaConfig.ErrorReportedTopic,
		GroupName:    cfg.KafkaConfig.ErrorReportedGroup,
		KafkaVersion: &cfg.KafkaConfig.Version,
		Offset:       &kafkaOffset,
		NumWorkers:   &cfg.KafkaConfig.NumWorkers,
	}
	if cfg.KafkaConfig.SecProtocol == config.KafkaTLSProtocolFlag {
		cgConfig.SecurityConfig = kafka.GetSecurityConfig(
			cfg.KafkaConfig.SecCACerts,
			cfg.KafkaConfig.SecClientCert,
			cfg.KafkaConfig.SecClientKey,
			cfg.KafkaConfig.SecSkipVerify,
		)
	}
	return kafka.NewConsumerGroup(ctx, cgConfig)
}

// GetKafkaProducer returns a kafka producer with the provided config
var GetKafkaProducer = func(ctx context.Context, cfg *config.Config) (kafka.IProducer, error) {
	pConfig := &kafka.ProducerConfig{
		BrokerAddrs:     cfg.KafkaConfig.Addr,
		Topic:           cfg.KafkaConfig.ErrorReportedTopic,
		KafkaVersion:    &cfg.KafkaConfig.Version,
		MaxMessageBytes: &cfg.KafkaConfig.MaxBytes,
	}
	if cfg.KafkaConfig.SecProtocol == config.KafkaTLSProtocolFlag {
		pConfig.SecurityConfig = kafka.GetSecurityConfig(
			cfg.KafkaConfig.SecCACerts,
			cfg.KafkaConfig.SecClientCert,
			cfg.KafkaConfig.SecClientKey,
			cfg.KafkaConfig.SecSkipVerify,
		)
	}
	return kafka.NewProducer(ctx, pConfig)
}

// GetHTTPServer returns an http server
var GetHTTPServer = func(bindAddr string, router http.Handler) HTTPServer {
	s := dphttp.NewServer(bindAddr, router)
	s.HandleOSSignals = false
	return s
}

// GetHealthCheck returns a healthcheck
var GetHealthCheck = func(cfg *config.Config, buildTime, gitCommit, version string) (HealthChecker, error) {
	versionInfo, err := healthcheck.NewVersionInfo(buildTime, gitCommit, version)
	if err != nil {
		return nil, err
	}
	hc := healthcheck.New(versionInfo, cfg.HealthCheckCriticalTimeout, cfg.HealthCheckInterval)
	return &hc, nil
}

// GetErrorEventStore returns the postgres backed store for script errors
var GetErrorEventStore = func(ctx context.Context, cfg *config.Config) (ErrorEventStore, error) {
	return store.New(ctx, cfg.PostgresConfig)
}

// GetWebhookClient returns the client used to notify webhook receivers of
// script errors
var GetWebhookClient = func(cfg *config.Config) WebhookClient {
	return webhook.NewClient(cfg.WebhookURL)
}

// GetProcessor returns an event processor that feeds the provided handler
var GetProcessor = func(cfg *config.Config, h event.Handler) Processor {
	return event.NewProcessor(*cfg, h)
}

// New creates a new empty service
func New() *Service {
	return &Service{}
}

// Init initialises all the service dependencies, including healthcheck with checkers, api and middleware
func (svc *Service) Init(ctx context.Context, cfg *config.Config, buildTime, gitCommit, version string) error {
	var err error

	if cfg == nil {
		return errors.New("nil config passed to service init")
	}

	svc.cfg = cfg

	// Get Kafka consumer
	if svc.consumer, err = GetKafkaConsumer(ctx, cfg); err != nil {
		return fmt.Errorf("failed to initialise kafka consumer: %w", err)
	}

	// Get Kafka producer
	if svc.producer, err = GetKafkaProducer(ctx, cfg); err != nil {
		return fmt.Errorf("failed to initialise kafka producer: %w", err)
	}

	// Get the store for script errors
	if svc.store, err = GetErrorEventStore(ctx, cfg); err != nil {
		return fmt.Errorf("failed to initialise error event store: %w", err)
	}

	// Get webhook client
	svc.webhook = GetWebhookClient(cfg)

	// Get processor and register it as the handler for consumed messages
	svc.processor = GetProcessor(cfg, handler.NewErrorReported(*cfg, svc.store, svc.webhook))
	if err := svc.consumer.RegisterHandler(ctx, svc.processor.Handle); err != nil {
		return fmt.Errorf("could not register kafka handler: %w", err)
	}

	// Get HealthCheck
	if svc.healthCheck, err = GetHealthCheck(cfg, buildTime, gitCommit, version); err != nil {
		return fmt.Errorf("could not instantiate healthcheck: %w", err)
	}

	if err := svc.registerCheckers(); err != nil {
		return fmt.Errorf("unable to register checkers: %w", err)
	}

	// Get HTTP Server with the collector api and health endpoint
	r := mux.NewRouter()
	r.StrictSlash(true).Path("/health").HandlerFunc(svc.healthCheck.Handler)
	svc.api = api.Setup(ctx, *cfg, r, svc.producer)
	svc.server = GetHTTPServer(cfg.BindAddr, r)

	return nil
}

// Start starts an initialised service
func (svc *Service) Start(ctx context.Context, svcErrors chan error) error {
	log.Info(ctx, "starting service")

	// Start kafka error logging
	svc.consumer.LogErrors(ctx)
	svc.producer.LogErrors(ctx)

	// Start consuming Kafka messages with the event processor
	if err := svc.consumer.Start(); err != nil {
		return fmt.Errorf("consumer failed to start: %w", err)
	}

	// Start health checker
	svc.healthCheck.Start(ctx)

	// Run the http server in a new go-routine
	go func() {
		if err := svc.server.ListenAndServe(); err != nil {
			svcErrors <- fmt.Errorf("failure in http listen and serve: %w", err)
		}
	}()

	return nil
}

// Close gracefully shuts the service down in the required order, with timeout
func (svc *Service) Close(ctx context.Context) error {
	timeout := svc.cfg.GracefulShutdownTimeout
	log.Info(ctx, "commencing graceful shutdown", log.Data{"graceful_shutdown_timeout": timeout})
	ctx, cancel := context.WithTimeout(ctx, timeout)
	hasShutdownError := false

	go func() {
		defer cancel()

		// stop healthcheck, as it depends on everything else
		if svc.healthCheck != nil {
			svc.healthCheck.Stop()
			log.Info(ctx, "stopped health checker")
		}

		// If kafka consumer exists, stop listening to it.
		// This will automatically stop the event consumer loops and no more messages will be processed.
		// The kafka consumer will be closed after the service shuts down.
		if svc.consumer != nil {
			if err := svc.consumer.StopAndWait(); err != nil {
				log.Error(ctx, "error stopping kafka consumer listener", err)
				hasShutdownError = true
			}
			log.Info(ctx, "stopped kafka consumer listener")
		}

		// stop any incoming requests before closing any outbound connections
		if svc.server != nil {
			if err := svc.server.Shutdown(ctx); err != nil {
				log.Error(ctx, "failed to shutdown http server", err)
				hasShutdownError = true
			}
			log.Info(ctx, "stopped http server")
		}

		// If kafka producer exists, close it.
		if svc.producer != nil {
			if err := svc.producer.Close(ctx); err != nil {
				log.Error(ctx, "error closing kafka producer", err)
				hasShutdownError = true
			}
			log.Info(ctx, "closed kafka producer")
		}

		// If kafka consumer exists, close it.
		if svc.consumer != nil {
			if err := svc.consumer.Close(ctx); err != nil {
				log.Error(ctx, "error closing kafka consumer", err)
				hasShutdownError = true
			}
			log.Info(ctx, "closed kafka consumer")
		}

		// If the store exists, close the connection pool after the
		// consumer has stopped so no in-flight message loses its write.
		if svc.store != nil {
			if err := svc.store.Close(ctx); err != nil {
				log.Error(ctx, "error closing error event store", err)
				hasShutdownError = true
			}
			log.Info(ctx, "closed error event store")
		}
	}()

	// wait for shutdown success (via cancel) or failure (timeout)
	<-ctx.Done()

	// timeout expired
	if ctx.Err() == context.DeadlineExceeded {
		log.Error(ctx, "shutdown timed out", ctx.Err())
		return ctx.Err()
	}

	// other error
	if hasShutdownError {
		err := errors.New("failed to shutdown gracefully")
		log.Error(ctx, "failed to shutdown gracefully ", err)
		return err
	}

	log.Info(ctx, "graceful shutdown was successful")
	return nil
}

// registerCheckers adds the checkers for the service clients to the health check object.
func (svc *Service) registerCheckers() error {
	hc := svc.healthCheck

	if err := hc.AddCheck("Kafka consumer", svc.consumer.Checker); err != nil {
		return fmt.Errorf("error adding check for Kafka consumer: %w", err)
	}

	if err := hc.AddCheck("Kafka producer", svc.producer.Checker); err != nil {
		return fmt.Errorf("error adding check for Kafka producer: %w", err)
	}

	if err := hc.AddCheck("Postgres", svc.store.Checker); err != nil {
		return fmt.Errorf("error adding check for Postgres: %w", err)
	}

	// Webhook receivers are external, so their health only gates the service
	// when notifications are enabled
	webhookChecker := svc.webhook.Checker
	if !svc.cfg.WebhookEnabled {
		webhookChecker = func(ctx context.Context, state *healthcheck.CheckState) error {
			return state.Update(healthcheck.StatusOK, "webhook notifications disabled", http.StatusOK)
		}
	}
	if err := hc.AddCheck("Webhook receiver", webhookChecker); err != nil {
		return fmt.Errorf("error adding check for webhook receiver: %w", err)
	}

	return nil
}
