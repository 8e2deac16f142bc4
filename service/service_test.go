package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	kafka "github.com/ONSdigital/dp-kafka/v3"
	"github.com/ONSdigital/dp-kafka/v3/kafkatest"

	"github.com/ONSdigital/dp-script-error-collector/config"
	"github.com/ONSdigital/dp-script-error-collector/event"
	"github.com/ONSdigital/dp-script-error-collector/service"
	"github.com/ONSdigital/dp-script-error-collector/service/mock"

	. "github.com/smartystreets/goconvey/convey"
)

var (
	ctx           = context.Background()
	testBuildTime = "BuildTime"
	testGitCommit = "GitCommit"
	testVersion   = "Version"
)

var (
	errKafkaConsumer = errors.New("kafka consumer error")
	errKafkaProducer = errors.New("kafka producer error")
	errHealthcheck   = errors.New("healthcheck error")
	errStore         = errors.New("store error")
	errServer        = errors.New("http server error")
	errAddCheck      = errors.New("add check error")
)

func testCfg() *config.Config {
	return &config.Config{
		BindAddr:                ":26500",
		GracefulShutdownTimeout: time.Second,
		WebhookEnabled:          true,
	}
}

func TestInit(t *testing.T) {
	Convey("Having a set of mocked dependencies", t, func() {
		cfg := testCfg()

		consumerMock := &kafkatest.IConsumerGroupMock{
			RegisterHandlerFunc: func(ctx context.Context, h kafka.Handler) error {
				return nil
			},
		}

		producerMock := &kafkatest.IProducerMock{}

		storeMock := &mock.ErrorEventStoreMock{}

		webhookMock := &mock.WebhookClientMock{}

		processorMock := &mock.ProcessorMock{
			HandleFunc: func(ctx context.Context, workerID int, msg kafka.Message) error {
				return nil
			},
		}

		hcMock := &mock.HealthCheckerMock{
			AddCheckFunc: func(name string, checker healthcheck.Checker) error { return nil },
		}

		serverMock := &mock.HTTPServerMock{}

		service.GetKafkaConsumer = func(ctx context.Context, cfg *config.Config) (kafka.IConsumerGroup, error) {
			return consumerMock, nil
		}
		service.GetKafkaProducer = func(ctx context.Context, cfg *config.Config) (kafka.IProducer, error) {
			return producerMock, nil
		}
		service.GetErrorEventStore = func(ctx context.Context, cfg *config.Config) (service.ErrorEventStore, error) {
			return storeMock, nil
		}
		service.GetWebhookClient = func(cfg *config.Config) service.WebhookClient {
			return webhookMock
		}
		service.GetProcessor = func(cfg *config.Config, h event.Handler) service.Processor {
			return processorMock
		}
		service.GetHealthCheck = func(cfg *config.Config, buildTime, gitCommit, version string) (service.HealthChecker, error) {
			return hcMock, nil
		}
		service.GetHTTPServer = func(bindAddr string, router http.Handler) service.HTTPServer {
			return serverMock
		}

		svc := service.New()

		Convey("Given that initialising the kafka consumer returns an error", func() {
			service.GetKafkaConsumer = func(ctx context.Context, cfg *config.Config) (kafka.IConsumerGroup, error) {
				return nil, errKafkaConsumer
			}

			Convey("Then service Init fails with the same error and no checkers are registered", func() {
				err := svc.Init(ctx, cfg, testBuildTime, testGitCommit, testVersion)
				So(errors.Is(err, errKafkaConsumer), ShouldBeTrue)
				So(hcMock.AddCheckCalls(), ShouldHaveLength, 0)
			})
		})

		Convey("Given that initialising the kafka producer returns an error", func() {
			service.GetKafkaProducer = func(ctx context.Context, cfg *config.Config) (kafka.IProducer, error) {
				return nil, errKafkaProducer
			}

			Convey("Then service Init fails with the same error", func() {
				err := svc.Init(ctx, cfg, testBuildTime, testGitCommit, testVersion)
				So(errors.Is(err, errKafkaProducer), ShouldBeTrue)
			})
		})

		Convey("Given that initialising the error event store returns an error", func() {
			service.GetErrorEventStore = func(ctx context.Context, cfg *config.Config) (service.ErrorEventStore, error) {
				return nil, errStore
			}

			Convey("Then service Init fails with the same error", func() {
				err := svc.Init(ctx, cfg, testBuildTime, testGitCommit, testVersion)
				So(errors.Is(err, errStore), ShouldBeTrue)
			})
		})

		Convey("Given that initialising healthcheck returns an error", func() {
			service.GetHealthCheck = func(cfg *config.Config, buildTime, gitCommit, version string) (service.HealthChecker, error) {
				return nil, errHealthcheck
			}

			Convey("Then service Init fails with the same error", func() {
				err := svc.Init(ctx, cfg, testBuildTime, testGitCommit, testVersion)
				So(errors.Is(err, errHealthcheck), ShouldBeTrue)
			})
		})

		Convey("Given that registering a checker fails", func() {
			hcMock.AddCheckFunc = func(name string, checker healthcheck.Checker) error { return errAddCheck }

			Convey("Then service Init fails with a wrapped error", func() {
				err := svc.Init(ctx, cfg, testBuildTime, testGitCommit, testVersion)
				So(errors.Is(err, errAddCheck), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "unable to register checkers")
			})
		})

		Convey("Given that all dependencies initialise successfully", func() {
			err := svc.Init(ctx, cfg, testBuildTime, testGitCommit, testVersion)

			Convey("Then service Init succeeds, the processor is registered and all checkers are added", func() {
				So(err, ShouldBeNil)
				So(consumerMock.RegisterHandlerCalls(), ShouldHaveLength, 1)
				So(hcMock.AddCheckCalls(), ShouldHaveLength, 4)
				So(hcMock.AddCheckCalls()[0].Name, ShouldEqual, "Kafka consumer")
				So(hcMock.AddCheckCalls()[1].Name, ShouldEqual, "Kafka producer")
				So(hcMock.AddCheckCalls()[2].Name, ShouldEqual, "Postgres")
				So(hcMock.AddCheckCalls()[3].Name, ShouldEqual, "Webhook receiver")
			})
		})

		Convey("Given a nil config", func() {
			Convey("Then service Init fails with the expected error", func() {
				err := svc.Init(ctx, nil, testBuildTime, testGitCommit, testVersion)
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldEqual, "nil config passed to service init")
			})
		})
	})
}

func TestStart(t *testing.T) {
	Convey("Having a service initialised with mocked dependencies", t, func() {
		cfg := testCfg()

		consumerMock := &kafkatest.IConsumerGroupMock{
			RegisterHandlerFunc: func(ctx context.Context, h kafka.Handler) error { return nil },
			StartFunc:           func() error { return nil },
			LogErrorsFunc:       func(ctx context.Context) {},
		}

		producerMock := &kafkatest.IProducerMock{
			LogErrorsFunc: func(ctx context.Context) {},
		}

		hcMock := &mock.HealthCheckerMock{
			AddCheckFunc: func(name string, checker healthcheck.Checker) error { return nil },
			StartFunc:    func(ctx context.Context) {},
		}

		serverWg := &sync.WaitGroup{}
		serverMock := &mock.HTTPServerMock{
			ListenAndServeFunc: func() error {
				defer serverWg.Done()
				return nil
			},
		}

		service.GetKafkaConsumer = func(ctx context.Context, cfg *config.Config) (kafka.IConsumerGroup, error) {
			return consumerMock, nil
		}
		service.GetKafkaProducer = func(ctx context.Context, cfg *config.Config) (kafka.IProducer, error) {
			return producerMock, nil
		}
		service.GetErrorEventStore = func(ctx context.Context, cfg *config.Config) (service.ErrorEventStore, error) {
			return &mock.ErrorEventStoreMock{}, nil
		}
		service.GetWebhookClient = func(cfg *config.Config) service.WebhookClient {
			return &mock.WebhookClientMock{}
		}
		service.GetProcessor = func(cfg *config.Config, h event.Handler) service.Processor {
			return &mock.ProcessorMock{}
		}
		service.GetHealthCheck = func(cfg *config.Config, buildTime, gitCommit, version string) (service.HealthChecker, error) {
			return hcMock, nil
		}
		service.GetHTTPServer = func(bindAddr string, router http.Handler) service.HTTPServer {
			return serverMock
		}

		svc := service.New()
		So(svc.Init(ctx, cfg, testBuildTime, testGitCommit, testVersion), ShouldBeNil)

		svcErrors := make(chan error, 1)

		Convey("When the service is started", func() {
			serverWg.Add(1)
			err := svc.Start(ctx, svcErrors)
			So(err, ShouldBeNil)

			Convey("Then the consumer starts consuming, the healthcheck starts and the server listens", func() {
				serverWg.Wait()
				So(consumerMock.StartCalls(), ShouldHaveLength, 1)
				So(hcMock.StartCalls(), ShouldHaveLength, 1)
				So(serverMock.ListenAndServeCalls(), ShouldHaveLength, 1)
			})
		})

		Convey("When the service is started and the http server fails", func() {
			serverMock.ListenAndServeFunc = func() error {
				defer serverWg.Done()
				return errServer
			}
			serverWg.Add(1)
			err := svc.Start(ctx, svcErrors)
			So(err, ShouldBeNil)

			Convey("Then the server error is reported to the errors channel", func() {
				serverWg.Wait()
				sErr := <-svcErrors
				So(errors.Is(sErr, errServer), ShouldBeTrue)
			})
		})

		Convey("When the service is started and the kafka consumer fails to start", func() {
			consumerMock.StartFunc = func() error { return errKafkaConsumer }
			err := svc.Start(ctx, svcErrors)

			Convey("Then Start fails with the same error and the healthcheck is not started", func() {
				So(errors.Is(err, errKafkaConsumer), ShouldBeTrue)
				So(hcMock.StartCalls(), ShouldHaveLength, 0)
			})
		})
	})
}

func TestClose(t *testing.T) {
	Convey("Having a service initialised with mocked dependencies", t, func() {
		cfg := testCfg()

		hcStopped := false
		consumerStopped := false

		// healthcheck Stop does not depend on any other service being stopped
		hcMock := &mock.HealthCheckerMock{
			AddCheckFunc: func(name string, checker healthcheck.Checker) error { return nil },
			StopFunc:     func() { hcStopped = true },
		}

		// the consumer must stop before the server or any outbound connection
		consumerMock := &kafkatest.IConsumerGroupMock{
			RegisterHandlerFunc: func(ctx context.Context, h kafka.Handler) error { return nil },
			StopAndWaitFunc: func() error {
				if !hcStopped {
					return errors.New("kafka consumer was stopped before healthcheck")
				}
				consumerStopped = true
				return nil
			},
			CloseFunc: func(ctx context.Context, optFuncs ...kafka.OptFunc) error { return nil },
		}

		producerMock := &kafkatest.IProducerMock{
			CloseFunc: func(ctx context.Context) error { return nil },
		}

		storeMock := &mock.ErrorEventStoreMock{
			CloseFunc: func(ctx context.Context) error { return nil },
		}

		// the server must shut down after the healthcheck and consumer stop
		serverMock := &mock.HTTPServerMock{
			ShutdownFunc: func(ctx context.Context) error {
				if !hcStopped || !consumerStopped {
					return errors.New("http server was shut down before its dependencies")
				}
				return nil
			},
		}

		service.GetKafkaConsumer = func(ctx context.Context, cfg *config.Config) (kafka.IConsumerGroup, error) {
			return consumerMock, nil
		}
		service.GetKafkaProducer = func(ctx context.Context, cfg *config.Config) (kafka.IProducer, error) {
			return producerMock, nil
		}
		service.GetErrorEventStore = func(ctx context.Context, cfg *config.Config) (service.ErrorEventStore, error) {
			return storeMock, nil
		}
		service.GetWebhookClient = func(cfg *config.Config) service.WebhookClient {
			return &mock.WebhookClientMock{}
		}
		service.GetProcessor = func(cfg *config.Config, h event.Handler) service.Processor {
			return &mock.ProcessorMock{}
		}
		service.GetHealthCheck = func(cfg *config.Config, buildTime, gitCommit, version string) (service.HealthChecker, error) {
			return hcMock, nil
		}
		service.GetHTTPServer = func(bindAddr string, router http.Handler) service.HTTPServer {
			return serverMock
		}

		svc := service.New()
		So(svc.Init(ctx, cfg, testBuildTime, testGitCommit, testVersion), ShouldBeNil)

		Convey("When the service is closed", func() {
			err := svc.Close(ctx)

			Convey("Then all dependencies are stopped and closed in the right order", func() {
				So(err, ShouldBeNil)
				So(hcMock.StopCalls(), ShouldHaveLength, 1)
				So(consumerMock.StopAndWaitCalls(), ShouldHaveLength, 1)
				So(serverMock.ShutdownCalls(), ShouldHaveLength, 1)
				So(producerMock.CloseCalls(), ShouldHaveLength, 1)
				So(consumerMock.CloseCalls(), ShouldHaveLength, 1)
				So(storeMock.CloseCalls(), ShouldHaveLength, 1)
			})
		})

		Convey("When the http server fails to shut down", func() {
			serverMock.ShutdownFunc = func(ctx context.Context) error { return errServer }
			err := svc.Close(ctx)

			Convey("Then Close fails but the remaining dependencies are still closed", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldEqual, "failed to shutdown gracefully")
				So(producerMock.CloseCalls(), ShouldHaveLength, 1)
				So(consumerMock.CloseCalls(), ShouldHaveLength, 1)
				So(storeMock.CloseCalls(), ShouldHaveLength, 1)
			})
		})

		Convey("When the graceful shutdown takes longer than the configured timeout", func() {
			cfg.GracefulShutdownTimeout = 5 * time.Millisecond
			serverMock.ShutdownFunc = func(ctx context.Context) error {
				time.Sleep(100 * time.Millisecond)
				return nil
			}
			err := svc.Close(ctx)

			Convey("Then Close fails with a DeadlineExceeded error", func() {
				So(err, ShouldResemble, context.DeadlineExceeded)
			})
		})
	})
}
