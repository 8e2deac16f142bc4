package steps

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ONSdigital/dp-script-error-collector/config"
	"github.com/ONSdigital/dp-script-error-collector/event"
	"github.com/ONSdigital/dp-script-error-collector/service"
	"github.com/ONSdigital/dp-script-error-collector/service/mock"
	"github.com/ONSdigital/log.go/v2/log"

	cmpntest "github.com/ONSdigital/dp-component-test"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	kafka "github.com/ONSdigital/dp-kafka/v3"
	"github.com/ONSdigital/dp-kafka/v3/kafkatest"

	"github.com/maxcnunes/httpfake"
)

var (
	BuildTime string = "1625046891"
	GitCommit string = "7434fe334d9f51b7239f978094ea29d10ac33b16"
	Version   string = ""
)

type Component struct {
	cmpntest.ErrorFeature
	apiFeature *cmpntest.APIFeature
	producer   kafka.IProducer
	pChannels  *kafka.ProducerChannels
	consumer   *kafkatest.IConsumerGroupMock
	handler    kafka.Handler
	store      *mock.ErrorEventStoreMock
	WebhookSrv *httpfake.HTTPFake
	HTTPServer *http.Server
	svc        *service.Service
	cfg        *config.Config
	ctx        context.Context
}

func NewComponent() (*Component, error) {
	c := &Component{
		WebhookSrv: httpfake.New(),
		HTTPServer: &http.Server{},
		ctx:        context.Background(),
	}

	// Read config
	cfg, err := config.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}

	cfg.WebhookEnabled = true
	cfg.WebhookURL = c.WebhookSrv.ResolveURL("")
	c.cfg = cfg

	// consumer that captures the handler registered by the service, so
	// scenarios can feed messages straight into it
	c.consumer = &kafkatest.IConsumerGroupMock{
		RegisterHandlerFunc: func(ctx context.Context, h kafka.Handler) error {
			c.handler = h
			return nil
		},
		StartFunc:       func() error { return nil },
		StopAndWaitFunc: func() error { return nil },
		LogErrorsFunc:   func(ctx context.Context) {},
		CheckerFunc:     funcCheck,
		CloseFunc:       func(ctx context.Context, optFuncs ...kafka.OptFunc) error { return nil },
	}

	// producer for queuing test events
	c.pChannels = &kafka.ProducerChannels{
		Output: make(chan []byte, 9),
	}
	c.producer = &kafkatest.IProducerMock{
		ChannelsFunc:  func() *kafka.ProducerChannels { return c.pChannels },
		LogErrorsFunc: func(ctx context.Context) {},
		CheckerFunc:   funcCheck,
		CloseFunc:     func(ctx context.Context) error { return nil },
	}

	// store that records saved script errors in memory
	var storeID int64
	c.store = &mock.ErrorEventStoreMock{
		SaveErrorEventFunc: func(ctx context.Context, errorEvent *event.ErrorEvent) (int64, error) {
			storeID++
			return storeID, nil
		},
		CheckerFunc: funcCheck,
		CloseFunc:   func(ctx context.Context) error { return nil },
	}

	service.GetKafkaConsumer = func(ctx context.Context, cfg *config.Config) (kafka.IConsumerGroup, error) {
		return c.consumer, nil
	}
	service.GetKafkaProducer = func(ctx context.Context, cfg *config.Config) (kafka.IProducer, error) {
		return c.producer, nil
	}
	service.GetErrorEventStore = func(ctx context.Context, cfg *config.Config) (service.ErrorEventStore, error) {
		return c.store, nil
	}
	service.GetHealthCheck = func(cfg *config.Config, buildTime, gitCommit, version string) (service.HealthChecker, error) {
		return &mock.HealthCheckerMock{
			AddCheckFunc: func(name string, checker healthcheck.Checker) error { return nil },
			StartFunc:    func(ctx context.Context) {},
			StopFunc:     func() {},
		}, nil
	}
	service.GetHTTPServer = func(bindAddr string, router http.Handler) service.HTTPServer {
		c.HTTPServer.Addr = bindAddr
		c.HTTPServer.Handler = router
		return c.HTTPServer
	}

	// Create service and initialise it
	c.svc = service.New()
	if err := c.svc.Init(c.ctx, cfg, BuildTime, GitCommit, Version); err != nil {
		return nil, fmt.Errorf("unexpected service Init error in NewComponent: %w", err)
	}

	// relay queued messages to the registered handler, as the consumer
	// group would for messages arriving on the topic
	go c.relayMessages()

	c.apiFeature = cmpntest.NewAPIFeature(c.InitialiseService)

	return c, nil
}

// InitialiseService returns the router set up by the service, so that
// scenarios can make requests against it without a listening server.
func (c *Component) InitialiseService() (http.Handler, error) {
	return c.HTTPServer.Handler, nil
}

func (c *Component) relayMessages() {
	var offset int64
	for b := range c.pChannels.Output {
		offset++
		msg, _ := kafkatest.NewMessage(b, offset)
		if err := c.handler(c.ctx, 1, msg); err != nil {
			log.Error(c.ctx, "failed to handle relayed message", err)
		}
	}
}

func (c *Component) Reset() error {
	c.apiFeature.Reset()
	c.WebhookSrv.Reset()
	return nil
}

func (c *Component) Close() {
	close(c.pChannels.Output)
	c.WebhookSrv.Close()
	if err := c.svc.Close(c.ctx); err != nil {
		log.Error(c.ctx, "error closing service", err)
	}
}

func funcCheck(ctx context.Context, state *healthcheck.CheckState) error {
	return nil
}
