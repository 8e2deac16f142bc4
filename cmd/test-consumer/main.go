package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ONSdigital/dp-script-error-collector/config"
	"github.com/ONSdigital/dp-script-error-collector/event"
	"github.com/ONSdigital/dp-script-error-collector/schema"

	kafka "github.com/ONSdigital/dp-kafka/v3"
	"github.com/ONSdigital/log.go/v2/log"
)

const serviceName = "kafka-example-consumer"

func main() {
	log.Namespace = serviceName
	ctx := context.Background()

	if err := run(ctx); err != nil {
		log.Fatal(ctx, "fatal runtime error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	cfg, err := config.Get()
	if err != nil {
		return fmt.Errorf("failed to get config: %w", err)
	}

	// run kafka Consumer Group
	consumerGroup, err := runConsumerGroup(ctx, cfg)
	if err != nil {
		return err
	}

	// blocks until an os interrupt or a fatal error occurs
	sig := <-signals
	log.Info(ctx, "os signal received", log.Data{"signal": sig})
	return closeConsumerGroup(ctx, consumerGroup, cfg.GracefulShutdownTimeout)
}

func runConsumerGroup(ctx context.Context, cfg *config.Config) (*kafka.ConsumerGroup, error) {
	log.Info(ctx, "[KAFKA-TEST] Starting ConsumerGroup (messages sent to stdout)", log.Data{"config": cfg})
	kafka.SetMaxMessageSize(int32(cfg.KafkaConfig.MaxBytes))

	// Create ConsumerGroup with channels and config
	kafkaOffset := kafka.OffsetOldest
	cgConfig := &kafka.ConsumerGroupConfig{
		BrokerAddrs:  cfg.KafkaConfig.Addr,
		Topic:        cfg.KafkaConfig.ErrorReportedTopic,
		GroupName:    cfg.KafkaConfig.ErrorReportedGroup,
		KafkaVersion: &cfg.KafkaConfig.Version,
		Offset:       &kafkaOffset,
	}
	if cfg.KafkaConfig.SecProtocol == config.KafkaTLSProtocolFlag {
		cgConfig.SecurityConfig = kafka.GetSecurityConfig(
			cfg.KafkaConfig.SecCACerts,
			cfg.KafkaConfig.SecClientCert,
			cfg.KafkaConfig.SecClientKey,
			cfg.KafkaConfig.SecSkipVerify,
		)
	}
	cg, err := kafka.NewConsumerGroup(ctx, cgConfig)
	if err != nil {
		return nil, err
	}

	// start consuming as soon as possible
	cg.Start()

	// go-routine to log errors from error channel
	cg.LogErrors(ctx)

	// Consumer not initialised at creation time. We need to retry to initialise it.
	if !cg.IsInitialised() {
		log.Warn(ctx, "[KAFKA-TEST] Consumer could not be initialised at creation time. Waiting until we can initialise it.")
		waitForInitialised(ctx, cg.Channels())
	}

	// eventLoop
	consumeCount := 0
	go func() {
		for {
			consumedMessage, ok := <-cg.Channels().Upstream
			if !ok {
				break
			}

			consumeCount++
			logData := log.Data{"consumeCount": consumeCount, "messageOffset": consumedMessage.Offset()}
			log.Info(ctx, "[KAFKA-TEST] Received message", logData)

			consumedData := consumedMessage.GetData()

			var e event.ErrorReported
			var s = schema.ErrorReported

			if err := s.Unmarshal(consumedData, &e); err != nil {
				log.Error(ctx, "[KAFKA-TEST] failed to unmarshal event", err)
			}

			logData["event"] = e
			logData["messageString"] = string(consumedData)
			logData["messageLen"] = len(consumedData)

			consumedMessage.CommitAndRelease()
			log.Info(ctx, "[KAFKA-TEST] committed and released message", log.Data{"messageOffset": consumedMessage.Offset()})
		}
	}()
	return cg, nil
}

func closeConsumerGroup(ctx context.Context, cg *kafka.ConsumerGroup, gracefulShutdownTimeout time.Duration) error {
	log.Info(ctx, "commencing graceful shutdown", log.Data{"graceful_shutdown_timeout": gracefulShutdownTimeout})
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)

	// track shutdown gracefully closes up
	var hasShutdownError bool

	// background graceful shutdown
	go func() {
		defer cancel()
		log.Info(ctx, "[KAFKA-TEST] Closing kafka consumerGroup")
		if err := cg.Close(ctx); err != nil {
			hasShutdownError = true
		}
		log.Info(ctx, "[KAFKA-TEST] Closed kafka consumerGroup")
	}()

	// wait for timeout or success (via cancel)
	<-ctx.Done()

	if ctx.Err() == context.DeadlineExceeded {
		log.Warn(ctx, "[KAFKA-TEST] graceful shutdown timed out", log.Data{"err": ctx.Err()})
		return ctx.Err()
	}

	if hasShutdownError {
		err := errors.New("failed to shutdown gracefully")
		log.Error(ctx, "failed to shutdown gracefully ", err)
		return err
	}

	log.Info(ctx, "graceful shutdown was successful")
	return nil
}

// waitForInitialised blocks until the consumer is initialised or closed
func waitForInitialised(ctx context.Context, cgChannels *kafka.ConsumerGroupChannels) {
	select {
	case <-cgChannels.Initialised:
		log.Warn(ctx, "[KAFKA-TEST] Consumer is now initialised.")
	case <-cgChannels.Closer:
		log.Warn(ctx, "[KAFKA-TEST] Consumer is being closed.")
	}
}
