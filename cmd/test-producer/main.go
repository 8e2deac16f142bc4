package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ONSdigital/dp-script-error-collector/config"
	"github.com/ONSdigital/dp-script-error-collector/event"
	"github.com/ONSdigital/dp-script-error-collector/schema"

	kafka "github.com/ONSdigital/dp-kafka/v3"
	"github.com/ONSdigital/log.go/v2/log"
)

const serviceName = "dp-script-error-collector"

func main() {
	log.Namespace = serviceName
	ctx := context.Background()

	// Get Config
	cfg, err := config.Get()
	if err != nil {
		log.Fatal(ctx, "error getting config", err)
		os.Exit(1)
	}

	// Create Kafka Producer
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
	kafkaProducer, err := kafka.NewProducer(ctx, pConfig)
	if err != nil {
		log.Fatal(ctx, "fatal error trying to create kafka producer", err, log.Data{"topic": cfg.KafkaConfig.ErrorReportedTopic})
		os.Exit(1)
	}

	// kafka error logging go-routines
	kafkaProducer.LogErrors(ctx)

	time.Sleep(500 * time.Millisecond)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		e := scanEvent(scanner)
		log.Info(ctx, "sending error-reported event", log.Data{"errorReportedEvent": e})

		s := schema.ErrorReported

		bytes, err := s.Marshal(e)
		if err != nil {
			log.Fatal(ctx, "error-reported event error", err)
			os.Exit(1)
		}

		// Send bytes to Output channel, after calling Initialise just in case it is not initialised.
		kafkaProducer.Initialise(ctx)
		kafkaProducer.Channels().Output <- bytes
	}
}

// scanEvent creates an ErrorReported event according to the user input
func scanEvent(scanner *bufio.Scanner) *event.ErrorReported {
	fmt.Println("--- [Send Kafka ErrorReported] ---")

	fmt.Println("Please type the error message")
	fmt.Printf("$ ")
	scanner.Scan()
	message := scanner.Text()

	fmt.Println("Please type the script filename")
	fmt.Printf("$ ")
	scanner.Scan()
	filename := scanner.Text()

	fmt.Println("Please type the line number")
	fmt.Printf("$ ")
	scanner.Scan()
	lineno, _ := strconv.ParseUint(scanner.Text(), 10, 32)

	fmt.Println("Please type the column number")
	fmt.Printf("$ ")
	scanner.Scan()
	colno, _ := strconv.ParseUint(scanner.Text(), 10, 32)

	fmt.Println("Please type the thrown error value (may be empty)")
	fmt.Printf("$ ")
	scanner.Scan()
	errVal := scanner.Text()

	init := &event.ErrorEventInit{
		Message:  message,
		Filename: filename,
		Lineno:   uint32(lineno),
		Colno:    uint32(colno),
	}
	if errVal != "" {
		init.Error = errVal
	}

	return event.NewErrorReported(event.NewErrorEvent(event.TypeError, init))
}
