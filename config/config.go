package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// KafkaTLSProtocolFlag informs service to use TLS protocol for kafka
const KafkaTLSProtocolFlag = "TLS"

// Config represents service configuration for dp-script-error-collector
type Config struct {
	BindAddr                   string        `envconfig:"BIND_ADDR"`
	GracefulShutdownTimeout    time.Duration `envconfig:"GRACEFUL_SHUTDOWN_TIMEOUT"`
	HealthCheckInterval        time.Duration `envconfig:"HEALTHCHECK_INTERVAL"`
	HealthCheckCriticalTimeout time.Duration `envconfig:"HEALTHCHECK_CRITICAL_TIMEOUT"`
	WebhookURL                 string        `envconfig:"WEBHOOK_URL"`
	WebhookEnabled             bool          `envconfig:"WEBHOOK_ENABLED"`
	ComponentTestUseLogFile    bool          `envconfig:"COMPONENT_TEST_USE_LOG_FILE"`
	KafkaConfig                KafkaConfig
	PostgresConfig             PostgresConfig
}

// KafkaConfig contains the config required to connect to Kafka
type KafkaConfig struct {
	Addr               []string `envconfig:"KAFKA_ADDR"                    json:"-"`
	Version            string   `envconfig:"KAFKA_VERSION"`
	OffsetOldest       bool     `envconfig:"KAFKA_OFFSET_OLDEST"`
	NumWorkers         int      `envconfig:"KAFKA_NUM_WORKERS"`
	MaxBytes           int      `envconfig:"KAFKA_MAX_BYTES"`
	SecProtocol        string   `envconfig:"KAFKA_SEC_PROTO"`
	SecCACerts         string   `envconfig:"KAFKA_SEC_CA_CERTS"`
	SecClientKey       string   `envconfig:"KAFKA_SEC_CLIENT_KEY"          json:"-"`
	SecClientCert      string   `envconfig:"KAFKA_SEC_CLIENT_CERT"`
	SecSkipVerify      bool     `envconfig:"KAFKA_SEC_SKIP_VERIFY"`
	ErrorReportedGroup string   `envconfig:"KAFKA_ERROR_REPORTED_GROUP"`
	ErrorReportedTopic string   `envconfig:"KAFKA_ERROR_REPORTED_TOPIC"`
}

// PostgresConfig contains the config required to connect to Postgres
type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST"`
	Port     int    `envconfig:"POSTGRES_PORT"`
	User     string `envconfig:"POSTGRES_USER"     json:"-"`
	Password string `envconfig:"POSTGRES_PASSWORD" json:"-"`
	Database string `envconfig:"POSTGRES_DB"`
	MaxConns int    `envconfig:"POSTGRES_MAX_CONNS"`
}

// DSN returns the connection string for the configured Postgres database
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		p.User, p.Password, p.Host, p.Port, p.Database,
	)
}

var cfg *Config

// Get returns the default config with any modifications through environment
// variables
func Get() (*Config, error) {
	if cfg != nil {
		return cfg, nil
	}

	cfg = &Config{
		BindAddr:                   ":26500",
		GracefulShutdownTimeout:    5 * time.Second,
		HealthCheckInterval:        30 * time.Second,
		HealthCheckCriticalTimeout: 90 * time.Second,
		WebhookURL:                 "http://localhost:23900",
		WebhookEnabled:             false,
		ComponentTestUseLogFile:    false,
		KafkaConfig: KafkaConfig{
			Addr:               []string{"localhost:9092"},
			Version:            "1.0.2",
			OffsetOldest:       true,
			NumWorkers:         1,
			MaxBytes:           2000000,
			SecProtocol:        "",
			SecCACerts:         "",
			SecClientKey:       "",
			SecClientCert:      "",
			SecSkipVerify:      false,
			ErrorReportedGroup: "dp-script-error-collector",
			ErrorReportedTopic: "script-error-reported",
		},
		PostgresConfig: PostgresConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "script_errors",
			MaxConns: 4,
		},
	}

	return cfg, envconfig.Process("", cfg)
}
