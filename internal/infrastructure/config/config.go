package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	pkgkafka "github.com/ktp-forked-repos/ibantools/pkg/kafka"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	HTTPPort  int
	GRPCPort  int
	Kafka     KafkaConfig
	Auth      AuthConfig
	TLS       TLSConfig
	Telemetry TelemetryConfig
	LogLevel  string
	LogFormat string

	// GRPCReflection registers the gRPC reflection service.
	GRPCReflection bool
}

// KafkaConfig configures audit event publishing. No brokers disables it.
type KafkaConfig struct {
	Brokers       []string
	Topic         string
	ClientID      string
	TLS           bool
	SASLMechanism string
	SASLUsername  string
	SASLPassword  string
}

// Producer converts the settings to the shared producer configuration.
func (k KafkaConfig) Producer() pkgkafka.Config {
	return pkgkafka.Config{
		Brokers:       k.Brokers,
		ClientID:      k.ClientID,
		TLS:           k.TLS,
		SASLEnabled:   k.SASLUsername != "",
		SASLMechanism: k.SASLMechanism,
		SASLUsername:  k.SASLUsername,
		SASLPassword:  k.SASLPassword,
	}
}

// AuthConfig configures bearer-token checks. No key material disables them.
type AuthConfig struct {
	PublicKeyFile string
	Secret        string
	Issuer        string
}

// Enabled reports whether any JWT key material is configured.
func (a AuthConfig) Enabled() bool {
	return a.PublicKeyFile != "" || a.Secret != ""
}

// TLSConfig points at the server certificate used by both listeners.
// DevCertDir makes the service generate (once) and use a self-signed
// certificate for DevCertHosts instead of CertFile and KeyFile.
type TLSConfig struct {
	CertFile     string
	KeyFile      string
	DevCertDir   string
	DevCertHosts []string
}

// Enabled reports whether a certificate is configured or generated.
func (t TLSConfig) Enabled() bool {
	return t.CertFile != "" || t.DevCertDir != ""
}

type TelemetryConfig struct {
	OTLPEndpoint   string
	ServiceName    string
	TracingEnabled bool
}

// Validate checks configuration consistency.
func (c Config) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("HTTP_PORT out of range: %d", c.HTTPPort)
	}
	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		return fmt.Errorf("GRPC_PORT out of range: %d", c.GRPCPort)
	}
	if c.HTTPPort == c.GRPCPort {
		return fmt.Errorf("HTTP_PORT and GRPC_PORT must differ, both are %d", c.HTTPPort)
	}
	if (c.TLS.CertFile == "") != (c.TLS.KeyFile == "") {
		return fmt.Errorf("TLS_CERT_FILE and TLS_KEY_FILE must be set together")
	}
	if c.TLS.DevCertDir != "" {
		if c.TLS.CertFile != "" {
			return fmt.Errorf("TLS_DEV_CERT_DIR cannot be combined with TLS_CERT_FILE")
		}
		if len(c.TLS.DevCertHosts) == 0 {
			return fmt.Errorf("TLS_DEV_CERT_HOSTS is required when TLS_DEV_CERT_DIR is set")
		}
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		return fmt.Errorf("KAFKA_TOPIC is required when KAFKA_BROKERS is set")
	}
	if c.Kafka.SASLUsername != "" && c.Kafka.SASLPassword == "" {
		return fmt.Errorf("KAFKA_SASL_PASSWORD is required when KAFKA_SASL_USERNAME is set")
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	return nil
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		HTTPPort: getEnvInt("HTTP_PORT", 8080),
		GRPCPort: getEnvInt("GRPC_PORT", 9090),
		Kafka: KafkaConfig{
			Brokers:       pkgkafka.ParseBrokers(getEnv("KAFKA_BROKERS", "")),
			Topic:         getEnv("KAFKA_TOPIC", "identifier.events"),
			ClientID:      getEnv("KAFKA_CLIENT_ID", "iband"),
			TLS:           getEnvBool("KAFKA_TLS", false),
			SASLMechanism: getEnv("KAFKA_SASL_MECHANISM", "PLAIN"),
			SASLUsername:  getEnv("KAFKA_SASL_USERNAME", ""),
			SASLPassword:  getEnv("KAFKA_SASL_PASSWORD", ""),
		},
		Auth: AuthConfig{
			PublicKeyFile: getEnv("JWT_PUBLIC_KEY_FILE", ""),
			Secret:        getEnv("JWT_SECRET", ""),
			Issuer:        getEnv("JWT_ISSUER", ""),
		},
		TLS: TLSConfig{
			CertFile:     getEnv("TLS_CERT_FILE", ""),
			KeyFile:      getEnv("TLS_KEY_FILE", ""),
			DevCertDir:   getEnv("TLS_DEV_CERT_DIR", ""),
			DevCertHosts: splitList(getEnv("TLS_DEV_CERT_HOSTS", "localhost,127.0.0.1")),
		},
		Telemetry: TelemetryConfig{
			OTLPEndpoint:   getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			ServiceName:    "iband",
			TracingEnabled: getEnvBool("TRACING_ENABLED", false),
		},
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		GRPCReflection: getEnvBool("GRPC_REFLECTION", false),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
