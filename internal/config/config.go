package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App        AppConfig
	Logger     LoggerConfig
	Metrics    MetricsConfig
	Palindrome PalindromeConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
	ReadBufferSize        int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level       string
	Development bool
}

// MetricsConfig controls the Prometheus exposition endpoint.
type MetricsConfig struct {
	Enabled bool
	Path    string
}

// PalindromeConfig holds limits for the check endpoints and the request log.
type PalindromeConfig struct {
	MaxInputBytes int
	// MaxLogEntries bounds the request log; 0 keeps it unbounded.
	MaxLogEntries int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	timeout, err := envInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	maxInput, err := envInt("PALINDROME_MAX_INPUT_BYTES", 4096)
	if err != nil {
		return nil, err
	}
	readBuffer, err := envInt("HTTP_READ_BUFFER_SIZE", ReadBufferSizeFor(maxInput))
	if err != nil {
		return nil, err
	}
	maxEntries, err := envInt("REQUEST_LOG_MAX_ENTRIES", 0)
	if err != nil {
		return nil, err
	}
	if maxEntries < 0 {
		return nil, fmt.Errorf("invalid REQUEST_LOG_MAX_ENTRIES: must not be negative")
	}

	env := getEnv("APP_ENV", "development")
	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "palindrome-service"),
			Env:                   env,
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: timeout,
			ReadBufferSize:        readBuffer,
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: env == "development" || env == "local",
		},
		Metrics: MetricsConfig{
			Enabled: getEnvAsBool("METRICS_ENABLED", true),
			Path:    getEnv("METRICS_PATH", "/metrics"),
		},
		Palindrome: PalindromeConfig{
			MaxInputBytes: maxInput,
			MaxLogEntries: maxEntries,
		},
	}

	return cfg, nil
}

// ReadBufferSizeFor returns a request header buffer large enough for a
// request line carrying maxInputBytes of fully percent-encoded input, so
// oversized inputs reach the handler and get a 400 instead of a 431.
func ReadBufferSizeFor(maxInputBytes int) int {
	const minSize, headroom = 8192, 4096
	size := 3*maxInputBytes + headroom
	if size < minSize {
		return minSize
	}
	return size
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
