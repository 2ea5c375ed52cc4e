package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort           string        `envconfig:"HTTP_PORT"             default:":8080"`
	GrpcPort           string        `envconfig:"GRPC_PORT"             default:":50051"`
	LogLevel           string        `envconfig:"LOG_LEVEL"             default:"info"`
	LogFormat          string        `envconfig:"LOG_FORMAT"            default:"json"`
	DefaultUserID      string        `envconfig:"DEFAULT_USER_ID"       default:"demo-user"`
	SeedFile           string        `envconfig:"SEED_FILE"` // empty means the embedded catalog
	RequireAdmin       bool          `envconfig:"REQUIRE_ADMIN"         default:"false"`
	LoginRatePerMinute int           `envconfig:"LOGIN_RATE_PER_MINUTE" default:"10"`
	LoginBurst         int           `envconfig:"LOGIN_BURST"           default:"5"`
	ReadTimeout        time.Duration `envconfig:"READ_TIMEOUT"          default:"10s"`
	WriteTimeout       time.Duration `envconfig:"WRITE_TIMEOUT"         default:"10s"`
	ShutdownTimeout    time.Duration `envconfig:"SHUTDOWN_TIMEOUT"      default:"5s"`
	GinMode            string        `envconfig:"GIN_MODE"              default:"release"`
}

var (
	config Config
	once   sync.Once
)

// LoadConfig reads .env (when present) and the environment once per process.
func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		cfg, err := Load("")
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}
		config = *cfg

		logger.Infof("Configuration loaded: HTTP Port=%s, GRPC Port=%s, LogLevel=%s", config.HTTPPort, config.GrpcPort, config.LogLevel)
		if config.SeedFile != "" {
			logger.Infof("Configuration loaded: seed file %s", config.SeedFile)
		}
	})
	return &config
}

// Load processes the environment into a fresh Config without touching the
// process-wide one.
func Load(prefix string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT must not be empty")
	}
	if c.GrpcPort == "" {
		return fmt.Errorf("GRPC_PORT must not be empty")
	}
	if c.LoginRatePerMinute < 0 {
		return fmt.Errorf("LOGIN_RATE_PER_MINUTE must not be negative, got %d", c.LoginRatePerMinute)
	}
	if c.LoginRatePerMinute > 0 && c.LoginBurst < 1 {
		return fmt.Errorf("LOGIN_BURST must be at least 1 when login rate limiting is on, got %d", c.LoginBurst)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	return nil
}
