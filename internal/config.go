package internal

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"http_server"`
	Storage       StorageConfig       `mapstructure:"storage"`
	Security      SecurityConfig      `mapstructure:"security" validate:"required"`
	Welcome       WelcomeConfig       `mapstructure:"welcome"`
	Push          PushConfig          `mapstructure:"push"`
	Roster        RosterConfig        `mapstructure:"roster"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	BaseURL           string        `mapstructure:"base_url"`
	AllowedOrigins    string        `mapstructure:"allowed_origins"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
}

type StorageConfig struct {
	// Driver selects the blob store backend: "sqlite" (default, single file
	// deployment) or "postgres".
	Driver string `mapstructure:"driver"`
	Source string `mapstructure:"source"`
}

type SecurityConfig struct {
	TokenSecret   string        `mapstructure:"token_secret" validate:"required,min=32"`
	TokenDuration time.Duration `mapstructure:"token_duration"`
}

type WelcomeConfig struct {
	APIURL  string        `mapstructure:"api_url"`
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type PushConfig struct {
	// DispatchDelay mirrors the delivery lag staff see between pressing send
	// and the banner appearing on devices.
	DispatchDelay time.Duration `mapstructure:"dispatch_delay"`
}

type RosterConfig struct {
	// DuplicatePolicy controls what AddUser does when the employee id is
	// already registered: "reject" (default) or "allow".
	DuplicatePolicy string `mapstructure:"duplicate_policy"`
}

type ObservabilityConfig struct {
	Logging LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

const (
	DuplicatePolicyReject = "reject"
	DuplicatePolicyAllow  = "allow"
)

// ----------------- HELPERS -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultVal
}

// LoadConfigFromEnv builds a Config entirely from environment variables,
// used for container deployments where no config file is mounted.
func LoadConfigFromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              getEnvAsInt("SERVER_PORT", 8080),
			BaseURL:           getEnv("SERVER_BASE_URL", "http://localhost:8080"),
			AllowedOrigins:    getEnv("SERVER_ALLOWED_ORIGINS", "*"),
			ReadHeaderTimeout: getEnvAsDuration("SERVER_READ_HEADER_TIMEOUT", 5*time.Second),
			ReadTimeout:       getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			IdleTimeout:       getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			WriteTimeout:      getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Storage: StorageConfig{
			Driver: getEnv("STORAGE_DRIVER", "sqlite"),
			Source: getEnv("STORAGE_SOURCE", "portal.db"),
		},
		Security: SecurityConfig{
			TokenSecret:   getEnv("SECURITY_TOKEN_SECRET", ""),
			TokenDuration: getEnvAsDuration("SECURITY_TOKEN_DURATION", 12*time.Hour),
		},
		Welcome: WelcomeConfig{
			APIURL:  getEnv("WELCOME_API_URL", ""),
			APIKey:  getEnv("WELCOME_API_KEY", ""),
			Model:   getEnv("WELCOME_MODEL", "gemini-3-flash-preview"),
			Timeout: getEnvAsDuration("WELCOME_TIMEOUT", 10*time.Second),
		},
		Push: PushConfig{
			DispatchDelay: getEnvAsDuration("PUSH_DISPATCH_DELAY", 1500*time.Millisecond),
		},
		Roster: RosterConfig{
			DuplicatePolicy: getEnv("ROSTER_DUPLICATE_POLICY", DuplicatePolicyReject),
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("LOG_LEVEL", "info"),
				Format: getEnv("LOG_FORMAT", "json"),
			},
		},
	}
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("server config: %v", err))
	}

	if err := c.Storage.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("storage config: %v", err))
	}

	if err := c.Security.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("security config: %v", err))
	}

	if err := c.Roster.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("roster config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *ServerConfig) Validate() error {
	if c.AllowedOrigins != "" {
		origins := strings.Split(c.AllowedOrigins, ",")
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin == "*" {
				continue
			}
			if _, err := url.Parse(origin); err != nil {
				return fmt.Errorf("invalid allowed origin %s: %w", origin, err)
			}
		}
	}
	if c.ReadTimeout < c.ReadHeaderTimeout {
		return errors.New("read_timeout must be >= read_header_timeout")
	}
	return nil
}

func (c *StorageConfig) Validate() error {
	switch c.Driver {
	case "", "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Driver)
	}
	if c.Source == "" {
		return errors.New("storage source is required")
	}
	return nil
}

func (c *StorageConfig) GetDSN() string {
	return c.Source
}

func (c *SecurityConfig) Validate() error {
	if len(c.TokenSecret) < 32 {
		return errors.New("token secret must be at least 32 characters")
	}
	if c.TokenDuration <= 0 {
		return errors.New("token duration must be positive")
	}
	return nil
}

func (c *RosterConfig) Validate() error {
	switch c.DuplicatePolicy {
	case "", DuplicatePolicyReject, DuplicatePolicyAllow:
		return nil
	default:
		return fmt.Errorf("unknown duplicate_policy %q", c.DuplicatePolicy)
	}
}
