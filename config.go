package cascade

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/cascadews/cascade.go/pkg/connection"
	"github.com/cascadews/cascade.go/pkg/connection/soap"
	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/logger"
	"github.com/cascadews/cascade.go/pkg/models"
)

// Config holds the settings needed to reach one Cascade instance.
type Config struct {
	URL      string        `env:"CASCADE_URL"`
	Username string        `env:"CASCADE_USERNAME"`
	Password string        `env:"CASCADE_PASSWORD"`
	APIKey   string        `env:"CASCADE_API_KEY"`
	Timeout  time.Duration `env:"CASCADE_TIMEOUT" env-default:"30s"`
	LogLevel string        `env:"CASCADE_LOG_LEVEL" env-default:"info"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.URL == "" {
		return errors.New("url is required")
	}
	if _, err := url.ParseRequestURI(c.URL); err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if c.APIKey == "" && (c.Username == "" || c.Password == "") {
		return errors.New("api key or username and password are required")
	}
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	return nil
}

func (c *Config) Authentication() models.Authentication {
	return models.Authentication{
		Username: c.Username,
		Password: c.Password,
		APIKey:   c.APIKey,
	}
}

// FromConfig builds a Service over the SOAP transport. Logs go to stdout at
// cfg.LogLevel.
func FromConfig(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", constants.ErrInvalidArgument)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", constants.ErrInvalidArgument, err)
	}
	u, err := url.ParseRequestURI(cfg.URL)
	if err != nil {
		return nil, err
	}

	log, err := logger.New().LevelString(cfg.LogLevel).Make()
	if err != nil {
		return nil, err
	}

	p := connection.NewConfig(u)
	p.Logger = log
	if cfg.Timeout > 0 {
		p.Timeout = cfg.Timeout
	}

	s, err := New(soap.New(p), cfg.Authentication())
	if err != nil {
		return nil, err
	}
	return s.WithLogger(log), nil
}
