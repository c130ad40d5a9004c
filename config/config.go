package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const sessionFileName = "session.json"

type Config struct {
	ApiBaseUrl            string        `envconfig:"FRONTDESK_API_BASE_URL" default:"http://localhost:8080" required:"true"`
	HttpTimeout           time.Duration `envconfig:"FRONTDESK_HTTP_TIMEOUT" default:"0s"`
	SessionFile           string        `envconfig:"FRONTDESK_SESSION_FILE"`
	NotificationTTL       time.Duration `envconfig:"FRONTDESK_NOTIFICATION_TTL" default:"5s"`
	LoginRedirectDelay    time.Duration `envconfig:"FRONTDESK_LOGIN_REDIRECT_DELAY" default:"1s"`
	RegisterRedirectDelay time.Duration `envconfig:"FRONTDESK_REGISTER_REDIRECT_DELAY" default:"2s"`
	LogLevel              string        `envconfig:"LOG_LEVEL" default:"error"`
}

func New() *Config {
	return &Config{}
}

// LoadFromEnv reads an optional .env file from the working directory before processing the
// environment. Variables already set in the environment take precedence.
func (c *Config) LoadFromEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := envconfig.Process("", c); err != nil {
		return err
	}
	if c.SessionFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return err
		}
		c.SessionFile = filepath.Join(dir, "frontdesk", sessionFileName)
	}
	return nil
}

// Load is used as an fx constructor.
func Load() (*Config, error) {
	cfg := New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}
