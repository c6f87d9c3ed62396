package pipeline

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/antput/antput/lib/retry"
)

type Config struct {
	Wallet struct {
		PrivateKey string `envconfig:"AUTONOMI_PRIVATE_KEY" required:"true"`
	}
	Gateway struct {
		URL string `envconfig:"ANTPUT_GATEWAY_URL"`
	}
	Store struct {
		Path string `envconfig:"ANTPUT_STORE_PATH" default:"./antput-store"`
	}
	Retry struct {
		MaxAttempts  int `envconfig:"ANTPUT_RETRY_ATTEMPTS" default:"50"`
		DelaySeconds int `envconfig:"ANTPUT_RETRY_DELAY_SECONDS" default:"5"`
	}
}

func GetConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// RetryPolicy translates the configured ceiling into an executor policy.
func (c *Config) RetryPolicy() retry.Policy {
	return retry.Policy{
		MaxAttempts: c.Retry.MaxAttempts,
		Delay:       time.Duration(c.Retry.DelaySeconds) * time.Second,
	}
}
