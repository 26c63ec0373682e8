package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTP_PORT         string `env:"HTTP_PORT"`
	SMTP_HOST         string `env:"SMTP_HOST"`
	SMTP_PORT         int    `env:"SMTP_PORT"`
	SMTP_USER         string `env:"SMTP_USER"`
	SMTP_PASS         string `env:"SMTP_PASS"`
	ADMIN_EMAIL       string `env:"ADMIN_EMAIL"`
	PAYSTACK_SECRET   string `env:"PAYSTACK_SECRET"`
	PAYSTACK_BASE_URL string `env:"PAYSTACK_BASE_URL"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		HTTP_PORT:         os.Getenv("HTTP_PORT"),
		SMTP_HOST:         os.Getenv("SMTP_HOST"),
		SMTP_USER:         os.Getenv("SMTP_USER"),
		SMTP_PASS:         os.Getenv("SMTP_PASS"),
		ADMIN_EMAIL:       os.Getenv("ADMIN_EMAIL"),
		PAYSTACK_SECRET:   os.Getenv("PAYSTACK_SECRET"),
		PAYSTACK_BASE_URL: os.Getenv("PAYSTACK_BASE_URL"),
	}

	if cfg.HTTP_PORT == "" {
		cfg.HTTP_PORT = "5000"
	}
	if cfg.SMTP_HOST == "" {
		cfg.SMTP_HOST = "smtp.zoho.com"
	}
	cfg.SMTP_PORT = 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.SMTP_PORT = p
		}
	}
	// Order notifications go to the store mailbox itself unless overridden.
	if cfg.ADMIN_EMAIL == "" {
		cfg.ADMIN_EMAIL = cfg.SMTP_USER
	}

	return cfg, nil
}
