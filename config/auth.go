package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type AuthConfig struct {
	TokenSecret string
	TokenTTL    time.Duration
}

func GetAuthConfig() (*AuthConfig, error) {
	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("TOKEN_SECRET must be set")
	}

	ttl := 24 * time.Hour
	if raw := os.Getenv("TOKEN_TTL_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOKEN_TTL_HOURS: %w", err)
		}
		ttl = time.Duration(hours) * time.Hour
	}

	return &AuthConfig{
		TokenSecret: secret,
		TokenTTL:    ttl,
	}, nil
}
