// Package config builds application configuration from the environment so
// main stays lean.
package config

import "os"

// Config captures everything the process reads from its environment.
type Config struct {
	Addr        string
	DatabaseURL string
	LogLevel    string

	// Optional OIDC SSO login. Disabled unless issuer and client are set.
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	return Config{
		Addr:             env("ADDR", ":8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		LogLevel:         env("LOG_LEVEL", "info"),
		OIDCIssuer:       os.Getenv("OIDC_ISSUER"),
		OIDCClientID:     os.Getenv("OIDC_CLIENT_ID"),
		OIDCClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
		OIDCRedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
	}
}

// SSOEnabled reports whether enough OIDC settings are present to offer SSO.
func (c Config) SSOEnabled() bool {
	return c.OIDCIssuer != "" && c.OIDCClientID != ""
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
