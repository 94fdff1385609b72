// Package config loads estio's runtime configuration from environment
// variables. The CLI autoloads a .env file first (godotenv), mirroring how
// the demo deployments are configured.
package config

import (
	"fmt"
	"os"
)

// Couchbase holds the document backend connection settings.
type Couchbase struct {
	ConnStr    string
	Username   string
	Password   string
	Bucket     string
	Scope      string
	Collection string
}

// Config is the full runtime configuration.
type Config struct {
	Couchbase Couchbase

	// UserID identifies the client whose memory the CLI session uses.
	UserID string

	// API keys; the first non-empty one selects the model provider
	// (Anthropic preferred, then OpenAI).
	AnthropicAPIKey string
	OpenAIAPIKey    string
}

// FromEnv reads the configuration from the process environment.
func FromEnv() Config {
	return Config{
		Couchbase: Couchbase{
			ConnStr:    os.Getenv("COUCHBASE_CONN_STR"),
			Username:   os.Getenv("COUCHBASE_USERNAME"),
			Password:   os.Getenv("COUCHBASE_PASSWORD"),
			Bucket:     os.Getenv("COUCHBASE_BUCKET"),
			Scope:      getenvDefault("COUCHBASE_SCOPE", "agent"),
			Collection: getenvDefault("COUCHBASE_COLLECTION", "memory"),
		},
		UserID:          getenvDefault("ESTIO_USER_ID", "RealEstateClient"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
	}
}

// HasCouchbase reports whether a durable backend is configured; without one
// the CLI falls back to the in-memory document store.
func (c Config) HasCouchbase() bool {
	return c.Couchbase.ConnStr != "" && c.Couchbase.Bucket != ""
}

// ValidateModel ensures a model provider can be selected.
func (c Config) ValidateModel() error {
	if c.AnthropicAPIKey == "" && c.OpenAIAPIKey == "" {
		return fmt.Errorf("set ANTHROPIC_API_KEY or OPENAI_API_KEY to run the assistant")
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
