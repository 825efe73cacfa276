package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Contact sinks a submitted message can be delivered to
const (
	SinkSimulated = "simulated"
	SinkSQLite    = "sqlite"
	SinkAirtable  = "airtable"
)

// Config holds all application configuration values
type Config struct {
	Port                 string
	GinMode              string
	LogLevel             string
	SubmitDelay          time.Duration
	SessionTTL           time.Duration
	ContentFile          string
	ContactSink          string
	DataDir              string
	AirtableAPIKey       string
	AirtableBaseID       string
	AirtableContactTable string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                 getenv("PORT", "8080"),
		GinMode:              getenv("GIN_MODE", "release"),
		LogLevel:             strings.ToLower(getenv("LOG_LEVEL", "info")),
		ContentFile:          os.Getenv("CONTENT_FILE"),
		ContactSink:          strings.ToLower(getenv("CONTACT_SINK", SinkSimulated)),
		DataDir:              getenv("DATA_DIR", filepath.Join(".", "data")),
		AirtableAPIKey:       os.Getenv("AIRTABLE_API_KEY"),
		AirtableBaseID:       os.Getenv("AIRTABLE_BASE_ID"),
		AirtableContactTable: getenv("AIRTABLE_CONTACT_TABLE", "Contact"),
	}

	var err error
	if cfg.SubmitDelay, err = durationEnv("SUBMIT_DELAY", 1500*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", 30*time.Minute); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that depend on each other
func (c *Config) Validate() error {
	switch c.ContactSink {
	case SinkSimulated, SinkSQLite:
	case SinkAirtable:
		if c.AirtableAPIKey == "" || c.AirtableBaseID == "" {
			return fmt.Errorf("CONTACT_SINK=airtable requires AIRTABLE_API_KEY and AIRTABLE_BASE_ID")
		}
	default:
		return fmt.Errorf("unknown CONTACT_SINK %q", c.ContactSink)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: negative duration %s", key, v)
	}
	return d, nil
}
