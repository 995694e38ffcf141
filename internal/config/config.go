package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"communibase/pkg/databag"
	"communibase/pkg/logging"
	"communibase/pkg/tz"
)

type Config struct {
	EntityType    string
	TimezoneName  string
	DefaultLocale string
	LogLevel      slog.Level

	// Location is TimezoneName resolved by Load.
	Location *time.Location
}

// Load reads the configuration from the environment (and .env if present)
// and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment.
	_ = godotenv.Load()

	cfg := &Config{
		EntityType:    os.Getenv("EVENT_ENTITY_TYPE"),
		TimezoneName:  os.Getenv("EVENT_TIMEZONE"),
		DefaultLocale: os.Getenv("DEFAULT_LOCALE"),
		LogLevel:      logging.ParseLevel(os.Getenv("LOG_LEVEL")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate fills defaults and checks every value.
func (c *Config) validate() error {
	c.EntityType = strings.TrimSpace(c.EntityType)
	if c.EntityType == "" {
		c.EntityType = "event"
	}
	if err := databag.ValidateSegment(c.EntityType); err != nil {
		return fmt.Errorf("config: EVENT_ENTITY_TYPE must be a plain field name: %w", err)
	}

	c.TimezoneName = strings.TrimSpace(c.TimezoneName)
	if c.TimezoneName == "" {
		c.TimezoneName = tz.DefaultName
	}
	loc, err := time.LoadLocation(c.TimezoneName)
	if err != nil {
		return fmt.Errorf("config: EVENT_TIMEZONE invalid (%q): %w", c.TimezoneName, err)
	}
	c.Location = loc

	c.DefaultLocale = strings.TrimSpace(c.DefaultLocale)
	if c.DefaultLocale == "" {
		c.DefaultLocale = "nl"
	}
	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("config: DEFAULT_LOCALE invalid (%q): %w", c.DefaultLocale, err)
	}

	return nil
}
