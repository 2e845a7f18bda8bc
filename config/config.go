// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// Directory holding bets.csv, users.csv and events.csv.
	DataDir string

	// Ergast API root, season segment and per-request timeout.
	ErgastURL   string
	Season      string
	HTTPTimeout time.Duration

	// Time zones used for the DateCEST / DateEST columns of events, in that order.
	EventZones []string

	// Server
	Debug      bool
	Port       string
	TLSDomains []string

	// Optional rotating log file; stdout only when empty.
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	cfg := fromViper(newViper())
	if err := cfg.validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func fromViper(v *viper.Viper) *Config {
	// Defaults
	v.SetDefault("DATA_DIR", ".")
	v.SetDefault("ERGAST_BASE_URL", "http://ergast.com/api/f1/")
	v.SetDefault("ERGAST_SEASON", "current")
	v.SetDefault("HTTP_TIMEOUT", "15s")
	v.SetDefault("EVENT_ZONES", "Europe/Berlin,America/New_York")
	v.SetDefault("PORT", ":9000")
	v.SetDefault("TLS_DOMAINS", "")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_MAX_SIZE_MB", 50)
	v.SetDefault("LOG_MAX_BACKUPS", 5)
	v.SetDefault("LOG_MAX_AGE_DAYS", 30)

	return &Config{
		DataDir:       v.GetString("DATA_DIR"),
		ErgastURL:     v.GetString("ERGAST_BASE_URL"),
		Season:        v.GetString("ERGAST_SEASON"),
		HTTPTimeout:   v.GetDuration("HTTP_TIMEOUT"),
		EventZones:    splitTrimmed(v.GetString("EVENT_ZONES")),
		Debug:         v.GetBool("DEBUG"),
		Port:          v.GetString("PORT"),
		TLSDomains:    splitTrimmed(v.GetString("TLS_DOMAINS")),
		LogFile:       v.GetString("LOG_FILE"),
		LogMaxSizeMB:  v.GetInt("LOG_MAX_SIZE_MB"),
		LogMaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
		LogMaxAgeDays: v.GetInt("LOG_MAX_AGE_DAYS"),
	}
}

// Zones resolves EventZones. A missing second zone yields a nil location.
func (c *Config) Zones() (cest, est *time.Location, err error) {
	locs := make([]*time.Location, 2)
	for i, name := range c.EventZones {
		if i >= len(locs) {
			break
		}
		if locs[i], err = time.LoadLocation(name); err != nil {
			return nil, nil, fmt.Errorf("event zone %q: %w", name, err)
		}
	}
	return locs[0], locs[1], nil
}

func (c *Config) validate() error {
	if c.ErgastURL == "" {
		return errors.New("ERGAST_BASE_URL must be set")
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("HTTP_TIMEOUT must be a positive duration")
	}
	if c.Port == "" {
		return errors.New("PORT must be set")
	}
	if !c.Debug && len(c.TLSDomains) == 0 {
		return errors.New("TLS_DOMAINS must be set unless DEBUG is on")
	}
	if len(c.EventZones) > 2 {
		return errors.New("EVENT_ZONES takes at most two zones")
	}
	if _, _, err := c.Zones(); err != nil {
		return err
	}
	return nil
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
