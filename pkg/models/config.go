package models

import (
	"errors"
	"fmt"
	"net/url"
	"time"
	_ "time/tzdata" // display zone must not depend on the host zoneinfo
)

// Layout selects the visual template of the rendered board
type Layout string

const (
	LayoutTable Layout = "table" // one <tr> per event
	LayoutCards Layout = "cards" // one card per event
)

// SportStrategy selects how the sport label is derived
type SportStrategy string

const (
	SportStrategyAuto     SportStrategy = "auto"     // category when present, summary otherwise
	SportStrategySummary  SportStrategy = "summary"  // keyword match on the summary
	SportStrategyCategory SportStrategy = "category" // CATEGORIES field, "Unknown" when absent
)

const (
	DefaultFeedURL    = "https://westfieldstateowls.com/composite?print=ical"
	DefaultOutputPath = "public/games.html"
	DefaultLimit      = 5
	DefaultTimezone   = "America/New_York"
	DefaultDateLayout = "Jan 2"
	DefaultTimeLayout = "03:04 PM"
	DefaultTitle      = "Games"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds everything one generation run needs
type Config struct {
	FeedURL       string        `toml:"feed_url"`
	OutputPath    string        `toml:"output_path"`
	Layout        Layout        `toml:"layout"`
	Limit         int           `toml:"limit"`
	Timezone      string        `toml:"timezone"`
	DateLayout    string        `toml:"date_layout"` // Go time layout
	TimeLayout    string        `toml:"time_layout"` // Go time layout
	SportStrategy SportStrategy `toml:"sport_strategy"`
	SkipCancelled bool          `toml:"skip_cancelled"`
	HTTPTimeout   int           `toml:"http_timeout"` // seconds, 0 = none
	Title         string        `toml:"title"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		FeedURL:       DefaultFeedURL,
		OutputPath:    DefaultOutputPath,
		Layout:        LayoutTable,
		Limit:         DefaultLimit,
		Timezone:      DefaultTimezone,
		DateLayout:    DefaultDateLayout,
		TimeLayout:    DefaultTimeLayout,
		SportStrategy: SportStrategyAuto,
		Title:         DefaultTitle,
	}
}

// Validate checks the configuration and returns the first problem found
func (c *Config) Validate() error {
	if c.FeedURL == "" {
		return fmt.Errorf("%w: feed_url is required", ErrInvalidConfig)
	}
	u, err := url.Parse(c.FeedURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: feed_url %q is not an http(s) URL", ErrInvalidConfig, c.FeedURL)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("%w: output_path is required", ErrInvalidConfig)
	}
	switch c.Layout {
	case LayoutTable, LayoutCards:
	default:
		return fmt.Errorf("%w: unknown layout %q", ErrInvalidConfig, c.Layout)
	}
	switch c.SportStrategy {
	case SportStrategyAuto, SportStrategySummary, SportStrategyCategory:
	default:
		return fmt.Errorf("%w: unknown sport_strategy %q", ErrInvalidConfig, c.SportStrategy)
	}
	if c.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidConfig, c.Limit)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("%w: http_timeout must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Location resolves the configured display time zone
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Timeout returns the HTTP timeout; zero means no timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
