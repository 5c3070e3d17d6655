package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Roster   RosterConfig   `mapstructure:"roster"`
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Log      LogConfig      `mapstructure:"log"`
}

// RosterConfig points at the leave record dataset
type RosterConfig struct {
	File string `mapstructure:"file"` // JSON roster file; empty = built-in sample data
}

// HolidaysConfig points at the public holiday dataset
type HolidaysConfig struct {
	File string `mapstructure:"file"` // text file; empty = built-in sample list
}

// CalendarConfig controls grid generation
type CalendarConfig struct {
	WeekStart   string `mapstructure:"week_start"`   // "sunday" (default) or "monday"
	DefaultView string `mapstructure:"default_view"` // "month" (default) or "week"
}

// LogConfig controls logger output
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. When no explicit path is given and no
// config file is found, defaults are returned so the tool runs against the
// built-in sample dataset out of the box.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.leave-calendar")
		v.AddConfigPath("/etc/leave-calendar")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath == "" && errors.As(err, &notFound) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Calendar.WeekStart {
	case "", "sunday", "monday":
	default:
		return fmt.Errorf("calendar.week_start must be 'sunday' or 'monday', got '%s'", c.Calendar.WeekStart)
	}

	switch c.Calendar.DefaultView {
	case "", "month", "week":
	default:
		return fmt.Errorf("calendar.default_view must be 'month' or 'week', got '%s'", c.Calendar.DefaultView)
	}

	return nil
}

// GetWeekStart returns the configured first day of the week
func (c *CalendarConfig) GetWeekStart() time.Weekday {
	if c.WeekStart == "monday" {
		return time.Monday
	}
	return time.Sunday
}

// GetDefaultView returns the configured default view mode
func (c *CalendarConfig) GetDefaultView() string {
	if c.DefaultView == "" {
		return "month"
	}
	return c.DefaultView
}
