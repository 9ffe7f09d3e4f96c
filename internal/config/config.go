package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/waylo/companion/backend/internal/logger"
	"github.com/waylo/companion/backend/internal/report"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Supabase SupabaseConfig `mapstructure:"supabase"`
	Reports  ReportsConfig  `mapstructure:"reports"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

// SupabaseConfig points at the hosted document store and auth service.
type SupabaseConfig struct {
	URL        string `mapstructure:"url"`
	ServiceKey string `mapstructure:"service_key"`
}

// ReportsConfig sets the default calendar used to bucket log timestamps.
// Requests may override both values.
type ReportsConfig struct {
	Timezone  string `mapstructure:"timezone"`
	WeekStart string `mapstructure:"week_start"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads .env, environment variables and an optional config.yaml, in
// increasing order of precedence for env over file.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("reports.timezone", "UTC")
	v.SetDefault("reports.week_start", "sunday")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetEnvPrefix("COMPANION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unprefixed names used by the hosting platform and the Supabase CLI.
	_ = v.BindEnv("server.port", "COMPANION_SERVER_PORT", "PORT")
	_ = v.BindEnv("supabase.url", "COMPANION_SUPABASE_URL", "SUPABASE_URL")
	_ = v.BindEnv("supabase.service_key", "COMPANION_SUPABASE_SERVICE_KEY", "SUPABASE_SERVICE_KEY")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that all required configuration values are present
func (c *Config) Validate() error {
	if c.Supabase.URL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.Supabase.ServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_KEY is required")
	}
	if _, err := c.Calendar(); err != nil {
		return fmt.Errorf("invalid reports config: %w", err)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log config: %w", err)
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("invalid log config: format must be json or text, got %q", c.Log.Format)
	}
	return nil
}

// Calendar is the default report calendar.
func (c *Config) Calendar() (report.Calendar, error) {
	return report.NewCalendar(c.Reports.Timezone, c.Reports.WeekStart)
}

// LoggerConfig translates the log section for logger.NewSlogLogger.
func (c *Config) LoggerConfig() logger.Config {
	level, _ := logger.ParseLevel(c.Log.Level)
	return logger.Config{
		Level:     level,
		Format:    c.Log.Format,
		AddSource: c.Server.Env != "production",
	}
}
