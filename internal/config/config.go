package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Export   ExportConfig
	Sheets   SheetsConfig
	MongoDB  MongoDBConfig
	Notify   NotifyConfig
	Schedule ScheduleConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// ExportConfig holds defaults for workbook exports. OutputRoot bounds where
// HTTP callers may place workbooks.
type ExportConfig struct {
	DefaultMode string
	SourcePath  string
	Modes       []string
	OutputRoot  string
}

// SheetsConfig contains configuration required to mirror exports to Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// Enabled reports whether the Google Sheets mirror is configured.
func (c SheetsConfig) Enabled() bool {
	return c.CredentialsPath != "" && c.SpreadsheetID != ""
}

// MongoDBConfig holds settings for the export history store.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// Enabled reports whether export history is configured.
func (c MongoDBConfig) Enabled() bool {
	return c.URI != ""
}

// NotifyConfig holds the completion webhook settings.
type NotifyConfig struct {
	WebhookURL string
	Token      string
}

// Enabled reports whether completion notifications are configured.
func (c NotifyConfig) Enabled() bool {
	return c.WebhookURL != ""
}

// ScheduleConfig holds the scheduled re-export settings.
type ScheduleConfig struct {
	CronSchedule string
	Timezone     string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Export: ExportConfig{
			DefaultMode: getenvWithDefault("EXPORT_DEFAULT_MODE", "full"),
			SourcePath:  os.Getenv("EXPORT_SOURCE_PATH"),
			Modes:       splitList(getenvWithDefault("EXPORT_MODES", "pax,cargo,full")),
			OutputRoot:  getenvWithDefault("EXPORT_OUTPUT_ROOT", "."),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "airline_exports"),
		},
		Notify: NotifyConfig{
			WebhookURL: os.Getenv("NOTIFY_WEBHOOK_URL"),
			Token:      os.Getenv("NOTIFY_WEBHOOK_TOKEN"),
		},
		Schedule: ScheduleConfig{
			CronSchedule: os.Getenv("EXPORT_CRON_SCHEDULE"),
			Timezone:     getenvWithDefault("TIMEZONE", "UTC"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if len(c.Export.Modes) == 0 {
		return errors.New("EXPORT_MODES must list at least one mode")
	}

	if strings.TrimSpace(c.Export.OutputRoot) == "" {
		return errors.New("EXPORT_OUTPUT_ROOT must be provided")
	}

	switch {
	case c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID == "":
		return errors.New("GOOGLE_SHEET_DATABASE_ID must be provided with GOOGLE_SHEETS_CREDENTIALS_PATH")
	case c.Sheets.CredentialsPath == "" && c.Sheets.SpreadsheetID != "":
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided with GOOGLE_SHEET_DATABASE_ID")
	}

	if c.MongoDB.Enabled() && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must not be empty")
	}

	if c.Schedule.CronSchedule != "" {
		if c.Export.SourcePath == "" {
			return errors.New("EXPORT_SOURCE_PATH must be provided with EXPORT_CRON_SCHEDULE")
		}
		if c.Schedule.Timezone == "" {
			return errors.New("TIMEZONE must be provided")
		}
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
