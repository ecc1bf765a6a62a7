package config

import "os"

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: SQLite file holding the application slot (":memory:"
//     keeps everything in memory).
//   - ExportDir: directory for backups, spreadsheets, calendars and saved
//     attachments.
//   - LogLevel: debug, info, warn or error.
//   - MaxAttachmentSize: largest accepted attachment, in bytes.
type Config struct {
	DatabasePath      string
	ExportDir         string
	LogLevel          string
	MaxAttachmentSize int64
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "jobkeeper.db"
	c.ExportDir = "exports"
	c.LogLevel = "info"
	c.MaxAttachmentSize = 10 << 20
}

// LoadConfig builds the configuration from os.Args. It panics on an
// unreadable config file or malformed flags.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load builds the configuration from args: defaults, then the JSON file,
// then flags.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
