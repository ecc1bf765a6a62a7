package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/jobkeeper/internal/flagx"
)

// JsonConfig is the on-disk shape of the config file. Absent or zero fields
// keep the value already in Config.
type JsonConfig struct {
	DatabasePath      string `json:"database_path"`
	ExportDir         string `json:"export_dir"`
	LogLevel          string `json:"log_level"`
	MaxAttachmentSize int64  `json:"max_attachment_size"`
}

func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ExportDir != "" {
		cfg.ExportDir = jc.ExportDir
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.MaxAttachmentSize > 0 {
		cfg.MaxAttachmentSize = jc.MaxAttachmentSize
	}
}
