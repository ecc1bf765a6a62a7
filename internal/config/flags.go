package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/jobkeeper/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-d string   database file
//	-e string   export directory
//	-l string   log level
//	-m int      maximum attachment size in bytes
//
// Other arguments (such as -c) are filtered out first.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-e", "-l", "-m"})

	fs := flag.NewFlagSet("jobkeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "database file")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "export directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.Int64Var(&cfg.MaxAttachmentSize, "m", cfg.MaxAttachmentSize, "maximum attachment size in bytes")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
