package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	want := Config{
		DatabasePath:      "jobkeeper.db",
		ExportDir:         "exports",
		LogLevel:          "info",
		MaxAttachmentSize: 10 << 20,
	}
	if diff := cmp.Diff(want, defaults()); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"database_path":       "/data/jobs.db",
		"export_dir":          "/data/out",
		"log_level":           "debug",
		"max_attachment_size": 1024,
	})

	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "defaults only",
			args: nil,
			want: defaults(),
		},
		{
			name: "json overlays defaults",
			args: []string{"-c", path},
			want: Config{DatabasePath: "/data/jobs.db", ExportDir: "/data/out", LogLevel: "debug", MaxAttachmentSize: 1024},
		},
		{
			name: "flags override json",
			args: []string{"-config", path, "-d", ":memory:", "-m", "2048"},
			want: Config{DatabasePath: ":memory:", ExportDir: "/data/out", LogLevel: "debug", MaxAttachmentSize: 2048},
		},
		{
			name: "flags without json",
			args: []string{"-e", "backups", "-l", "warn"},
			want: Config{DatabasePath: "jobkeeper.db", ExportDir: "backups", LogLevel: "warn", MaxAttachmentSize: 10 << 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Load(tt.args)
			if diff := cmp.Diff(tt.want, *got); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseJson_PartialKeepsExisting(t *testing.T) {
	path := writeTempJSON(t, map[string]any{"export_dir": "only-this"})

	cfg := defaults()
	parseJson(&cfg, []string{"-c", path})

	want := defaults()
	want.ExportDir = "only-this"
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseJson_Panics(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg := defaults()
		assert.Panics(t, func() { parseJson(&cfg, []string{"-c", filepath.Join(t.TempDir(), "none.json")}) })
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
		cfg := defaults()
		assert.Panics(t, func() { parseJson(&cfg, []string{"-c", path}) })
	})
}

func TestParseFlags_BadValuePanics(t *testing.T) {
	cfg := defaults()
	assert.Panics(t, func() { parseFlags(&cfg, []string{"-m", "lots"}) })
}
