package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/workboard/wb/pkg/board"
	"github.com/workboard/wb/pkg/filter"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wb.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.View() != board.ViewTable {
		t.Errorf("default view = %s", cfg.View())
	}
	if cfg.ResultSet() != filter.SetRecentlyUpdated {
		t.Errorf("default result set = %s", cfg.ResultSet())
	}
}

func TestLoadWithoutPathOrEnv(t *testing.T) {
	t.Setenv(EnvVar, "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.DefaultView != "table" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "default_view: kanban\n")
	t.Setenv(EnvVar, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.View() != board.ViewKanban {
		t.Errorf("view = %s, want kanban", cfg.View())
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
fixtures: corpus.yaml
default_view: workitems
default_result_set: assigned-to-me
width: 120
watch: true
log:
  file: /tmp/wb.log
  level: debug
  status_level: error
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}

	if cfg.Fixtures != filepath.Join(filepath.Dir(path), "corpus.yaml") {
		t.Errorf("Fixtures = %s, want path relative to config", cfg.Fixtures)
	}
	if cfg.View() != board.ViewWorkItems || cfg.ResultSet() != filter.SetAssignedToMe {
		t.Errorf("view/set = %s/%s", cfg.View(), cfg.ResultSet())
	}
	if cfg.Width != 120 || !cfg.Watch {
		t.Errorf("width/watch = %d/%v", cfg.Width, cfg.Watch)
	}
	opts := cfg.LogOptions()
	if opts.File != "/tmp/wb.log" || opts.Level != "debug" || opts.StatusLevel != "error" {
		t.Errorf("LogOptions = %+v", opts)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad view", "default_view: gantt\n", "default_view"},
		{"bad set", "default_result_set: starred\n", "default_result_set"},
		{"bad level", "log:\n  level: chatty\n", "log.level"},
		{"negative width", "width: -1\n", "width"},
		{"bad yaml", "default_view: [\n", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
