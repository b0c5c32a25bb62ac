package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gamepadview.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := populate(newViper())
	if err != nil {
		t.Fatalf("populate: %v", err)
	}

	if cfg.Window.Width != defaultWindowWidth || cfg.Window.Height != defaultWindowHeight {
		t.Fatalf("unexpected window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != defaultWindowTitle {
		t.Fatalf("unexpected title %q", cfg.Window.Title)
	}
	if cfg.ThemePath != "" || !cfg.WatchTheme {
		t.Fatalf("unexpected theme settings %q %v", cfg.ThemePath, cfg.WatchTheme)
	}
	if cfg.LogLevel != zapcore.InfoLevel {
		t.Fatalf("unexpected log level %v", cfg.LogLevel)
	}
	if cfg.TPS != defaultTPS {
		t.Fatalf("unexpected tps %d", cfg.TPS)
	}
}

func TestLoadFile(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "overrides",
			doc:  "window:\n  width: 1024\n  title: pads\ntheme: dark.yaml\nwatch_theme: false\nlog_level: debug\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 1024 || cfg.Window.Height != defaultWindowHeight {
					t.Fatalf("unexpected window %+v", cfg.Window)
				}
				if cfg.Window.Title != "pads" {
					t.Fatalf("unexpected title %q", cfg.Window.Title)
				}
				if cfg.ThemePath != "dark.yaml" || cfg.WatchTheme {
					t.Fatalf("unexpected theme settings %q %v", cfg.ThemePath, cfg.WatchTheme)
				}
				if cfg.LogLevel != zapcore.DebugLevel {
					t.Fatalf("unexpected level %v", cfg.LogLevel)
				}
				if cfg.File == "" {
					t.Fatalf("File should name the config used")
				}
			},
		},
		{name: "bad_level", doc: "log_level: loud\n", wantErr: true},
		{name: "bad_size", doc: "window:\n  width: 0\n", wantErr: true},
		{name: "bad_tps", doc: "tps: -1\n", wantErr: true},
		{name: "bad_yaml", doc: "window: [\n", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, c.doc))
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			c.check(t, cfg)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit file")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("GAMEPADVIEW_WINDOW_TITLE", "from env")
	cfg, err := populate(newViper())
	if err != nil {
		t.Fatalf("populate: %v", err)
	}
	if cfg.Window.Title != "from env" {
		t.Fatalf("expected env title, got %q", cfg.Window.Title)
	}
}

func TestNewLogger(t *testing.T) {
	cfg, err := populate(newViper())
	if err != nil {
		t.Fatalf("populate: %v", err)
	}
	for _, debug := range []bool{false, true} {
		cfg.Debug = debug
		logger, err := cfg.NewLogger()
		if err != nil {
			t.Fatalf("NewLogger(debug=%v): %v", debug, err)
		}
		logger.Debugw("test", "debug", debug)
	}
}
