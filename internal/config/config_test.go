package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultConfigFileName)
	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file written: %v", err)
	}
	dir := filepath.Dir(path)
	if cfg.DBPath != filepath.Join(dir, DefaultDBName) {
		t.Fatalf("unexpected db path: %q", cfg.DBPath)
	}
	if cfg.StorageKey != DefaultStorageKey {
		t.Fatalf("unexpected storage key: %q", cfg.StorageKey)
	}
	if cfg.DefaultFilter != "all" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Keys.Quit != "q" || cfg.Keys.Toggle != " " || cfg.Keys.NextFilter != "tab" {
		t.Fatalf("unexpected keymap: %+v", cfg.Keys)
	}

	again, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again != cfg {
		t.Fatalf("expected written defaults to load back unchanged:\n%+v\n%+v", again, cfg)
	}
}

func TestLoadOrCreateReadsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	body := strings.Join([]string{
		`db_path = "/tmp/custom.db"`,
		`storage_key = "work.todos"`,
		`default_filter = "active"`,
		`log_level = "debug"`,
		``,
		`[keys]`,
		`quit = "x"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/custom.db" || cfg.StorageKey != "work.todos" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.DefaultFilter != "active" || cfg.LogLevel != "debug" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Keys.Quit != "x" || cfg.Keys.Add != "a" {
		t.Fatalf("unexpected keymap: %+v", cfg.Keys)
	}
}

func TestLoadOrCreateFillsBlankValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	body := "db_path = \"\"\nstorage_key = \"  \"\n\n[keys]\nquit = \"\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != filepath.Join(filepath.Dir(path), DefaultDBName) {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.StorageKey != DefaultStorageKey {
		t.Fatalf("expected default storage key, got %q", cfg.StorageKey)
	}
	if cfg.Keys.Quit != "q" {
		t.Fatalf("expected default quit key, got %q", cfg.Keys.Quit)
	}
}

func TestLoadOrCreateRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	if err := os.WriteFile(path, []byte("db_path = "), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadOrCreate(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv(ConfigEnvVar, "/etc/todo/custom.toml")
	if got := ResolveConfigPath(); got != "/etc/todo/custom.toml" {
		t.Fatalf("expected env override, got %q", got)
	}

	t.Setenv(ConfigEnvVar, "")
	t.Setenv("XDG_CONFIG_HOME", "/home/tester/.config")
	t.Setenv("HOME", "/home/tester")
	got := ResolveConfigPath()
	if !strings.HasSuffix(got, filepath.Join(AppDirName, DefaultConfigFileName)) {
		t.Fatalf("unexpected default path: %q", got)
	}
}
