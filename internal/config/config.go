package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "todo.db"
	DefaultLogName        = "todo.log"
	DefaultStorageKey     = "quinnjr.todomvc.self"
	AppDirName            = "todo"
	ConfigEnvVar          = "TODO_CONFIG"
)

type Keymap struct {
	Quit            string `toml:"quit"`
	Add             string `toml:"add"`
	Up              string `toml:"up"`
	Down            string `toml:"down"`
	Toggle          string `toml:"toggle"`
	ToggleAll       string `toml:"toggle_all"`
	Delete          string `toml:"delete"`
	Edit            string `toml:"edit"`
	Confirm         string `toml:"confirm"`
	Cancel          string `toml:"cancel"`
	ClearCompleted  string `toml:"clear_completed"`
	FilterAll       string `toml:"filter_all"`
	FilterActive    string `toml:"filter_active"`
	FilterCompleted string `toml:"filter_completed"`
	NextFilter      string `toml:"next_filter"`
}

type Config struct {
	DBPath        string `toml:"db_path"`
	StorageKey    string `toml:"storage_key"`
	DefaultFilter string `toml:"default_filter"`
	LogFile       string `toml:"log_file"`
	LogLevel      string `toml:"log_level"`
	Keys          Keymap `toml:"keys"`
}

// ResolveConfigPath picks the config file location: $TODO_CONFIG, then the
// user config directory, then the working directory.
func ResolveConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(ConfigEnvVar)); p != "" {
		return p
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppDirName, DefaultConfigFileName)
	}
	return DefaultConfigFileName
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig(filepath.Dir(path))
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	fillDefaults(&cfg, filepath.Dir(path))
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func fillDefaults(cfg *Config, dir string) {
	def := defaultConfig(dir)
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = def.DBPath
	}
	if strings.TrimSpace(cfg.StorageKey) == "" {
		cfg.StorageKey = def.StorageKey
	}
	if strings.TrimSpace(cfg.DefaultFilter) == "" {
		cfg.DefaultFilter = def.DefaultFilter
	}
	if strings.TrimSpace(cfg.LogFile) == "" {
		cfg.LogFile = def.LogFile
	}
	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = def.LogLevel
	}
	keys := &cfg.Keys
	for _, pair := range []struct {
		dst *string
		def string
	}{
		{&keys.Quit, def.Keys.Quit},
		{&keys.Add, def.Keys.Add},
		{&keys.Up, def.Keys.Up},
		{&keys.Down, def.Keys.Down},
		{&keys.Toggle, def.Keys.Toggle},
		{&keys.ToggleAll, def.Keys.ToggleAll},
		{&keys.Delete, def.Keys.Delete},
		{&keys.Edit, def.Keys.Edit},
		{&keys.Confirm, def.Keys.Confirm},
		{&keys.Cancel, def.Keys.Cancel},
		{&keys.ClearCompleted, def.Keys.ClearCompleted},
		{&keys.FilterAll, def.Keys.FilterAll},
		{&keys.FilterActive, def.Keys.FilterActive},
		{&keys.FilterCompleted, def.Keys.FilterCompleted},
		{&keys.NextFilter, def.Keys.NextFilter},
	} {
		if *pair.dst == "" {
			*pair.dst = pair.def
		}
	}
}

func defaultConfig(dir string) Config {
	return Config{
		DBPath:        filepath.Join(dir, DefaultDBName),
		StorageKey:    DefaultStorageKey,
		DefaultFilter: "all",
		LogFile:       filepath.Join(dir, DefaultLogName),
		LogLevel:      "info",
		Keys: Keymap{
			Quit:            "q",
			Add:             "a",
			Up:              "k",
			Down:            "j",
			Toggle:          " ",
			ToggleAll:       "A",
			Delete:          "d",
			Edit:            "e",
			Confirm:         "enter",
			Cancel:          "esc",
			ClearCompleted:  "C",
			FilterAll:       "1",
			FilterActive:    "2",
			FilterCompleted: "3",
			NextFilter:      "tab",
		},
	}
}
