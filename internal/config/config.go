package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName        = "hnl"
	configFileName = "config.toml"

	// DefaultTitleFormat renders the terminal window title for the playing track.
	DefaultTitleFormat = "HNL - %title% - %artist% - %album% '('#%tracknumber% / %tracktotal%')'"
)

type Config struct {
	DefaultFolder string   `koanf:"default_folder"`
	TitleFormat   string   `koanf:"title_format"`
	LogFile       string   `koanf:"log_file"`
	LogLevel      string   `koanf:"log_level"`       // "debug", "info", "warn", "error"
	Icons         string   `koanf:"icons"`           // "nerd", "unicode", "none"
	ReadAudioInfo *bool    `koanf:"read_audio_info"` // read stream info for dropped files (default: true)
	Columns       []Column `koanf:"columns"`

	// Path is the last config file that was loaded, empty if none existed.
	Path string `koanf:"-"`
}

// Column is one [[columns]] entry.
type Column struct {
	Name   string `koanf:"name"`
	Width  int    `koanf:"width"`
	Format string `koanf:"format"`
}

// Load reads the config files in order of priority and applies defaults.
// extra, when non-empty, is loaded last and must exist.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	var loaded string
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
			loaded = path
		}
	}
	if extra != "" {
		if err := k.Load(file.Provider(extra), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", extra, err)
		}
		loaded = extra
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.Path = loaded
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DefaultFolder != "" {
		c.DefaultFolder = expandPath(c.DefaultFolder)
	}
	if c.LogFile != "" {
		c.LogFile = expandPath(c.LogFile)
	}
	if c.TitleFormat == "" {
		c.TitleFormat = DefaultTitleFormat
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Icons == "" {
		c.Icons = "unicode"
	}
}

// AudioInfoEnabled reports whether dropped files get their stream info read.
func (c *Config) AudioInfoEnabled() bool {
	return c.ReadAudioInfo == nil || *c.ReadAudioInfo
}

// WritePath returns the file that saved settings go to: the last loaded
// config, or the user config file when none was loaded.
func (c *Config) WritePath() string {
	if c.Path != "" {
		return c.Path
	}
	return userConfigPath()
}

// SaveColumns rewrites the [[columns]] section of the config file at path,
// keeping every other key. The file is created if missing.
func SaveColumns(path string, cols []Column) error {
	k := koanf.New(".")
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}

	entries := make([]map[string]any, 0, len(cols))
	for _, c := range cols {
		entries = append(entries, map[string]any{
			"name":   c.Name,
			"width":  c.Width,
			"format": c.Format,
		})
	}
	k.Delete("columns")
	if err := k.Set("columns", entries); err != nil {
		return err
	}

	data, err := k.Marshal(toml.Parser())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func userConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, configFileName)
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/hnl/config.toml
		userConfigPath(),
		// 2. ./config.toml (pwd, highest priority)
		configFileName,
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
