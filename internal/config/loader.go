package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

const (
	configDir  = ".config/mdns"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary. Pointer fields tell
// a value the user set from one they omitted.
type rawConfig struct {
	UI     rawUIConfig     `json:"ui"`
	Editor EditorConfig    `json:"editor"`
	Search rawSearchConfig `json:"search"`
	Cache  rawCacheConfig  `json:"cache"`
	Keymap KeymapConfig    `json:"keymap"`
}

type rawUIConfig struct {
	ShowHidden *bool  `json:"showHidden"`
	Theme      string `json:"theme"`
}

type rawSearchConfig struct {
	ContentThresholdBytes *int64 `json:"contentThresholdBytes"`
}

type rawCacheConfig struct {
	MaxEntries *int `json:"maxEntries"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/mdns/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil // Return defaults on error
		}
		path = filepath.Join(home, configDir, configFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	mergeConfig(cfg, &raw)

	cfg.Editor.Command = ExpandPath(cfg.Editor.Command)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// UI
	if raw.UI.ShowHidden != nil {
		cfg.UI.ShowHidden = *raw.UI.ShowHidden
	}
	if raw.UI.Theme != "" {
		cfg.UI.Theme = raw.UI.Theme
	}

	// Editor
	if raw.Editor.Command != "" {
		cfg.Editor.Command = raw.Editor.Command
	}

	// Search
	if raw.Search.ContentThresholdBytes != nil {
		cfg.Search.ContentThresholdBytes = *raw.Search.ContentThresholdBytes
	}

	// Cache
	if raw.Cache.MaxEntries != nil {
		cfg.Cache.MaxEntries = *raw.Cache.MaxEntries
	}

	// Keymap
	if raw.Keymap.Overrides != nil {
		for k, v := range raw.Keymap.Overrides {
			cfg.Keymap.Overrides[k] = v
		}
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}
