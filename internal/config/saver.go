package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Save writes the config to ~/.config/mdns/config.json
func Save(cfg *Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config as indented JSON, creating parent
// directories as needed.
func SaveTo(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SaveShowHidden updates only the hidden-files preference and saves,
// so the toggle survives restarts without clobbering manual edits.
func SaveShowHidden(show bool) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.UI.ShowHidden = show
	return Save(cfg)
}
