package config

// Config is the root configuration structure.
type Config struct {
	UI     UIConfig     `json:"ui"`
	Editor EditorConfig `json:"editor"`
	Search SearchConfig `json:"search"`
	Cache  CacheConfig  `json:"cache"`
	Keymap KeymapConfig `json:"keymap"`
}

// UIConfig configures appearance and default view state.
type UIConfig struct {
	ShowHidden bool   `json:"showHidden"`
	Theme      string `json:"theme"` // markdown render style: "auto", "dark", "light"
}

// EditorConfig configures how files open for editing.
type EditorConfig struct {
	// Command, when set, opens files in this external editor instead of
	// the built-in one. The file path is appended as the last argument.
	Command string `json:"command"`
}

// SearchConfig configures fuzzy search behavior.
type SearchConfig struct {
	// ContentThresholdBytes is the largest file whose preview content
	// participates in search matching.
	ContentThresholdBytes int64 `json:"contentThresholdBytes"`
}

// CacheConfig bounds the listing and preview cache.
type CacheConfig struct {
	MaxEntries int `json:"maxEntries"`
}

// KeymapConfig holds key binding overrides, "context.command" -> key.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			ShowHidden: false,
			Theme:      "auto",
		},
		Search: SearchConfig{
			ContentThresholdBytes: 64 * 1024,
		},
		Cache: CacheConfig{
			MaxEntries: 128,
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
	}
}

// Validate checks the configuration for errors, clamping out-of-range
// numbers back to their defaults.
func (c *Config) Validate() error {
	if c.Search.ContentThresholdBytes <= 0 {
		c.Search.ContentThresholdBytes = 64 * 1024
	}
	if c.Cache.MaxEntries <= 0 {
		c.Cache.MaxEntries = 128
	}
	return nil
}
