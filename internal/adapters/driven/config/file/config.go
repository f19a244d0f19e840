// Package file loads and persists application configuration as a TOML
// file. Missing files yield the defaults; a present file overrides
// only the fields it sets.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application settings.
type Config struct {
	// DataDir is the root for uploads, exports and the database.
	// Empty means ./data under the working directory.
	DataDir string `toml:"data_dir"`

	OCR    OCRConfig    `toml:"ocr"`
	Limits LimitsConfig `toml:"limits"`
}

// OCRConfig controls the recognition pipeline.
type OCRConfig struct {
	// Languages are Tesseract language codes, tried together.
	Languages []string `toml:"languages"`
	// Enhance applies the image preprocessing chain before
	// recognition unless overridden per upload.
	Enhance bool `toml:"enhance"`
}

// LimitsConfig bounds list and search result sizes.
type LimitsConfig struct {
	ListPageSize  int `toml:"list_page_size"`
	SearchResults int `toml:"search_results"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DataDir: "data",
		OCR: OCRConfig{
			Languages: []string{"vie", "eng"},
			Enhance:   true,
		},
		Limits: LimitsConfig{
			ListPageSize:  50,
			SearchResults: 50,
		},
	}
}

// DefaultPath returns the config file location, ~/.docmanager/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".docmanager", "config.toml"), nil
}

// Load reads the configuration at path, filling unset fields from the
// defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	// Zero values from a sparse file fall back to the defaults.
	def := Default()
	if cfg.DataDir == "" {
		cfg.DataDir = def.DataDir
	}
	if len(cfg.OCR.Languages) == 0 {
		cfg.OCR.Languages = def.OCR.Languages
	}
	if cfg.Limits.ListPageSize <= 0 {
		cfg.Limits.ListPageSize = def.Limits.ListPageSize
	}
	if cfg.Limits.SearchResults <= 0 {
		cfg.Limits.SearchResults = def.Limits.SearchResults
	}

	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
