package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sandeepkv93/tasksift/internal/filter"
	"github.com/sandeepkv93/tasksift/internal/ids"
)

var ErrInvalidConfig = errors.New("config: invalid value")

type StoreBackend string

const (
	StoreFile   StoreBackend = "file"
	StoreSQLite StoreBackend = "sqlite"
	StoreMemory StoreBackend = "memory"
)

func (b StoreBackend) IsValid() bool {
	switch b {
	case StoreFile, StoreSQLite, StoreMemory:
		return true
	default:
		return false
	}
}

type RuntimeConfig struct {
	StoreBackend StoreBackend `yaml:"store"`
	StorePath    string       `yaml:"store_path"`
	FilterMode   filter.Mode  `yaml:"filter_mode"`
	IDScheme     ids.Scheme   `yaml:"id_scheme"`
	LogFile      string       `yaml:"log_file"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		StoreBackend: StoreFile,
		StorePath:    ".tasksift.json",
		FilterMode:   filter.ModeSigil,
		IDScheme:     ids.SchemeULID,
	}
}

// LoadFile overlays the YAML file at path onto base. Keys missing from the
// file keep their base value; a missing file is not an error.
func LoadFile(base RuntimeConfig, path string) (RuntimeConfig, error) {
	cfg := base
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(trimmed)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	var overlay RuntimeConfig
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", trimmed, err)
	}
	return Merge(cfg, overlay), nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	return Merge(base, RuntimeConfig{
		StoreBackend: StoreBackend(os.Getenv("TASKSIFT_STORE")),
		StorePath:    os.Getenv("TASKSIFT_STORE_PATH"),
		FilterMode:   filter.Mode(os.Getenv("TASKSIFT_FILTER_MODE")),
		IDScheme:     ids.Scheme(os.Getenv("TASKSIFT_ID_SCHEME")),
		LogFile:      os.Getenv("TASKSIFT_LOG_FILE"),
	})
}

func (c RuntimeConfig) Validate() error {
	if !c.StoreBackend.IsValid() {
		return fmt.Errorf("%w: store %q", ErrInvalidConfig, c.StoreBackend)
	}
	if c.StoreBackend != StoreMemory && strings.TrimSpace(c.StorePath) == "" {
		return fmt.Errorf("%w: store path is required for %s store", ErrInvalidConfig, c.StoreBackend)
	}
	if !c.FilterMode.IsValid() {
		return fmt.Errorf("%w: filter mode %q", ErrInvalidConfig, c.FilterMode)
	}
	if !c.IDScheme.IsValid() {
		return fmt.Errorf("%w: id scheme %q", ErrInvalidConfig, c.IDScheme)
	}
	return nil
}

// Merge overlays the non-empty fields of overlay onto base. Enum values are
// trimmed and lowercased.
func Merge(base, overlay RuntimeConfig) RuntimeConfig {
	cfg := base
	overlay = overlay.normalized()
	if overlay.StoreBackend != "" {
		cfg.StoreBackend = overlay.StoreBackend
	}
	if overlay.StorePath != "" {
		cfg.StorePath = overlay.StorePath
	}
	if overlay.FilterMode != "" {
		cfg.FilterMode = overlay.FilterMode
	}
	if overlay.IDScheme != "" {
		cfg.IDScheme = overlay.IDScheme
	}
	if overlay.LogFile != "" {
		cfg.LogFile = overlay.LogFile
	}
	return cfg
}

func (c RuntimeConfig) normalized() RuntimeConfig {
	c.StoreBackend = StoreBackend(lowerTrim(string(c.StoreBackend)))
	c.StorePath = strings.TrimSpace(c.StorePath)
	c.FilterMode = filter.Mode(lowerTrim(string(c.FilterMode)))
	c.IDScheme = ids.Scheme(lowerTrim(string(c.IDScheme)))
	c.LogFile = strings.TrimSpace(c.LogFile)
	return c
}

func lowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
