package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/borgmon/games-board/pkg/models"
	"github.com/pelletier/go-toml/v2"
)

// ConfigStore handles configuration persistence in a TOML file
type ConfigStore struct {
	path string
}

// NewConfigStore creates a new ConfigStore instance
func NewConfigStore(path string) *ConfigStore {
	return &ConfigStore{path: path}
}

// Path returns the file the store reads and writes
func (cs *ConfigStore) Path() string {
	return cs.path
}

// Load reads the configuration file. Fields missing from the file keep their
// defaults; a missing file yields the default configuration.
func (cs *ConfigStore) Load() (*models.Config, error) {
	config := models.DefaultConfig()
	if cs.path == "" {
		return config, nil
	}

	data, err := os.ReadFile(cs.path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", cs.path, err)
	}

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", cs.path, err)
	}

	return config, nil
}

// Save writes config to the store path, creating parent directories
func (cs *ConfigStore) Save(config *models.Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if dir := filepath.Dir(cs.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(cs.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", cs.path, err)
	}
	return nil
}
