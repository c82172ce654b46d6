package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"reactor.de/timehandler/internal/domain"
	"reactor.de/timehandler/internal/infra/clock"
	"reactor.de/timehandler/internal/pathutil"
	"reactor.de/timehandler/internal/pattern"
)

// YAMLConfigLoader implements the domain.ConfigLoader interface for YAML files.
type YAMLConfigLoader struct {
	path string
}

// NewYAMLConfigLoader creates a loader for the file at path.
func NewYAMLConfigLoader(path string) *YAMLConfigLoader {
	return &YAMLConfigLoader{path: path}
}

// Path returns the config file location.
func (l *YAMLConfigLoader) Path() string {
	return l.path
}

// Load reads and validates the config file. A missing file yields the
// default configuration.
func (l *YAMLConfigLoader) Load() (*domain.Config, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &domain.Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", filepath.Base(l.path), err)
	}

	cfg, err := l.parse(data)
	if err != nil {
		return nil, err
	}

	if cfg.LogFile != "" {
		cfg.LogFile = pathutil.ResolvePath(cfg.LogFile, filepath.Dir(l.path))
	}

	return cfg, nil
}

// Validate checks data against the schema and the semantic rules.
func (l *YAMLConfigLoader) Validate(data []byte) error {
	_, err := l.parse(data)
	return err
}

func (l *YAMLConfigLoader) parse(data []byte) (*domain.Config, error) {
	name := filepath.Base(l.path)

	// Validate against JSON schema first
	if err := validateSchema(data); err != nil {
		return nil, fmt.Errorf("validation error: %s: %w", name, err)
	}

	var cfg domain.Config
	// Use a decoder to get strict unmarshalling
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not parse %s: %w", name, err)
	}

	// Manual validation
	if cfg.Timezone != "" {
		if _, err := clock.LoadZone(cfg.Timezone); err != nil {
			return nil, fmt.Errorf("%w: timezone in %s: %v", domain.ErrValidation, name, err)
		}
	}

	patterns := []struct {
		key   string
		value string
	}{
		{"formats.date", cfg.Formats.Date},
		{"formats.time", cfg.Formats.Time},
		{"formats.timestamp", cfg.Formats.Timestamp},
	}
	for _, p := range patterns {
		if p.value == "" {
			continue
		}
		if _, err := pattern.Compile(p.value); err != nil {
			return nil, fmt.Errorf("%w: %s in %s: %v", domain.ErrValidation, p.key, name, err)
		}
	}

	return &cfg, nil
}
