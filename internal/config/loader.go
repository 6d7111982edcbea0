package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	apperrors "note-taker/internal/errors"
)

const (
	// ConfigPathEnv names an explicit configuration file, bypassing the
	// search next to the executable.
	ConfigPathEnv = "NOTE_CONFIG"

	// BaseName is the configuration file name without extension.
	BaseName = "appsettings"
)

// searchExtensions are tried in order in the base directory.
var searchExtensions = []string{".json", ".yaml", ".yml"}

// Loader handles loading configuration from multiple sources
type Loader struct {
	baseDir string
}

// NewLoader creates a loader that looks for the configuration file in the
// directory of the running executable.
func NewLoader() *Loader {
	return &Loader{baseDir: executableDir()}
}

// NewLoaderWithBaseDir creates a loader that looks for the configuration
// file in dir.
func NewLoaderWithBaseDir(dir string) *Loader {
	return &Loader{baseDir: dir}
}

// Load loads configuration using the cascading strategy:
// 1. Environment variables
// 2. Configuration file (NOTE_CONFIG, or appsettings.{json,yaml,yml} in the base directory)
// A value from an earlier source wins over a later one; unset keys stay empty.
func (l *Loader) Load() (Config, error) {
	path, err := l.ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return newConfigBuilder().
		withEnv().
		withFile(path).
		build()
}

// ConfigPath returns the configuration file that Load will read, or "" when
// there is none. An explicit NOTE_CONFIG path must exist.
func (l *Loader) ConfigPath() (string, error) {
	if explicit := os.Getenv(ConfigPathEnv); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", apperrors.NewConfigError(explicit, err)
		}
		return explicit, nil
	}

	if l.baseDir == "" {
		return "", nil
	}
	for _, ext := range searchExtensions {
		candidate := filepath.Join(l.baseDir, BaseName+ext)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", nil
}

type configBuilder struct {
	configs []*Config
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 2),
	}
}

func (b *configBuilder) build() (Config, error) {
	if b.err != nil {
		return Config{}, b.err
	}

	merged := Config{}
	for _, cfg := range b.configs {
		if err := mergo.Merge(&merged, cfg); err != nil {
			return Config{}, fmt.Errorf("error merging configs: %w", err)
		}
	}
	return merged, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := env.Parse(envCfg); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error getting env configs: %w", err))
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFile(path string) *configBuilder {
	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, apperrors.NewConfigError(path, err))
		return b
	}

	b.configs = append(b.configs, fileCfg)
	return b
}

// parseFile decodes a JSON or YAML configuration file, chosen by extension.
// An empty file is an empty configuration.
func parseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := &Config{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error decoding json config: %w", err)
		}
	}
	return cfg, nil
}

// executableDir returns the directory holding the running binary, with
// symlinks resolved. It returns "" when the location cannot be determined.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
