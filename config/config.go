package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mdwagner/lucky-template/internal/util"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	// DefaultDirMode is the permission mode for created directories
	DefaultDirMode = os.FileMode(0o755)

	// DefaultFileMode is the permission mode for created files
	DefaultFileMode = os.FileMode(0o644)

	// DefaultLogLvl is the log level used when no verbosity is configured
	DefaultLogLvl = util.InfoLevel
)

// User-facing log verbosity between 1 (error) and 5 (trace).
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// Config contains runtime configuration values for the write engine and
// logging.
type Config struct {
	DirMode  os.FileMode   // Permission mode for created directories (Default 0755)
	FileMode os.FileMode   // Permission mode for created files (Default 0644)
	LogLvl   util.LogLevel // Internal log level derived from the verbose setting
}

// ConfigOverride uses pointer fields to distinguish between unset and zero
// values when loading partial configuration. See [Config] for field
// descriptions.
//
// LogLvl holds the user-facing verbosity (1-5), not the internal log level.
type ConfigOverride struct {
	DirMode  *uint32 `yaml:"dir_mode,omitempty" json:"dir_mode,omitempty"`
	FileMode *uint32 `yaml:"file_mode,omitempty" json:"file_mode,omitempty"`
	LogLvl   *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		DirMode:  DefaultDirMode,
		FileMode: DefaultFileMode,
		LogLvl:   DefaultLogLvl,
	}
}

// NewConfig creates a Config from defaults with override applied on top.
// A nil override yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.DirMode != nil {
		c.DirMode = os.FileMode(*override.DirMode)
	}
	if override.FileMode != nil {
		c.FileMode = os.FileMode(*override.FileMode)
	}
	if override.LogLvl != nil {
		c.LogLvl = VerboseToLogLvl(*override.LogLvl)
	}
}

// VerboseToLogLvl converts the user-facing 1-5 verbosity to the internal log
// level, clamping out-of-range values.
func VerboseToLogLvl(verbose int) util.LogLevel {
	if verbose < ErrorVerbose {
		verbose = ErrorVerbose
	}
	if verbose > TraceVerbose {
		verbose = TraceVerbose
	}
	lvls := [5]util.LogLevel{
		util.ErrorLevel,
		util.WarnLevel,
		util.InfoLevel,
		util.DebugLevel,
		util.TraceLevel,
	}
	return lvls[verbose-1]
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
