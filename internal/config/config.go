package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config represents the nitpick configuration.
type Config struct {
	SourceRef string   `json:"sourceRef"`
	TargetRef string   `json:"targetRef"`
	Format    string   `json:"format"`
	FailOn    string   `json:"failOn"`
	Include   []string `json:"include"`
	Exclude   []string `json:"exclude"`
	RulesFile string   `json:"rulesFile,omitempty"`
	Workers   int      `json:"workers"`
	Verbose   bool     `json:"verbose,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		SourceRef: "HEAD",
		TargetRef: "HEAD",
		Format:    "summary",
		FailOn:    "none",
		Include:   []string{"**/*"},
		Exclude: []string{
			"vendor/**",
			"target/**",
			"node_modules/**",
			"**/*.lock",
			"**/*.log",
		},
	}
}

// ConfigDir returns the platform-appropriate config directory for nitpick.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "nitpick"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "nitpick"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "nitpick"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "nitpick"), nil
	default:
		return filepath.Join(home, ".config", "nitpick"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.SourceRef != "" {
		dst.SourceRef = src.SourceRef
	}
	if src.TargetRef != "" {
		dst.TargetRef = src.TargetRef
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.FailOn != "" {
		dst.FailOn = src.FailOn
	}
	if len(src.Include) > 0 {
		dst.Include = src.Include
	}
	if len(src.Exclude) > 0 {
		dst.Exclude = src.Exclude
	}
	if src.RulesFile != "" {
		dst.RulesFile = src.RulesFile
	}
	if src.Workers > 0 {
		dst.Workers = src.Workers
	}
	dst.Verbose = src.Verbose || dst.Verbose
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("NITPICK_SOURCE"); v != "" {
		cfg.SourceRef = v
	}
	if v := os.Getenv("NITPICK_TARGET"); v != "" {
		cfg.TargetRef = v
	}
	if v := os.Getenv("NITPICK_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("NITPICK_FAIL_ON"); v != "" {
		cfg.FailOn = v
	}
	if v := os.Getenv("NITPICK_RULES_FILE"); v != "" {
		cfg.RulesFile = v
	}
	if v := os.Getenv("NITPICK_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Workers = n
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["source"]; ok && v != "" {
		cfg.SourceRef = v
	}
	if v, ok := overrides["target"]; ok && v != "" {
		cfg.TargetRef = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["failOn"]; ok && v != "" {
		cfg.FailOn = v
	}
	if v, ok := overrides["rulesFile"]; ok && v != "" {
		cfg.RulesFile = v
	}
	if v, ok := overrides["workers"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Workers = n
		}
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "sourceRef":
		cfg.SourceRef = value
	case "targetRef":
		cfg.TargetRef = value
	case "format":
		cfg.Format = value
	case "failOn":
		cfg.FailOn = value
	case "rulesFile":
		cfg.RulesFile = value
	case "workers":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("workers must be an integer: %w", err)
		}
		cfg.Workers = n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
