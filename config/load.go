package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/cligen/errors"
)

// Source records where a configuration value came from.
type Source string

const (
	SourceDefault     Source = "default"
	SourceUser        Source = "user"        // ~/.cligen/config.toml
	SourceProject     Source = "project"     // cligen.toml found walking up
	SourceFile        Source = "file"        // --config
	SourceEnvironment Source = "environment" // CLIGEN_* env vars
)

// SourceInfo tracks where a configuration value originated
type SourceInfo struct {
	Source Source
	Path   string // file path or environment variable name
}

// Loaded is a configuration together with the viper instance and sources
// it was built from.
type Loaded struct {
	Config  *Config
	Viper   *viper.Viper
	Sources map[string]SourceInfo
	Files   []string // config files merged, lowest precedence first
}

// Options selects where Load looks for configuration.
type Options struct {
	// Dir is where the project config search starts. Empty uses the working directory.
	Dir string

	// Home is the user's home directory. Empty uses os.UserHomeDir.
	Home string

	// File, when set, replaces the user and project lookup.
	File string
}

// Load reads configuration in precedence order:
// defaults < user config < project config (or File) < environment.
func Load(opts Options) (*Loaded, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	sources := make(map[string]SourceInfo)
	files, err := mergeConfigFiles(v, opts, sources)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &Loaded{Config: &cfg, Viper: v, Sources: sources, Files: files}, nil
}

// LoadFromFile loads configuration from a specific file path without
// environment variables.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}
	return &cfg, nil
}

// FindProjectConfig walks up from dir looking for cligen.toml.
// Returns the path to the first file found, or "" if none exists.
func FindProjectConfig(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, ProjectConfigName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// UserConfigPath returns ~/.cligen/config.toml for home.
func UserConfigPath(home string) string {
	return filepath.Join(home, UserConfigDir, UserConfigName)
}

// mergeConfigFiles merges each existing config file into v, recording the
// source of every key it sets.
func mergeConfigFiles(v *viper.Viper, opts Options, sources map[string]SourceInfo) ([]string, error) {
	type layer struct {
		path   string
		source Source
	}
	var layers []layer

	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return nil, errors.WithHint(
				errors.NewNotFoundError("config file %s", opts.File),
				"run `cligen config init` to create one")
		}
		layers = append(layers, layer{opts.File, SourceFile})
	} else {
		home := opts.Home
		if home == "" {
			home, _ = os.UserHomeDir()
		}
		if home != "" {
			layers = append(layers, layer{UserConfigPath(home), SourceUser})
		}

		dir := opts.Dir
		if dir == "" {
			dir, _ = os.Getwd()
		}
		if project := FindProjectConfig(dir); project != "" {
			layers = append(layers, layer{project, SourceProject})
		}
	}

	var merged []string
	for _, l := range layers {
		if _, err := os.Stat(l.path); err != nil {
			continue
		}

		tmp := viper.New()
		tmp.SetConfigFile(l.path)
		tmp.SetConfigType("toml")
		if err := tmp.ReadInConfig(); err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "failed to read config file %s", l.path), errors.ErrInvalidInput)
		}

		// MergeConfigMap keeps file values below environment variables.
		if err := v.MergeConfigMap(tmp.AllSettings()); err != nil {
			return nil, errors.Wrapf(err, "failed to merge config file %s", l.path)
		}
		for _, key := range tmp.AllKeys() {
			sources[key] = SourceInfo{Source: l.source, Path: l.path}
		}
		merged = append(merged, l.path)
	}
	return merged, nil
}

// EnvKey returns the environment variable that overrides key.
func EnvKey(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
