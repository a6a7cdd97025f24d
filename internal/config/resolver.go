package config

import (
	"os"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is one configuration value together with its provenance.
type ResolvedValue struct {
	// Value is the resolved value.
	Value string
	// Source indicates where the value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveStringOptions configures one string resolution.
type ResolveStringOptions struct {
	// FlagValue is the flag value (empty if not set).
	FlagValue string
	// EnvVar is the environment variable to consult (empty to skip).
	EnvVar string
	// ConfigValue is the value from the config file (empty if not set).
	ConfigValue string
	// Default is the built-in default (empty for none).
	Default string
}

// ResolveString resolves a string value using precedence:
// (1) flag, (2) environment variable, (3) config file, (4) default.
func ResolveString(opts ResolveStringOptions) ResolvedValue {
	result := ResolvedValue{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := ""
	if opts.EnvVar != "" {
		envValue = os.Getenv(opts.EnvVar)
	}

	switch {
	case opts.FlagValue != "":
		result.Value = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		if opts.ConfigValue != "" {
			result.Shadowed[SourceConfig] = opts.ConfigValue
		}
		if opts.Default != "" {
			result.Shadowed[SourceDefault] = opts.Default
		}
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		if opts.ConfigValue != "" {
			result.Shadowed[SourceConfig] = opts.ConfigValue
		}
		if opts.Default != "" {
			result.Shadowed[SourceDefault] = opts.Default
		}
	case opts.ConfigValue != "":
		result.Value = opts.ConfigValue
		result.Source = SourceConfig
		if opts.Default != "" {
			result.Shadowed[SourceDefault] = opts.Default
		}
	case opts.Default != "":
		result.Value = opts.Default
		result.Source = SourceDefault
	}

	return result
}

// ResolveOutputFile resolves the output file path using precedence:
// (1) --output flag, (2) MODLIST_OUTPUT env, (3) config outputFile,
// (4) the built-in default.
func ResolveOutputFile(flagValue string, cfg *Config) ResolvedValue {
	configValue := ""
	if cfg != nil && cfg.OutputFile != DefaultOutputFile {
		configValue = cfg.OutputFile
	}

	return ResolveString(ResolveStringOptions{
		FlagValue:   flagValue,
		EnvVar:      "MODLIST_OUTPUT",
		ConfigValue: configValue,
		Default:     DefaultOutputFile,
	})
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) MODLIST_CONFIG env, (3) ~/.modlist/config.yaml.
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}

	return ResolveString(ResolveStringOptions{
		FlagValue: flagValue,
		EnvVar:    "MODLIST_CONFIG",
		Default:   paths.ConfigFile,
	}), nil
}
