// Package config provides configuration loading and management.
package config

// TemplatesConfig names the four template files of a set.
// All four must be set together; partial sets are a setup error.
type TemplatesConfig struct {
	// Section is the path to the document wrapper template.
	// Env: MODLIST_TEMPLATE_SECTION
	Section string `mapstructure:"section"`

	// TableHeader is the path to the per-category header template.
	// Env: MODLIST_TEMPLATE_TABLE_HEADER
	TableHeader string `mapstructure:"tableHeader"`

	// TableRow is the path to the per-module row template.
	// Env: MODLIST_TEMPLATE_TABLE_ROW
	TableRow string `mapstructure:"tableRow"`

	// TableFooter is the path to the per-category footer template.
	// Env: MODLIST_TEMPLATE_TABLE_FOOTER
	TableFooter string `mapstructure:"tableFooter"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps"`
}

// Config represents the modlist CLI configuration.
// Loaded from ~/.modlist/config.yaml.
type Config struct {
	// OutputFile is the path the generated document is written to.
	// Env: MODLIST_OUTPUT, Default: "modules.xml"
	OutputFile string `mapstructure:"outputFile"`

	// OutputUnmatched renders unmatched modules under an "Other"
	// category instead of only warning about them.
	// Default: false
	OutputUnmatched bool `mapstructure:"outputUnmatched"`

	// Templates names the template files. Empty means the embedded
	// docbook defaults.
	Templates TemplatesConfig `mapstructure:"templates"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log"`
}

// DefaultOutputFile is the output path used when nothing else is configured.
const DefaultOutputFile = "modules.xml"

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		OutputFile: DefaultOutputFile,
	}
}
