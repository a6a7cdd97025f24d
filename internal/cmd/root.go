// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/moduledocs/modlist/internal/config"
	"github.com/moduledocs/modlist/internal/output"
	"github.com/moduledocs/modlist/internal/version"
)

// GlobalConfig holds CLI-wide configuration resolved during
// PersistentPreRunE. It is populated once at startup and passed explicitly
// into every sub-command constructor.
type GlobalConfig struct {
	// Config is the loaded configuration file content.
	Config *config.Config

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// Verbose mirrors the --verbose flag.
	Verbose bool
}

// NewRootCmd creates the root command for the modlist CLI.
func NewRootCmd() *cobra.Command {
	var (
		configFlag     string
		verboseFlag    bool
		timestampsFlag bool
	)

	gc := &GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "modlist",
		Short: "Module list documentation generator",
		Long: `modlist generates the docbook module-list section for a multi-module build.

It reads the build dependency graph from a YAML manifest or a Maven
reactor on disk, groups modules into the fixed documentation categories,
renders each category through a four-fragment template set, and writes the
assembled document to a single output file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, gc, configFlag, verboseFlag, timestampsFlag)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: MODLIST_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(NewGenerateCmd(gc))
	rootCmd.AddCommand(NewGraphCmd(gc))
	rootCmd.AddCommand(NewCategoriesCmd())
	rootCmd.AddCommand(NewTemplatesCmd(gc))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(c *cobra.Command, gc *GlobalConfig, configFlag string, verbose, timestamps bool) error {
	resolvedPath, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return err
	}

	cfg, err := config.NewLoader().Load(resolvedPath.Value)
	if err != nil {
		return err
	}

	gc.Config = cfg
	gc.ConfigPath = resolvedPath.Value
	gc.Verbose = verbose

	// Timestamps: flag (if explicitly set) > config > default (off)
	logCfg := output.LogConfig{Verbose: verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestamps)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	output.Debug("modlist started",
		"version", version.Get().Version,
		"config", gc.ConfigPath,
		"config_source", resolvedPath.Source,
	)

	return nil
}
