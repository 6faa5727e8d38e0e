package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/vista/internal/config"
	"github.com/jackzampolin/vista/internal/home"
	"github.com/jackzampolin/vista/internal/ocrprompt"
	"github.com/jackzampolin/vista/internal/output"
	"github.com/jackzampolin/vista/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage vista configuration.

Configuration is read from --config, ./config.yaml or ~/.vista/config.yaml,
in that order. Every key can be overridden with a VISTA_ environment
variable: prompt.format_type becomes VISTA_PROMPT_FORMAT_TYPE.

Examples:
  vista config init              # Write ~/.vista/config.yaml
  vista config show -o json      # Effective configuration
  vista config validate          # Check the config file
  vista config describe          # All keys with defaults`,
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Long: `Write a default config file.

Without a path the file is written to the vista home directory.
An existing file is left alone unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			path   string
			exists bool
		)
		if len(args) == 1 {
			path = args[0]
			_, err := os.Stat(path)
			exists = err == nil
		} else {
			h, err := home.New(homeDir)
			if err != nil {
				return err
			}
			if err := h.EnsureExists(); err != nil {
				return err
			}
			path = h.ConfigPath()
			exists = h.ConfigExists()
		}

		if exists && !configInitForce {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}

		ui.PrintOK(cmd.OutOrStdout(), "wrote "+path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := loadConfig()
		if err != nil {
			return err
		}

		if used := mgr.ConfigFileUsed(); used != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "# from %s\n", used)
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), "# no config file found (defaults and environment)")
		}
		return output.To(cmd.OutOrStdout(), outFormat, mgr.Get())
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a config file",
	Long: `Validate a config file against the config schema, then report option
combinations that are accepted but probably unintended.

Without a path the file that would be loaded is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			mgr, err := loadConfig()
			if err != nil {
				return err
			}
			path = mgr.ConfigFileUsed()
		}
		if path == "" {
			return fmt.Errorf("no config file found; run 'vista config init' first")
		}

		if err := config.ValidateFile(path); err != nil {
			return err
		}

		mgr, err := config.NewManager(path)
		if err != nil {
			return err
		}
		cfg := mgr.Get()

		warnings := ocrprompt.Lint(cfg.PromptOptions())
		ui.PrintWarnings(cmd.ErrOrStderr(), warnings)

		if _, err := cfg.Log.SlogLevel(); err != nil {
			return err
		}

		ui.PrintOK(cmd.OutOrStdout(), fmt.Sprintf("%s is valid (%d warnings)", path, len(warnings)))
		return nil
	},
}

var configDescribeCmd = &cobra.Command{
	Use:   "describe [key]",
	Short: "Describe config keys and their defaults",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return output.To(cmd.OutOrStdout(), outFormat, config.DefaultEntries())
		}
		entry, err := config.LookupDefault(args[0])
		if err != nil {
			return err
		}
		return output.To(cmd.OutOrStdout(), outFormat, entry)
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configDescribeCmd)
	rootCmd.AddCommand(configCmd)
}
