package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/vista/internal/config"
	"github.com/jackzampolin/vista/internal/home"
	"github.com/jackzampolin/vista/internal/output"
	"github.com/jackzampolin/vista/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string

	// outFormat is outputFormat parsed by the root pre-run hook
	outFormat = output.FormatYAML
)

var rootCmd = &cobra.Command{
	Use:   "vista",
	Short: "Build system prompts for LLM-powered OCR",
	Long: `Vista assembles the system prompt that steers a vision-language model
when it transcribes an image.

The prompt is built from a fixed set of options:
  - Output format (plain text, HTML, JSON, RTF, XML, LaTeX)
  - Layout handling (pretty or original formatting)
  - Language detection and translation
  - LaTeX math, error correction, low-confidence markers
  - Content grouping, alt text and annotation extraction

Options come from config.yaml, VISTA_* environment variables and flags,
in increasing order of precedence.`,
	Version:       version.GitRelease,
	SilenceUsage:  true,
	SilenceErrors: true, // main prints them styled
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.vista/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "vista home directory (default: ~/.vista)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format for structured results: yaml or json",
	)

	// Parse output format before any command runs
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		f, err := output.ParseFormat(outputFormat)
		if err != nil {
			return err
		}
		outFormat = f
		return nil
	}

	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads config from --config, ./config.yaml or the home directory.
func loadConfig() (*config.Manager, error) {
	h, err := home.New(homeDir)
	if err != nil {
		return nil, err
	}
	return config.NewManager(cfgFile, ".", h.Path())
}
