package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/vista/internal/ocrprompt"
	"github.com/jackzampolin/vista/internal/output"
)

type formatInfo struct {
	Name        ocrprompt.Format `json:"name" yaml:"name"`
	Instruction string           `json:"instruction" yaml:"instruction"`
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported output formats",
	Long: `List the output formats and the instruction each one adds to the prompt.

Any other --format value is accepted, but the prompt will contain
"Invalid format type specified." in place of the format instruction.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var infos []formatInfo
		for _, f := range ocrprompt.Formats() {
			text, _ := ocrprompt.Instruction(f)
			infos = append(infos, formatInfo{Name: f, Instruction: text})
		}
		return output.To(cmd.OutOrStdout(), outFormat, infos)
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
