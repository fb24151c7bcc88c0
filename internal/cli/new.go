package cli

import (
	"github.com/pyskel-dev/pyskel/internal/branding"
	"github.com/spf13/cobra"
)

func init() {
	addGenerateFlags(newCmd)
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <module-name>",
	Short: "Create a PyPI project skeleton",
	Long: `Create a PyPI project skeleton. Identical to the root command, but also
accepts module names that collide with a subcommand.

Example:
  ` + branding.CLIName() + ` new config`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args[0])
	},
}
