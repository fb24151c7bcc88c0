package cli

import (
	"fmt"

	"github.com/pyskel-dev/pyskel/internal/branding"
	"github.com/pyskel-dev/pyskel/internal/config"
	"github.com/pyskel-dev/pyskel/internal/output"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every directory and file as it is created")
	addGenerateFlags(rootCmd)
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <module-name>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a ready-to-publish PyPI project skeleton: a src/ layout,
pyproject.toml, README, MIT license, a unittest stub and an upload.py helper
that bumps the version and pushes the build to PyPI.

Author details and links fall back to '` + branding.CLIName() + ` config' values, then to
placeholders you can edit later.`,
	Example: `  ` + branding.CLIName() + ` mymodulename
  ` + branding.CLIName() + ` mymodulename --author "Ada Lovelace" --email ada@example.com
  ` + branding.CLIName() + ` new bump --path ~/code`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetupLogging(verbose)
		config.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), usageHint())
			return nil
		}
		return runGenerate(cmd, args[0])
	},
}

func usageHint() string {
	return fmt.Sprintf("please enter a module_name eg. %s mymodulename", branding.CLIName())
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		output.Error(err.Error())
		return err
	}
	return nil
}
