package cli

import (
	"fmt"

	"github.com/pyskel-dev/pyskel/internal/output"
	"github.com/pyskel-dev/pyskel/internal/pyproject"
	"github.com/pyskel-dev/pyskel/internal/release"
	"github.com/spf13/cobra"
)

var (
	bumpFile   string
	bumpPart   string
	bumpDryRun bool
)

func init() {
	bumpCmd.Flags().StringVar(&bumpFile, "file", pyproject.FileName, "Manifest to edit")
	bumpCmd.Flags().StringVar(&bumpPart, "part", string(release.PartPatch), "Version part to increment: major, minor, or patch")
	bumpCmd.Flags().BoolVar(&bumpDryRun, "dry-run", false, "Print the new version without writing the file")
	rootCmd.AddCommand(bumpCmd)
}

var bumpCmd = &cobra.Command{
	Use:   "bump",
	Short: "Increment the [project] version in pyproject.toml",
	Long: `Increment the version = "X.Y.Z" assignment in the [project] table of
pyproject.toml. Every other line, including other occurrences of the old
version string, is left as it was.

PyPI rejects uploads of a version that already exists, so run this before
every release. The generated upload.py performs the same patch bump.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		part, err := release.ParsePart(bumpPart)
		if err != nil {
			return err
		}

		result, err := release.BumpFile(bumpFile, part, bumpDryRun)
		if err != nil {
			return err
		}

		verb := "bumped"
		if bumpDryRun {
			verb = "would bump"
		}
		output.Debug("bump", "file", bumpFile, "part", part, "dry_run", bumpDryRun)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s -> %s\n",
			verb, output.StyleNoun.Render(bumpFile), result.Old, output.StyleNoun.Render(result.New))
		return nil
	},
}
