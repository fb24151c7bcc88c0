package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/pyskel-dev/pyskel/internal/config"
	"github.com/pyskel-dev/pyskel/internal/output"
	"github.com/pyskel-dev/pyskel/internal/platform"
	"github.com/pyskel-dev/pyskel/internal/scaffold"
	"github.com/spf13/cobra"
)

// Generation flags shared by the root and new commands.
var (
	genPath        string
	genAuthor      string
	genEmail       string
	genDescription string
	genHomepage    string
	genIssues      string
	genPython      string
)

func addGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&genPath, "path", "", "Parent directory for the skeleton (default: current directory)")
	f.StringVar(&genAuthor, "author", "", "Author name")
	f.StringVar(&genEmail, "email", "", "Author email")
	f.StringVar(&genDescription, "description", "", "One-line project description")
	f.StringVar(&genHomepage, "homepage", "", "Project homepage URL")
	f.StringVar(&genIssues, "issues", "", "Issue tracker URL")
	f.StringVar(&genPython, "python", "", "Interpreter command written into upload.py (default: python3, or python on Windows)")
}

// resolve picks the flag value, then the configured value. An empty result
// leaves the field to the generator's placeholder.
func resolve(flagValue, key string) string {
	if flagValue != "" {
		return flagValue
	}
	return config.Get(key)
}

func runGenerate(cmd *cobra.Command, moduleName string) error {
	req := scaffold.Request{
		ModuleName:  moduleName,
		TargetPath:  genPath,
		AuthorName:  resolve(genAuthor, config.KeyAuthorName),
		AuthorEmail: resolve(genEmail, config.KeyAuthorEmail),
		Description: resolve(genDescription, config.KeyDescription),
		Homepage:    resolve(genHomepage, config.KeyHomepage),
		IssuesLink:  resolve(genIssues, config.KeyIssues),
		Shell:       platform.HostShell().WithPython(resolve(genPython, config.KeyPython)),
	}

	output.Debug("generating skeleton", "module", moduleName, "shell", req.Shell.OS, "python", req.Shell.Python)

	result, err := scaffold.Generate(req)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), result)
	return nil
}

func printResult(w io.Writer, result *scaffold.Result) {
	fmt.Fprintf(w, "%s successfully created PyPI project skeleton for %s\n",
		output.Checkmark(), output.StyleNoun.Render(result.ModuleName))
	fmt.Fprintf(w, "  %s\n", output.StyleDim.Render(result.BaseDir))
	for _, d := range result.Dirs {
		if d == "." {
			continue
		}
		fmt.Fprintf(w, "    %s\n", output.StyleDim.Render(d+string(filepath.Separator)))
	}
	for _, f := range result.Files {
		fmt.Fprintf(w, "    %s\n", output.StyleDim.Render(f))
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  %s\n", output.StyleWarning.Render("- "+warning))
		}
	}
}
