package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pyskel-dev/pyskel/internal/config"
	"github.com/pyskel-dev/pyskel/internal/pyproject"
	"github.com/pyskel-dev/pyskel/internal/release"
	"github.com/spf13/viper"
)

// isolate gives the test its own config home and working directory, and
// clears config values that could leak in from the environment.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("PYSKEL_HOME", home)
	for _, key := range config.Keys() {
		t.Setenv("PYSKEL_"+strings.ToUpper(key), "")
	}
	t.Chdir(work)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home, work
}

// resetFlags restores every package-level flag variable to its default so
// executions of the shared command tree do not see each other's values.
func resetFlags() {
	verbose = false
	genPath, genAuthor, genEmail, genDescription = "", "", "", ""
	genHomepage, genIssues, genPython = "", "", ""
	bumpFile = pyproject.FileName
	bumpPart = string(release.PartPatch)
	bumpDryRun = false
	versionShort, versionJSON = false, false
}

// execute runs the root command with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("output does not contain %q\n--- output ---\n%s", substr, content)
	}
}
