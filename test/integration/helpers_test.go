//go:build integration

package integration_test

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // PYSKEL_HOME, holds config.yaml
	ProjectDir string // parent directory skeletons are generated into
}

// setupTestEnv creates isolated temp directories and points PYSKEL_HOME at
// one of them so no test reads or writes the real user config.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	t.Setenv("PYSKEL_HOME", env.HomeDir)
	return env
}

// requirePython returns the python3 interpreter path or skips the test.
func requirePython(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("python3")
	if err != nil {
		t.Skip("python3 not found in PATH")
	}
	return path
}

// runPython runs python with args inside dir and returns its stdout.
func runPython(t *testing.T, python, dir string, args ...string) string {
	t.Helper()
	out, err := tryPython(python, dir, args...)
	if err != nil {
		t.Fatalf("python %v: %v", args, err)
	}
	return out
}

// tryPython is runPython for scripts that are expected to fail. The error
// carries the script's stderr.
func tryPython(python, dir string, args ...string) (string, error) {
	cmd := exec.Command(python, args...)
	cmd.Dir = dir
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return string(out), fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return string(out), nil
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
