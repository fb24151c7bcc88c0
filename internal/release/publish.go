package release

import "github.com/pyskel-dev/pyskel/internal/platform"

// PublishCommands returns the shell commands the upload helper runs after
// bumping the version: clear old build output, build, upload.
func PublishCommands(shell platform.Shell) []string {
	return []string{
		shell.RemoveDist,
		shell.Python + " -m build",
		shell.Python + " -m twine upload dist/*",
	}
}
