package platform

import "runtime"

// Shell holds the OS-specific command literals written into generated
// helper scripts. They are chosen at generation time, not when the script runs.
type Shell struct {
	OS         string // GOOS the literals were chosen for
	Python     string // interpreter command, e.g. "python3"
	RemoveDist string // command that deletes the dist/ build output
}

// ShellFor returns the command literals for the given GOOS value.
func ShellFor(goos string) Shell {
	if goos == "windows" {
		return Shell{
			OS:         goos,
			Python:     "python",
			RemoveDist: "rmdir /s /q dist",
		}
	}
	return Shell{
		OS:         goos,
		Python:     "python3",
		RemoveDist: "rm -rf ./dist",
	}
}

// HostShell returns the command literals for the running OS.
func HostShell() Shell {
	return ShellFor(runtime.GOOS)
}

// WithPython returns a copy of s using python as the interpreter command.
// An empty python leaves s unchanged.
func (s Shell) WithPython(python string) Shell {
	if python != "" {
		s.Python = python
	}
	return s
}
