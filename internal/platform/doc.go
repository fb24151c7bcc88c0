// Package platform isolates the few places where the host operating system
// matters: the shell commands baked into generated helper scripts, Unix
// permission bits, and renaming a directory without replacing an existing
// one. The host is inspected once by HostShell; everything else takes the
// OS as an explicit argument.
package platform
