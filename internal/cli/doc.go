// Package cli defines the Cobra command tree for the pyskel CLI. The root
// command generates a skeleton from its single positional argument; the
// other files each register one subcommand (new, bump, config, version).
// Commands only resolve flags and config, then delegate to the scaffold,
// release and config packages.
package cli
