// Package pyproject builds, encodes, parses, and validates the pyproject.toml
// manifest written into every generated skeleton. Encoding goes through a
// structured TOML encoder so user-supplied metadata is always escaped, and
// validation checks the result against an embedded JSON Schema covering the
// fields the packaging toolchain and the upload helper rely on.
package pyproject
