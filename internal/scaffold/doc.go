// Package scaffold generates new PyPI project skeletons. It powers the root
// "pyskel <module-name>" command, producing the src/ layout, marker files,
// test stub, manifest, readme, license, gitignore, and the version-bump and
// upload helper script.
//
// Generation is staged: the whole tree is written to a hidden sibling
// directory and renamed into place at the end, so a failure never leaves a
// half-built project behind.
package scaffold
