// Package release implements the version bump that the generated upload
// helper performs before publishing: locate the version assignment in the
// [project] table of pyproject.toml, increment it, and rewrite only that
// assignment. It also defines the publish command sequence baked into the
// helper script so the Go side and the generated script stay in agreement.
package release
