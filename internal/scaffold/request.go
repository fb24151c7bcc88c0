package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pyskel-dev/pyskel/internal/platform"
)

// Placeholders written when a metadata field is omitted. They are meant to
// be found and replaced by hand.
const (
	PlaceholderAuthorName  = "YOUR NAME"
	PlaceholderAuthorEmail = "YOUR EMAIL"
	PlaceholderDescription = "SOME DESCRIPTION"
	PlaceholderHomepage    = "YOUR HOMEPAGE LINK eg. https://github.com/github_username/project_name"
	PlaceholderIssues      = "YOUR ISSUES LINK eg. https://github.com/github_username/project_name/issues"
)

// ErrModuleNameRequired is returned when Request.ModuleName is empty.
var ErrModuleNameRequired = errors.New("module name is required")

// Request is the input to Generate. Only ModuleName is required.
type Request struct {
	ModuleName  string // used verbatim as directory name and import name
	TargetPath  string // parent directory; defaults to the working directory
	AuthorName  string
	AuthorEmail string
	Description string
	Homepage    string
	IssuesLink  string

	// Shell holds the command literals baked into upload.py. The zero value
	// resolves to platform.HostShell().
	Shell platform.Shell
}

// withDefaults fills omitted fields with placeholders and resolves the
// target path and shell.
func (r Request) withDefaults() (Request, error) {
	if r.ModuleName == "" {
		return r, ErrModuleNameRequired
	}
	if r.TargetPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return r, fmt.Errorf("getting current directory: %w", err)
		}
		r.TargetPath = wd
	}
	if r.AuthorName == "" {
		r.AuthorName = PlaceholderAuthorName
	}
	if r.AuthorEmail == "" {
		r.AuthorEmail = PlaceholderAuthorEmail
	}
	if r.Description == "" {
		r.Description = PlaceholderDescription
	}
	if r.Homepage == "" {
		r.Homepage = PlaceholderHomepage
	}
	if r.IssuesLink == "" {
		r.IssuesLink = PlaceholderIssues
	}
	if r.Shell == (platform.Shell{}) {
		r.Shell = platform.HostShell()
	}
	return r, nil
}

// Paths are the four directories of a skeleton, parent before child.
type Paths struct {
	Base  string // <target>/<module>
	Src   string // <base>/src
	Code  string // <base>/src/<module>
	Tests string // <base>/src/tests
}

// NewPaths derives the skeleton directories for moduleName under targetPath.
func NewPaths(targetPath, moduleName string) Paths {
	return pathsUnder(filepath.Join(targetPath, moduleName), moduleName)
}

func pathsUnder(base, moduleName string) Paths {
	src := filepath.Join(base, "src")
	return Paths{
		Base:  base,
		Src:   src,
		Code:  filepath.Join(src, moduleName),
		Tests: filepath.Join(src, "tests"),
	}
}

// Ordered returns the directories in creation order.
func (p Paths) Ordered() []string {
	return []string{p.Base, p.Src, p.Code, p.Tests}
}
