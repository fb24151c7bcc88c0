package pyproject

// Defaults written into a freshly generated manifest.
const (
	InitialVersion = "0.0.1"
	BuildBackend   = "hatchling.build"
	RequiresPython = ">=3.8"
	ReadmeFile     = "README.md"
	FileName       = "pyproject.toml"
)

// BuildRequires lists the build-system requirements.
var BuildRequires = []string{"hatchling"}

// DefaultClassifiers are the trove classifiers every skeleton starts with.
var DefaultClassifiers = []string{
	"Programming Language :: Python :: 3",
	"License :: OSI Approved :: MIT License",
	"Operating System :: OS Independent",
}

// Pyproject is the subset of pyproject.toml the generator writes.
type Pyproject struct {
	BuildSystem BuildSystem `toml:"build-system"`
	Project     Project     `toml:"project"`
}

// BuildSystem is the [build-system] table.
type BuildSystem struct {
	Requires     []string `toml:"requires"`
	BuildBackend string   `toml:"build-backend"`
}

// Project is the [project] table.
type Project struct {
	Name           string   `toml:"name"`
	Version        string   `toml:"version"`
	Authors        []Author `toml:"authors"`
	Description    string   `toml:"description"`
	Readme         string   `toml:"readme"`
	RequiresPython string   `toml:"requires-python"`
	Classifiers    []string `toml:"classifiers"`
	Dependencies   []string `toml:"dependencies"`
	URLs           URLs     `toml:"urls"`
}

// Author is one entry of [project].authors. It encodes as an inline table.
type Author struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// URLs is the [project.urls] table.
type URLs struct {
	Homepage string `toml:"Homepage"`
	Issues   string `toml:"Issues"`
}

// Metadata is the caller-supplied part of a new manifest.
type Metadata struct {
	Name        string
	AuthorName  string
	AuthorEmail string
	Description string
	Homepage    string
	Issues      string
}

// New returns the manifest for a brand-new package.
func New(meta Metadata) *Pyproject {
	return &Pyproject{
		BuildSystem: BuildSystem{
			Requires:     append([]string(nil), BuildRequires...),
			BuildBackend: BuildBackend,
		},
		Project: Project{
			Name:           meta.Name,
			Version:        InitialVersion,
			Description:    meta.Description,
			Readme:         ReadmeFile,
			RequiresPython: RequiresPython,
			Classifiers:    append([]string(nil), DefaultClassifiers...),
			Dependencies:   []string{},
			Authors: []Author{
				{Name: meta.AuthorName, Email: meta.AuthorEmail},
			},
			URLs: URLs{
				Homepage: meta.Homepage,
				Issues:   meta.Issues,
			},
		},
	}
}
