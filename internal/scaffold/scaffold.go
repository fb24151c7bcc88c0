package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/pyskel-dev/pyskel/internal/output"
	"github.com/pyskel-dev/pyskel/internal/platform"
	"github.com/pyskel-dev/pyskel/internal/pyproject"
	"github.com/pyskel-dev/pyskel/internal/release"
)

//go:embed scaffolds
var scaffoldFS embed.FS

const (
	templatesDir = "scaffolds/pypi"

	// stagePrefix names the hidden sibling directory a skeleton is built in.
	stagePrefix = ".pyskel-stage-"
)

// renameStage moves a finished stage directory into place.
var renameStage = platform.RenameNoReplace

// ScaffoldData holds all template variables available to scaffold templates.
type ScaffoldData struct {
	ModuleName      string
	AuthorName      string
	AuthorEmail     string
	Description     string
	Homepage        string
	IssuesLink      string
	ManifestFile    string   // "pyproject.toml"
	ShellOS         string   // GOOS the upload commands were chosen for
	PublishCommands []string // commands upload.py runs after the bump
	Year            int
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	ModuleName string
	BaseDir    string
	Dirs       []string // relative to BaseDir, creation order
	Files      []string // relative to BaseDir, creation order
	Warnings   []string
}

// skeletonFile is one entry of the generated file set. A nil render writes
// an empty marker file.
type skeletonFile struct {
	path   string
	mode   os.FileMode
	render func(*ScaffoldData) ([]byte, error)
}

func newScaffoldData(req Request) *ScaffoldData {
	return &ScaffoldData{
		ModuleName:      req.ModuleName,
		AuthorName:      req.AuthorName,
		AuthorEmail:     req.AuthorEmail,
		Description:     req.Description,
		Homepage:        req.Homepage,
		IssuesLink:      req.IssuesLink,
		ManifestFile:    pyproject.FileName,
		ShellOS:         req.Shell.OS,
		PublishCommands: release.PublishCommands(req.Shell),
		Year:            time.Now().Year(),
	}
}

// skeletonFiles lists the generated files in write order, relative to the
// skeleton base directory.
func skeletonFiles(moduleName string) []skeletonFile {
	return []skeletonFile{
		{path: filepath.Join("src", "__init__.py")},
		{path: filepath.Join("src", moduleName, "__init__.py")},
		{path: filepath.Join("src", "tests", "main.py"), render: fromTemplate("tests_main.py.tmpl")},
		{path: ".gitignore", render: fromTemplate("gitignore.tmpl")},
		{path: "LICENSE", render: fromTemplate("LICENSE.tmpl")},
		{path: pyproject.FileName, render: renderManifest},
		{path: "README.md", render: fromTemplate("README.md.tmpl")},
		{path: "upload.py", mode: platform.ScriptPerm, render: fromTemplate("upload.py.tmpl")},
		{path: "test.py", render: fromTemplate("test.py.tmpl")},
	}
}

// Generate creates a new skeleton for req.ModuleName under req.TargetPath.
// It fails with an fs.ErrExist path error when the destination already
// exists; nothing is merged or overwritten.
func Generate(req Request) (*Result, error) {
	req, err := req.withDefaults()
	if err != nil {
		return nil, err
	}

	final := NewPaths(req.TargetPath, req.ModuleName)

	// Refuse to touch an existing destination.
	if _, err := os.Lstat(final.Base); err == nil {
		return nil, &fs.PathError{Op: "mkdir", Path: final.Base, Err: fs.ErrExist}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("checking %s: %w", final.Base, err)
	}

	stageDir, err := os.MkdirTemp(req.TargetPath, stagePrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = os.RemoveAll(stageDir)
		}
	}()

	staged := pathsUnder(stageDir, req.ModuleName)
	output.Debug("staging skeleton", "module", req.ModuleName, "dir", stageDir)

	result := &Result{
		ModuleName: req.ModuleName,
		BaseDir:    final.Base,
	}

	// MkdirTemp creates the base with 0700; widen it to match its children.
	if err := platform.Chmod(staged.Base, platform.DirPerm); err != nil {
		return nil, fmt.Errorf("setting permissions on %s: %w", staged.Base, err)
	}
	result.Dirs = append(result.Dirs, ".")

	for _, dir := range staged.Ordered()[1:] {
		if err := os.Mkdir(dir, platform.DirPerm); err != nil {
			return nil, fmt.Errorf("creating directory: %w", err)
		}
		rel, _ := filepath.Rel(staged.Base, dir)
		result.Dirs = append(result.Dirs, rel)
		output.Debug("created directory", "path", rel)
	}

	data := newScaffoldData(req)
	for _, f := range skeletonFiles(req.ModuleName) {
		if err := writeSkeletonFile(staged.Base, f, data); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, f.path)
		output.Debug("created file", "path", f.path)
	}

	result.Warnings = validateManifest(filepath.Join(staged.Base, pyproject.FileName))

	// The destination may have appeared since the check above.
	if err := renameStage(staged.Base, final.Base); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, &fs.PathError{Op: "mkdir", Path: final.Base, Err: fs.ErrExist}
		}
		return nil, fmt.Errorf("moving skeleton into place: %w", err)
	}
	committed = true

	return result, nil
}

func writeSkeletonFile(base string, f skeletonFile, data *ScaffoldData) error {
	var content []byte
	if f.render != nil {
		rendered, err := f.render(data)
		if err != nil {
			return err
		}
		content = rendered
	}

	outPath := filepath.Join(base, f.path)
	if err := os.WriteFile(outPath, content, platform.FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", f.path, err)
	}

	// WriteFile is subject to umask; set executable bits explicitly.
	if f.mode != 0 {
		if err := platform.Chmod(outPath, f.mode); err != nil {
			return fmt.Errorf("setting permissions on %s: %w", f.path, err)
		}
	}
	return nil
}

// fromTemplate returns a renderer for an embedded template file.
func fromTemplate(name string) func(*ScaffoldData) ([]byte, error) {
	return func(data *ScaffoldData) ([]byte, error) {
		return renderTemplate(name, data)
	}
}

func renderTemplate(name string, data *ScaffoldData) ([]byte, error) {
	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		ParseFS(scaffoldFS, templatesDir+"/"+name)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func renderManifest(data *ScaffoldData) ([]byte, error) {
	return pyproject.Encode(pyproject.New(pyproject.Metadata{
		Name:        data.ModuleName,
		AuthorName:  data.AuthorName,
		AuthorEmail: data.AuthorEmail,
		Description: data.Description,
		Homepage:    data.Homepage,
		Issues:      data.IssuesLink,
	}))
}

// validateManifest checks the generated manifest against the schema and
// returns any problems as warnings.
func validateManifest(path string) []string {
	valResult, err := pyproject.ValidateFile(path)
	if err != nil {
		return []string{fmt.Sprintf("Could not validate manifest: %v", err)}
	}
	if valResult.Valid {
		return nil
	}

	warnings := make([]string, 0, len(valResult.Issues))
	for _, issue := range valResult.Issues {
		warnings = append(warnings, issue.String())
	}
	return warnings
}
