package release

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrVersionNotFound is returned when no version = "X.Y.Z" assignment exists
// inside the [project] table.
var ErrVersionNotFound = errors.New(`no version = "X.Y.Z" assignment in [project] table`)

// Part selects which version component a bump increments.
type Part string

const (
	PartMajor Part = "major"
	PartMinor Part = "minor"
	PartPatch Part = "patch"
)

// ParsePart converts a user-supplied string into a Part. Empty means patch.
func ParsePart(s string) (Part, error) {
	switch Part(strings.ToLower(strings.TrimSpace(s))) {
	case "", PartPatch:
		return PartPatch, nil
	case PartMinor:
		return PartMinor, nil
	case PartMajor:
		return PartMajor, nil
	default:
		return "", fmt.Errorf("invalid version part %q: must be major, minor, or patch", s)
	}
}

var (
	tableHeader = regexp.MustCompile(`^\s*\[\[?\s*([^\[\]]+?)\s*\]\]?\s*(#.*)?$`)
	versionLine = regexp.MustCompile(`^(\s*version\s*=\s*")(\d+\.\d+\.\d+)(".*)$`)
)

// BumpResult describes a completed bump.
type BumpResult struct {
	Old     string
	New     string
	Content []byte
}

// Bump increments the [project] version in pyproject.toml content.
// Only the matched assignment changes; every other byte is preserved,
// including lines elsewhere that happen to contain the old version string.
func Bump(content []byte, part Part) (*BumpResult, error) {
	lines := bytes.SplitAfter(content, []byte("\n"))
	table := ""

	for i, line := range lines {
		text := strings.TrimRight(string(line), "\r\n")

		if m := tableHeader.FindStringSubmatch(text); m != nil {
			table = m[1]
			continue
		}
		if table != "project" {
			continue
		}

		m := versionLine.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		next, err := increment(m[2], part)
		if err != nil {
			return nil, err
		}

		eol := string(line[len(text):])
		lines[i] = []byte(m[1] + next + m[3] + eol)

		return &BumpResult{
			Old:     m[2],
			New:     next,
			Content: bytes.Join(lines, nil),
		}, nil
	}

	return nil, ErrVersionNotFound
}

// increment parses a strict X.Y.Z version and bumps the requested part.
func increment(version string, part Part) (string, error) {
	v, err := semver.StrictNewVersion(version)
	if err != nil {
		return "", fmt.Errorf("parsing version %q: %w", version, err)
	}

	var next semver.Version
	switch part {
	case PartMajor:
		next = v.IncMajor()
	case PartMinor:
		next = v.IncMinor()
	default:
		next = v.IncPatch()
	}
	return next.String(), nil
}

// BumpFile applies Bump to the file at path. With dryRun the file is left
// untouched and only the computed result is returned.
func BumpFile(path string, part Part, dryRun bool) (*BumpResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := Bump(content, part)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if dryRun {
		return result, nil
	}

	if err := os.WriteFile(path, result.Content, info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return result, nil
}
