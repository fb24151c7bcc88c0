package pyproject

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Encode renders p as TOML. Strings are always double-quoted and escaped,
// so the version line comes out as version = "X.Y.Z" at column zero.
// Authors are written inline and every table header is preceded by a blank
// line, the way pyproject.toml files are usually laid out by hand.
func Encode(p *Pyproject) ([]byte, error) {
	out := *p
	// A nil slice would be dropped entirely; the manifest must list an
	// empty dependency array.
	if out.Project.Dependencies == nil {
		out.Project.Dependencies = []string{}
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", FileName, err)
	}
	return spaceTables(buf.Bytes()), nil
}

// MarshalTOML writes the author as an inline table so the authors array
// stays on the [project] table instead of becoming [[project.authors]].
func (a Author) MarshalTOML() ([]byte, error) {
	name, err := quoteString(a.Name)
	if err != nil {
		return nil, err
	}
	email, err := quoteString(a.Email)
	if err != nil {
		return nil, err
	}
	return []byte("{ name = " + name + ", email = " + email + " }"), nil
}

// quoteString returns s as an escaped TOML basic string.
func quoteString(s string) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(map[string]string{"v": s}); err != nil {
		return "", fmt.Errorf("encoding string: %w", err)
	}
	return strings.TrimSuffix(strings.TrimPrefix(buf.String(), "v = "), "\n"), nil
}

// spaceTables inserts a blank line before any table header that directly
// follows a key. Encoded strings never span lines, so a line starting with
// '[' is always a header.
func spaceTables(data []byte) []byte {
	lines := bytes.SplitAfter(data, []byte("\n"))
	var out bytes.Buffer
	for i, line := range lines {
		if i > 0 && bytes.HasPrefix(line, []byte("[")) && len(bytes.TrimSpace(lines[i-1])) > 0 {
			out.WriteByte('\n')
		}
		out.Write(line)
	}
	return out.Bytes()
}
