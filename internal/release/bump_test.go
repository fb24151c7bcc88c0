package release

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

const manifest = `[build-system]
requires = ["hatchling"]
build-backend = "hatchling.build"

[project]
name = "testing123"
version = "0.0.4"
description = "Supports servers at 0.0.4 and later"
readme = "README.md"

[project.urls]
Homepage = "https://example.com/0.0.4"
`

func TestBumpPatch(t *testing.T) {
	tests := []struct {
		name string
		old  string
		want string
	}{
		{"simple", "0.0.4", "0.0.5"},
		{"decimal rollover", "1.2.9", "1.2.10"},
		{"large patch", "3.4.99", "3.4.100"},
		{"zero", "0.0.0", "0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "[project]\nname = \"x\"\nversion = \"" + tt.old + "\"\n"
			result, err := Bump([]byte(content), PartPatch)
			if err != nil {
				t.Fatalf("Bump() error: %v", err)
			}
			if result.Old != tt.old || result.New != tt.want {
				t.Errorf("Bump() = %s -> %s, want %s -> %s", result.Old, result.New, tt.old, tt.want)
			}
			want := "[project]\nname = \"x\"\nversion = \"" + tt.want + "\"\n"
			if string(result.Content) != want {
				t.Errorf("content = %q, want %q", result.Content, want)
			}
		})
	}
}

func TestBumpLeavesOtherOccurrencesAlone(t *testing.T) {
	result, err := Bump([]byte(manifest), PartPatch)
	if err != nil {
		t.Fatalf("Bump() error: %v", err)
	}

	want := strings.Replace(manifest, `version = "0.0.4"`, `version = "0.0.5"`, 1)
	if string(result.Content) != want {
		t.Errorf("unexpected content:\n%s\nwant:\n%s", result.Content, want)
	}
	if !strings.Contains(string(result.Content), "Supports servers at 0.0.4 and later") {
		t.Error("description containing the old version was rewritten")
	}
	if !strings.Contains(string(result.Content), "https://example.com/0.0.4") {
		t.Error("URL containing the old version was rewritten")
	}
}

func TestBumpParts(t *testing.T) {
	tests := []struct {
		part Part
		want string
	}{
		{PartPatch, "1.2.4"},
		{PartMinor, "1.3.0"},
		{PartMajor, "2.0.0"},
	}

	for _, tt := range tests {
		t.Run(string(tt.part), func(t *testing.T) {
			result, err := Bump([]byte("[project]\nversion = \"1.2.3\"\n"), tt.part)
			if err != nil {
				t.Fatalf("Bump() error: %v", err)
			}
			if result.New != tt.want {
				t.Errorf("New = %q, want %q", result.New, tt.want)
			}
		})
	}
}

func TestBumpScopedToProjectTable(t *testing.T) {
	content := `[tool.other]
version = "9.9.9"

[project]
name = "demo"
version = "0.1.0"

[tool.hatch]
version = "7.7.7"
`
	result, err := Bump([]byte(content), PartPatch)
	if err != nil {
		t.Fatalf("Bump() error: %v", err)
	}
	if result.Old != "0.1.0" || result.New != "0.1.1" {
		t.Errorf("bumped %s -> %s, want 0.1.0 -> 0.1.1", result.Old, result.New)
	}
	got := string(result.Content)
	if !strings.Contains(got, `version = "9.9.9"`) || !strings.Contains(got, `version = "7.7.7"`) {
		t.Errorf("versions outside [project] changed:\n%s", got)
	}
}

func TestBumpSkipsArrayOfTables(t *testing.T) {
	content := "[project]\nname = \"demo\"\n\n[[project.authors]]\nname = \"a\"\nversion = \"5.5.5\"\n"
	_, err := Bump([]byte(content), PartPatch)
	if !errors.Is(err, ErrVersionNotFound) {
		t.Fatalf("err = %v, want ErrVersionNotFound", err)
	}
}

func TestBumpPreservesCRLFAndComments(t *testing.T) {
	content := "[project]\r\nversion = \"0.0.4\"  # bumped by upload.py\r\nname = \"demo\"\r\n"
	result, err := Bump([]byte(content), PartPatch)
	if err != nil {
		t.Fatalf("Bump() error: %v", err)
	}
	want := "[project]\r\nversion = \"0.0.5\"  # bumped by upload.py\r\nname = \"demo\"\r\n"
	if string(result.Content) != want {
		t.Errorf("content = %q, want %q", result.Content, want)
	}
}

func TestBumpNotFound(t *testing.T) {
	inputs := map[string]string{
		"no project table":   "[tool.x]\nversion = \"1.0.0\"\n",
		"two-part version":   "[project]\nversion = \"1.0\"\n",
		"dynamic version":    "[project]\ndynamic = [\"version\"]\n",
		"empty":              "",
		"prerelease version": "[project]\nversion = \"1.0.0rc1\"\n",
	}

	for name, content := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := Bump([]byte(content), PartPatch)
			if !errors.Is(err, ErrVersionNotFound) {
				t.Errorf("err = %v, want ErrVersionNotFound", err)
			}
		})
	}
}

func TestParsePart(t *testing.T) {
	tests := []struct {
		in      string
		want    Part
		wantErr bool
	}{
		{"", PartPatch, false},
		{"patch", PartPatch, false},
		{"Minor", PartMinor, false},
		{" major ", PartMajor, false},
		{"build", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePart(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePart(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePart(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePart(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBumpFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pyproject.toml")
	if err := os.WriteFile(path, []byte(manifest), 0600); err != nil {
		t.Fatal(err)
	}

	t.Run("dry run leaves file untouched", func(t *testing.T) {
		result, err := BumpFile(path, PartPatch, true)
		if err != nil {
			t.Fatalf("BumpFile() error: %v", err)
		}
		if result.New != "0.0.5" {
			t.Errorf("New = %q, want 0.0.5", result.New)
		}
		data, _ := os.ReadFile(path)
		if string(data) != manifest {
			t.Error("dry run modified the file")
		}
	})

	t.Run("writes new version", func(t *testing.T) {
		if _, err := BumpFile(path, PartPatch, false); err != nil {
			t.Fatalf("BumpFile() error: %v", err)
		}
		data, _ := os.ReadFile(path)
		if !strings.Contains(string(data), `version = "0.0.5"`) {
			t.Errorf("file not bumped:\n%s", data)
		}

		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			if perm := info.Mode().Perm(); perm != 0600 {
				t.Errorf("permissions = %o, want 600", perm)
			}
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := BumpFile(filepath.Join(t.TempDir(), "nope.toml"), PartPatch, false); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
