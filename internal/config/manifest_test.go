package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "rvmkit.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadManifest(t *testing.T) {
	dir := writeManifest(t, `
rubies:
  - ruby-2.1.5
  - ruby-2.0.0-p247@myapp
  - jruby-1.7.4
default: ruby-2.1.5
`)

	m, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if len(m.Rubies) != 3 {
		t.Fatalf("len(Rubies) = %d, want 3", len(m.Rubies))
	}
	if m.Rubies[1] != "ruby-2.0.0-p247@myapp" {
		t.Errorf("Rubies[1] = %q", m.Rubies[1])
	}
	if m.Default != "ruby-2.1.5" {
		t.Errorf("Default = %q, want ruby-2.1.5", m.Default)
	}
}

func TestLoadManifestMissing(t *testing.T) {
	m, err := LoadManifest(t.TempDir())
	if err != nil {
		t.Fatalf("missing manifest should not error, got %v", err)
	}
	if m != nil {
		t.Errorf("missing manifest should return nil, got %+v", m)
	}
}

func TestLoadManifestDefaultAliasEntry(t *testing.T) {
	dir := writeManifest(t, "rubies:\n  - default@migrations\n")

	m, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("default-alias entries are legal, got %v", err)
	}
	if m.Rubies[0] != "default@migrations" {
		t.Errorf("Rubies[0] = %q", m.Rubies[0])
	}
}

func TestLoadManifestErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"empty rubies", "rubies: []\n", "lists no rubies"},
		{"no rubies key", "default: ruby-2.1.5\n", "lists no rubies"},
		{"implausible entry", "rubies:\n  - nonsense\n", "does not look like a ruby string"},
		{"implausible default", "rubies:\n  - ruby-2.1.5\ndefault: whatever\n", "does not look like a ruby string"},
		{"bad yaml", "rubies: [unclosed\n", "parsing rvmkit.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeManifest(t, tt.content)
			_, err := LoadManifest(dir)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q should mention %q", err, tt.errMsg)
			}
		})
	}
}
