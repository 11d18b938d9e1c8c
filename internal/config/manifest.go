package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rubyops/rvmkit/internal/rubie"
)

// Manifest represents an rvmkit.yaml file: the rubies a host is expected
// to have, for `rvmkit status` to report against.
type Manifest struct {
	// Rubies are ruby strings, gemset variants included. A leading
	// "default" alias is resolved against the live default at check time.
	Rubies []string `yaml:"rubies"`
	// Default is the ruby expected to be the configured default.
	Default string `yaml:"default,omitempty"`
}

// LoadManifest reads rvmkit.yaml from the given directory.
// Returns nil, nil if the file doesn't exist.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "rvmkit.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading rvmkit.yaml: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing rvmkit.yaml: %w", err)
	}

	if len(m.Rubies) == 0 {
		return nil, fmt.Errorf("rvmkit.yaml lists no rubies\n\n  Add at least one:\n    rubies:\n      - ruby-2.1.5")
	}
	for _, r := range m.Rubies {
		if !rubie.Plausible(r) && !strings.HasPrefix(r, rubie.DefaultAlias) {
			return nil, fmt.Errorf("rvmkit.yaml: %q does not look like a ruby string (expected name-version[@gemset])", r)
		}
	}
	if m.Default != "" && !rubie.Plausible(m.Default) {
		return nil, fmt.Errorf("rvmkit.yaml: default %q does not look like a ruby string", m.Default)
	}

	return &m, nil
}
