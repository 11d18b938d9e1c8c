// Package deps maps ruby strings to the OS packages required to build
// them. The table is static and ships with the binary; resolving is pure,
// installing goes through a pkgmgr.Manager.
package deps

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed packages.yaml
var tableData []byte

// familySpec holds one platform family's package lists.
type familySpec struct {
	Platforms []string `yaml:"platforms"`
	MRI       []string `yaml:"mri"`
	Head      []string `yaml:"head"`
}

type table struct {
	Families map[string]familySpec `yaml:"families"`
	JRuby    []string              `yaml:"jruby"`
}

var packages table

func init() {
	if err := yaml.Unmarshal(tableData, &packages); err != nil {
		panic("invalid packages.yaml: " + err.Error())
	}
}

// familyFor finds the package lists covering a platform identifier.
func familyFor(platform string) (familySpec, bool) {
	for _, spec := range packages.Families {
		for _, p := range spec.Platforms {
			if p == platform {
				return spec, true
			}
		}
	}
	return familySpec{}, false
}
