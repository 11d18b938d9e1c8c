package deps

import "github.com/rubyops/rvmkit/internal/rubie"

// Resolve returns the OS packages rubyString needs before RVM can build it
// on platform. The result is empty (never an error) for goruby, for
// interpreter families with no table entry, and for platforms the table
// does not cover: an unknown ruby has no known dependencies, not invalid
// ones.
//
// The extra source-control packages are appended only when the exact
// literal "ruby-head" is requested; "ruby-head@gemset" gets the base list.
func Resolve(platform, rubyString string) []string {
	switch rubie.Classify(rubyString) {
	case rubie.FamilyJRuby:
		return append([]string(nil), packages.JRuby...)
	case rubie.FamilyMRI:
		spec, ok := familyFor(platform)
		if !ok {
			return nil
		}
		pkgs := append([]string(nil), spec.MRI...)
		if rubyString == rubie.Head {
			pkgs = append(pkgs, spec.Head...)
		}
		return pkgs
	}
	return nil
}
