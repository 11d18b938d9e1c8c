// Package rubie parses and classifies RVM ruby strings such as
// "ruby-2.1.5", "jruby-1.7.4@myapp", or "1.9.3-p551". Every function is
// pure; talking to RVM itself is the rvm package's job.
package rubie

import (
	"regexp"
	"strings"
)

// Goruby is the only legal ruby string without a dash.
const Goruby = "goruby"

// Head is the moving development build of MRI. It needs extra build
// dependencies because it compiles from a source checkout.
const Head = "ruby-head"

// DefaultAlias marks a ruby string that inherits the configured default
// ruby, e.g. "default" or "default@migrations".
const DefaultAlias = "default"

// rubyPattern matches anything-dash-anything with non-empty segments. RVM
// strings are too varied for a stricter grammar ("ruby-2.1.5",
// "jruby-1.7.4", "1.9.3-p551", and "rbx-2.2.6" are all legal), so this is
// a sanity check, not a validator.
var rubyPattern = regexp.MustCompile(`^[^-]+-[^-]+`)

// Plausible reports whether s could be an RVM ruby string. It filters
// obvious garbage (empty strings, bare words) while accepting every shape
// RVM emits. Goruby is the one dashless exception.
func Plausible(s string) bool {
	if s == Goruby {
		return true
	}
	return rubyPattern.MatchString(s)
}

// HasGemset reports whether s names a gemset, like "ruby-2.1.5@myapp".
func HasGemset(s string) bool {
	return strings.Contains(s, "@")
}

// Ruby returns the ruby portion of s, stripping any gemset suffix.
func Ruby(s string) string {
	ruby, _, _ := strings.Cut(s, "@")
	return ruby
}

// Gemset returns the gemset portion of s. ok is false when s names no
// gemset at all; a trailing "@" yields an empty gemset with ok=true.
func Gemset(s string) (gemset string, ok bool) {
	_, gemset, ok = strings.Cut(s, "@")
	return gemset, ok
}

// Normalize replaces a leading DefaultAlias in s with def, preserving any
// gemset suffix: Normalize("default@migrate", "ruby-2.1.5") returns
// "ruby-2.1.5@migrate". Strings not starting with the alias pass through
// unchanged.
func Normalize(s, def string) string {
	if !strings.HasPrefix(s, DefaultAlias) {
		return s
	}
	return def + s[len(DefaultAlias):]
}

// Family identifies the interpreter lineage of a ruby string, which in
// turn determines its build dependencies.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyMRI
	FamilyJRuby
	FamilyGoruby
)

// mriBareVersion matches version-only MRI strings like "1.8.7" or
// "1.9.3-p551", which RVM accepts without the "ruby-" prefix.
var mriBareVersion = regexp.MustCompile(`^1\.[89]\.`)

// Classify reports the interpreter family of a ruby string. Any gemset
// suffix is ignored. Rubinius, MagLev, and other exotic interpreters
// classify as FamilyUnknown; RVM builds those with toolchains this package
// does not model.
func Classify(s string) Family {
	ruby := Ruby(s)
	switch {
	case ruby == Goruby:
		return FamilyGoruby
	case strings.HasPrefix(ruby, "jruby"):
		return FamilyJRuby
	case mriBareVersion.MatchString(ruby),
		strings.HasPrefix(ruby, "ree"),
		strings.HasPrefix(ruby, "ruby-"):
		return FamilyMRI
	}
	return FamilyUnknown
}

// String returns the lowercase family name.
func (f Family) String() string {
	switch f {
	case FamilyMRI:
		return "mri"
	case FamilyJRuby:
		return "jruby"
	case FamilyGoruby:
		return "goruby"
	default:
		return "unknown"
	}
}
