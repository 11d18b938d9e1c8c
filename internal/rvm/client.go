package rvm

import (
	"context"
	"fmt"
	"strings"

	"github.com/rubyops/rvmkit/internal/rubie"
)

// Client answers questions about an RVM installation. Predicates take a
// ruby string and validate it first: implausible input is a plain false.
// A failure to reach RVM itself always comes back as an error; "could not
// check" is never reported as "not installed".
type Client struct {
	env Env
}

// NewClient wraps an Env in the query façade.
func NewClient(env Env) *Client {
	return &Client{env: env}
}

// InstalledStrings returns the installed ruby strings.
func (c *Client) InstalledStrings(ctx context.Context) ([]string, error) {
	strs, err := c.env.ListStrings(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing installed rubies: %w", err)
	}
	return strs, nil
}

// KnownStrings returns the ruby strings RVM can install.
func (c *Client) KnownStrings(ctx context.Context) ([]string, error) {
	strs, err := c.env.ListKnownStrings(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing known rubies: %w", err)
	}
	return strs, nil
}

// DefaultString returns the default ruby string, or "" when none is set.
// An unset default is data, not an error.
func (c *Client) DefaultString(ctx context.Context) (string, error) {
	def, err := c.env.ListDefault(ctx)
	if err != nil {
		return "", fmt.Errorf("querying default ruby: %w", err)
	}
	return def, nil
}

// Installed reports whether rubyString matches an installed ruby. The
// match is by prefix, so "ruby-2.0.0" matches an installed
// "ruby-2.0.0-p247" and any of its gemset variants.
func (c *Client) Installed(ctx context.Context, rubyString string) (bool, error) {
	if !rubie.Plausible(rubyString) {
		return false, nil
	}
	installed, err := c.InstalledStrings(ctx)
	if err != nil {
		return false, err
	}
	return anyHasPrefix(installed, rubyString), nil
}

// NotInstalled is the exact negation of Installed, implausible input
// included.
func (c *Client) NotInstalled(ctx context.Context, rubyString string) (bool, error) {
	installed, err := c.Installed(ctx, rubyString)
	return !installed && err == nil, err
}

// Known reports whether rubyString matches, by prefix, a ruby RVM knows
// how to install.
func (c *Client) Known(ctx context.Context, rubyString string) (bool, error) {
	if !rubie.Plausible(rubyString) {
		return false, nil
	}
	known, err := c.KnownStrings(ctx)
	if err != nil {
		return false, err
	}
	return anyHasPrefix(known, rubyString), nil
}

// Unknown is the exact negation of Known, implausible input included.
func (c *Client) Unknown(ctx context.Context, rubyString string) (bool, error) {
	known, err := c.Known(ctx, rubyString)
	return !known && err == nil, err
}

// Default reports whether the configured default ruby starts with
// rubyString. With no default set it is false for every input.
func (c *Client) Default(ctx context.Context, rubyString string) (bool, error) {
	if !rubie.Plausible(rubyString) {
		return false, nil
	}
	def, err := c.DefaultString(ctx)
	if err != nil {
		return false, err
	}
	if def == "" {
		return false, nil
	}
	return strings.HasPrefix(def, rubyString), nil
}

// EnvironmentExists reports whether s names a usable environment: for
// "ruby@gemset" the gemset must exist under that ruby, otherwise the ruby
// itself must be installed.
func (c *Client) EnvironmentExists(ctx context.Context, s string) (bool, error) {
	if gemset, ok := rubie.Gemset(s); ok {
		return c.GemsetExists(ctx, rubie.Ruby(s), gemset)
	}
	return c.Installed(ctx, s)
}

// GemsetExists reports whether ruby has a gemset named gemset. Membership
// is exact: "myapp" does not match "myapp2". A missing ruby or either
// argument empty is false, not an error.
func (c *Client) GemsetExists(ctx context.Context, ruby, gemset string) (bool, error) {
	if ruby == "" || gemset == "" || !rubie.Plausible(ruby) {
		return false, nil
	}
	installed, err := c.Installed(ctx, ruby)
	if err != nil || !installed {
		return false, err
	}
	if err := c.env.Use(ctx, ruby); err != nil {
		return false, fmt.Errorf("activating %s: %w", ruby, err)
	}
	gemsets, err := c.env.GemsetList(ctx)
	if err != nil {
		return false, fmt.Errorf("listing gemsets for %s: %w", ruby, err)
	}
	for _, g := range gemsets {
		if g == gemset {
			return true, nil
		}
	}
	return false, nil
}

// Normalize resolves a leading "default" alias against the configured
// default ruby: "default@migrate" becomes "ruby-2.1.5@migrate". Strings
// without the alias pass through untouched. Needing the default while none
// is set is a *NoDefaultError.
func (c *Client) Normalize(ctx context.Context, rubyString string) (string, error) {
	if !strings.HasPrefix(rubyString, rubie.DefaultAlias) {
		return rubyString, nil
	}
	def, err := c.DefaultString(ctx)
	if err != nil {
		return "", err
	}
	if def == "" {
		return "", &NoDefaultError{Input: rubyString}
	}
	return rubie.Normalize(rubyString, def), nil
}

func anyHasPrefix(list []string, prefix string) bool {
	for _, s := range list {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
