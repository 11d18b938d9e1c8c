package deps

import (
	"context"
	"fmt"

	"github.com/rubyops/rvmkit/internal/log"
	"github.com/rubyops/rvmkit/internal/pkgmgr"
)

// Install ensures every build dependency of rubyString is present,
// checking and installing one package at a time, in table order, stopping
// at the first failure. Nothing is batched: each package is verified
// installed before the next is considered.
func Install(ctx context.Context, mgr pkgmgr.Manager, platform, rubyString string) error {
	pkgs := Resolve(platform, rubyString)
	if len(pkgs) == 0 {
		log.Debug("no build dependencies", "ruby", rubyString, "platform", platform)
		return nil
	}

	log.Debug("ensuring build dependencies",
		"ruby", rubyString, "platform", platform, "packages", len(pkgs))
	for _, pkg := range pkgs {
		if err := mgr.EnsureInstalled(ctx, pkg); err != nil {
			return fmt.Errorf("installing build dependencies for %s: %w", rubyString, err)
		}
	}
	return nil
}
