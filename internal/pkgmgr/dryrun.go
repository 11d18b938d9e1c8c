package pkgmgr

import "context"

// DryRun records the packages that would be installed without touching the
// host. It backs the --dry-run flag.
type DryRun struct {
	Packages []string
}

func (d *DryRun) Name() string { return "dry-run" }

func (d *DryRun) EnsureInstalled(_ context.Context, pkg string) error {
	d.Packages = append(d.Packages, pkg)
	return nil
}
