package pkgmgr

import "context"

// Zypper manages packages on SUSE hosts.
type Zypper struct {
	Sudo bool
	run  runFunc
}

func (z *Zypper) Name() string { return "zypper" }

func (z *Zypper) EnsureInstalled(ctx context.Context, pkg string) error {
	run := z.run
	if run == nil {
		run = execRun
	}
	installed, err := queryInstalled(ctx, run, "rpm", "-q", pkg)
	if err != nil || installed {
		return err
	}
	return install(ctx, run, z.Sudo, z.Name(), pkg, "zypper", "--non-interactive", "install", pkg)
}
