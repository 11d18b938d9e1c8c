package pkgmgr

import "context"

// Apt manages packages on Debian and Ubuntu hosts.
type Apt struct {
	Sudo bool
	run  runFunc
}

func (a *Apt) Name() string { return "apt-get" }

func (a *Apt) EnsureInstalled(ctx context.Context, pkg string) error {
	run := a.run
	if run == nil {
		run = execRun
	}
	installed, err := queryInstalled(ctx, run, "dpkg", "-s", pkg)
	if err != nil || installed {
		return err
	}
	return install(ctx, run, a.Sudo, a.Name(), pkg, "apt-get", "install", "-y", pkg)
}
