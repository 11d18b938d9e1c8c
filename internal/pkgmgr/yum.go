package pkgmgr

import "context"

// Yum manages packages on CentOS, Red Hat, and Fedora hosts.
type Yum struct {
	Sudo bool
	run  runFunc
}

func (y *Yum) Name() string { return "yum" }

func (y *Yum) EnsureInstalled(ctx context.Context, pkg string) error {
	run := y.run
	if run == nil {
		run = execRun
	}
	installed, err := queryInstalled(ctx, run, "rpm", "-q", pkg)
	if err != nil || installed {
		return err
	}
	return install(ctx, run, y.Sudo, y.Name(), pkg, "yum", "install", "-y", pkg)
}
