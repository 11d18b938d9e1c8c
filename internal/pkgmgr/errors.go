package pkgmgr

import (
	"fmt"
	"strings"
)

// UnsupportedPlatformError indicates no package manager is known for a
// platform identifier.
type UnsupportedPlatformError struct {
	Platform string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("no package manager for platform %q (supported: %s)",
		e.Platform, strings.Join(SupportedPlatforms(), ", "))
}

// InstallError reports a package that could not be installed.
type InstallError struct {
	Pkg     string
	Manager string
	Output  string // trailing command output, already trimmed
	Err     error
}

func (e *InstallError) Error() string {
	msg := fmt.Sprintf("installing %s via %s: %v", e.Pkg, e.Manager, e.Err)
	if e.Output != "" {
		msg += "\n" + e.Output
	}
	return msg
}

func (e *InstallError) Unwrap() error {
	return e.Err
}
