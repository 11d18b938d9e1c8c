// Package pkgmgr installs operating system packages through the host's
// native package manager. Managers are synchronous and idempotent: when
// EnsureInstalled returns nil, the package is present.
package pkgmgr

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/rubyops/rvmkit/internal/log"
)

// Manager installs packages on the host.
type Manager interface {
	Name() string
	// EnsureInstalled installs pkg unless it is already present. The
	// check runs fresh on every call; nothing is cached.
	EnsureInstalled(ctx context.Context, pkg string) error
}

// Options tune how the system package managers invoke their commands.
type Options struct {
	// Sudo prefixes mutating commands with sudo. Queries never need it.
	Sudo bool
}

// ForPlatform returns the package manager for a platform identifier, or an
// *UnsupportedPlatformError for platforms outside the dependency tables.
func ForPlatform(platform string, opts Options) (Manager, error) {
	switch platform {
	case "debian", "ubuntu":
		return &Apt{Sudo: opts.Sudo}, nil
	case "centos", "redhat", "fedora":
		return &Yum{Sudo: opts.Sudo}, nil
	case "suse":
		return &Zypper{Sudo: opts.Sudo}, nil
	}
	return nil, &UnsupportedPlatformError{Platform: platform}
}

// SupportedPlatforms lists the platform identifiers ForPlatform accepts.
func SupportedPlatforms() []string {
	return []string{"debian", "ubuntu", "centos", "redhat", "fedora", "suse"}
}

// runFunc executes a command and returns its combined output. Tests swap
// in a recorder.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRun(ctx context.Context, name string, args ...string) ([]byte, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.Bytes(), err
}

// queryInstalled probes for a package with the manager's query command. A
// non-zero exit means the package is absent; any other failure (binary
// missing, context canceled) propagates so absence is never fabricated.
func queryInstalled(ctx context.Context, run runFunc, argv ...string) (bool, error) {
	_, err := run(ctx, argv[0], argv[1:]...)
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, err
}

// install runs the manager's install command, optionally under sudo.
func install(ctx context.Context, run runFunc, sudo bool, manager, pkg string, argv ...string) error {
	if sudo {
		argv = append([]string{"sudo"}, argv...)
	}
	log.Debug("installing package", "pkg", pkg, "manager", manager)
	out, err := run(ctx, argv[0], argv[1:]...)
	if err != nil {
		return &InstallError{
			Pkg:     pkg,
			Manager: manager,
			Output:  tail(out),
			Err:     err,
		}
	}
	return nil
}

// tail keeps the last few lines of command output for error reporting.
func tail(out []byte) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	const keep = 5
	if len(lines) > keep {
		lines = lines[len(lines)-keep:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
