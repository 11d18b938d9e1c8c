// Package rvm queries an RVM installation: which rubies are installed,
// which are known, what the default is, and which gemsets an environment
// holds. Nothing here installs, removes, or switches rubies.
package rvm

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/rubyops/rvmkit/internal/log"
)

// Env is the surface of a version manager the query helpers need. Results
// are read fresh on every call; implementations must not cache, since
// another process may mutate the installation between calls.
type Env interface {
	// ListStrings returns the installed ruby strings.
	ListStrings(ctx context.Context) ([]string, error)
	// ListKnownStrings returns the ruby strings RVM knows how to install.
	ListKnownStrings(ctx context.Context) ([]string, error)
	// ListDefault returns the default ruby string, or "" when none is set.
	ListDefault(ctx context.Context) (string, error)
	// Use activates a ruby environment for subsequent GemsetList calls.
	Use(ctx context.Context, rubyString string) error
	// GemsetList returns the gemset names of the active environment.
	GemsetList(ctx context.Context) ([]string, error)
}

// DefaultTimeout bounds a single rvm invocation. RVM is slow to start (it
// is a large shell function) but anything beyond this is a hung command.
const DefaultTimeout = 30 * time.Second

// CLIEnv implements Env by shelling out to the rvm binary. The zero value
// looks up rvm in PATH and falls back to ~/.rvm/bin/rvm.
type CLIEnv struct {
	// Path overrides where the rvm binary lives.
	Path string
	// Timeout bounds each invocation. Zero means DefaultTimeout.
	Timeout time.Duration

	active string
}

// Binary resolves the rvm executable this env invokes. The returned error
// is an *UnavailableError with install instructions.
func (e *CLIEnv) Binary() (string, error) {
	if e.Path != "" {
		if _, err := os.Stat(e.Path); err != nil {
			return "", &UnavailableError{
				Reason: fmt.Sprintf("no rvm binary at %s", e.Path),
				Fix:    "Fix the rvm path in ~/.rvmkit/config.yaml or remove it to use PATH lookup.",
			}
		}
		return e.Path, nil
	}
	if p, err := exec.LookPath("rvm"); err == nil {
		return p, nil
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".rvm", "bin", "rvm")
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", &UnavailableError{
		Reason: "rvm not found in PATH or ~/.rvm/bin",
		Fix:    "Install RVM first:\n  \\curl -sSL https://get.rvm.io | bash -s stable",
	}
}

func (e *CLIEnv) exec(ctx context.Context, args ...string) (string, error) {
	bin, err := e.Binary()
	if err != nil {
		return "", err
	}

	timeout := e.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug("running rvm", "args", strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return stdout.String(), nil
}

func (e *CLIEnv) ListStrings(ctx context.Context) ([]string, error) {
	out, err := e.exec(ctx, "list", "strings")
	if err != nil {
		return nil, err
	}
	return parseStrings(out), nil
}

func (e *CLIEnv) ListKnownStrings(ctx context.Context) ([]string, error) {
	out, err := e.exec(ctx, "list", "known_strings")
	if err != nil {
		return nil, err
	}
	return parseStrings(out), nil
}

func (e *CLIEnv) ListDefault(ctx context.Context) (string, error) {
	out, err := e.exec(ctx, "list", "default", "string")
	if err != nil {
		return "", err
	}
	return parseDefault(out), nil
}

// Use activates rubyString for later GemsetList calls. RVM cannot switch a
// parent shell's environment from a child process, so activation is
// per-invocation: Use verifies the environment loads, then GemsetList runs
// inside it via `rvm <string> do`.
func (e *CLIEnv) Use(ctx context.Context, rubyString string) error {
	if _, err := e.exec(ctx, rubyString, "do", "true"); err != nil {
		return err
	}
	e.active = rubyString
	return nil
}

func (e *CLIEnv) GemsetList(ctx context.Context) ([]string, error) {
	args := []string{"gemset", "list"}
	if e.active != "" {
		args = append([]string{e.active, "do", "rvm"}, args...)
	}
	out, err := e.exec(ctx, args...)
	if err != nil {
		return nil, err
	}
	return parseGemsets(out), nil
}

// Version reports the installed RVM version, for diagnostics.
func (e *CLIEnv) Version(ctx context.Context) (string, error) {
	out, err := e.exec(ctx, "--version")
	if err != nil {
		return "", err
	}
	return parseVersion(out), nil
}

// parseStrings splits `rvm list strings` or `rvm list known_strings`
// output: one ruby string per line. Ruby strings never contain spaces, so
// multi-word lines are warnings and get dropped.
func parseStrings(out string) []string {
	var strs []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.ContainsAny(line, " \t") {
			continue
		}
		strs = append(strs, line)
	}
	return strs
}

// parseDefault extracts the default ruby from `rvm list default string`
// output. No default prints nothing.
func parseDefault(out string) string {
	strs := parseStrings(out)
	if len(strs) == 0 {
		return ""
	}
	return strs[0]
}

// parseGemsets extracts gemset names from `rvm gemset list` output, which
// looks like:
//
//	gemsets for ruby-2.1.5 (found in /home/u/.rvm/gems/ruby-2.1.5)
//	   (default)
//	=> global
//	   myapp
//
// The arrow marks the active gemset.
func parseGemsets(out string) []string {
	var gemsets []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "=>"))
		if line == "" || strings.HasPrefix(line, "gemsets for ") {
			continue
		}
		gemsets = append(gemsets, line)
	}
	return gemsets
}

// parseVersion extracts the version number from `rvm --version` output
// like "rvm 1.29.12 (latest) by ...".
func parseVersion(out string) string {
	fields := strings.Fields(out)
	if len(fields) >= 2 && fields[0] == "rvm" {
		return fields[1]
	}
	return strings.TrimSpace(out)
}
