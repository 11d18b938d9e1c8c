//go:build e2e
// +build e2e

package e2e

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rubyops/rvmkit/internal/rvm"
)

func testClient(t *testing.T) *rvm.Client {
	t.Helper()
	env := &rvm.CLIEnv{Path: writeFakeRVM(t), Timeout: 10 * time.Second}
	return rvm.NewClient(env)
}

func TestQueriesAgainstSubprocess(t *testing.T) {
	ctx := context.Background()
	client := testClient(t)

	installed, err := client.Installed(ctx, "ruby-2.1")
	if err != nil {
		t.Fatalf("Installed: %v", err)
	}
	if !installed {
		t.Error("Installed(ruby-2.1) = false, want true")
	}

	known, err := client.Known(ctx, "ruby-head")
	if err != nil {
		t.Fatalf("Known: %v", err)
	}
	if !known {
		t.Error("Known(ruby-head) = false, want true")
	}

	isDefault, err := client.Default(ctx, "ruby-2.1.5")
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if !isDefault {
		t.Error("Default(ruby-2.1.5) = false, want true")
	}

	normalized, err := client.Normalize(ctx, "default@myapp")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if normalized != "ruby-2.1.5@myapp" {
		t.Errorf("Normalize(default@myapp) = %q, want %q", normalized, "ruby-2.1.5@myapp")
	}

	exists, err := client.EnvironmentExists(ctx, "ruby-2.1.5@myapp")
	if err != nil {
		t.Fatalf("EnvironmentExists: %v", err)
	}
	if !exists {
		t.Error("EnvironmentExists(ruby-2.1.5@myapp) = false, want true")
	}

	missing, err := client.GemsetExists(ctx, "ruby-2.1.5", "nosuch")
	if err != nil {
		t.Fatalf("GemsetExists: %v", err)
	}
	if missing {
		t.Error("GemsetExists(ruby-2.1.5, nosuch) = true, want false")
	}
}

func TestVersionAgainstSubprocess(t *testing.T) {
	env := &rvm.CLIEnv{Path: writeFakeRVM(t), Timeout: 10 * time.Second}
	v, err := env.Version(context.Background())
	if err != nil {
		t.Fatalf("Version: %v", err)
	}
	if v != "1.26.11" {
		t.Errorf("Version = %q, want %q", v, "1.26.11")
	}
}

func TestBinaryPathLookup(t *testing.T) {
	dir := filepath.Dir(writeFakeRVM(t))
	t.Setenv("PATH", dir)

	env := &rvm.CLIEnv{Timeout: 10 * time.Second}
	bin, err := env.Binary()
	if err != nil {
		t.Fatalf("Binary: %v", err)
	}
	if filepath.Dir(bin) != dir {
		t.Errorf("Binary = %q, want it under %q", bin, dir)
	}
}

func TestMissingBinary(t *testing.T) {
	env := &rvm.CLIEnv{Path: filepath.Join(t.TempDir(), "rvm")}
	_, err := env.Binary()

	var unavailable *rvm.UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("Binary error = %v, want *rvm.UnavailableError", err)
	}
}

func TestCommandFailureCarriesStderr(t *testing.T) {
	env := &rvm.CLIEnv{Path: writeFakeRVM(t), Timeout: 10 * time.Second}
	err := env.Use(context.Background(), "ruby-9.9.9")

	var cmdErr *rvm.CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("Use error = %v, want *rvm.CommandError", err)
	}
	if !strings.Contains(cmdErr.Stderr, "unhandled arguments") {
		t.Errorf("Stderr = %q, want the fake rvm message", cmdErr.Stderr)
	}
}
