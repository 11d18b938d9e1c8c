//go:build e2e
// +build e2e

// Package e2e provides end-to-end tests that exercise the rvm client
// across a real subprocess boundary. A fake rvm shell script stands in
// for the real binary, so the tests cover binary resolution, argument
// construction, and output parsing without needing rvm installed.
//
// Run with: go test -tags=e2e ./internal/e2e/
package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestMain(m *testing.M) {
	if _, err := exec.LookPath("sh"); err != nil {
		os.Stderr.WriteString("Skipping e2e tests: sh not available\n")
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// fakeRVMScript answers the exact invocations the client makes. Anything
// else fails loudly so new client calls get caught here.
const fakeRVMScript = `#!/bin/sh
case "$*" in
  "list strings")
    printf 'ruby-2.0.0-p247\nruby-2.1.5\njruby-1.7.4\n'
    ;;
  "list known_strings")
    printf 'ruby-1.9.3-p551\nruby-2.0.0-p247\nruby-2.1.5\nruby-head\njruby-1.7.4\n'
    ;;
  "list default string")
    printf 'ruby-2.1.5\n'
    ;;
  "--version")
    printf 'rvm 1.26.11 (latest) by Michal Papis, Piotr Kuczynski, Wayne E. Seguin [https://rvm.io/]\n'
    ;;
  "ruby-2.1.5 do true")
    exit 0
    ;;
  "ruby-2.1.5 do rvm gemset list")
    printf 'gemsets for ruby-2.1.5 (found in /home/user/.rvm/gems/ruby-2.1.5)\n   (default)\n   global\n=> myapp\n'
    ;;
  *)
    echo "fake rvm: unhandled arguments: $*" >&2
    exit 1
    ;;
esac
`

// writeFakeRVM writes the fake rvm script into a fresh temp dir and
// returns the script path.
func writeFakeRVM(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rvm")
	if err := os.WriteFile(path, []byte(fakeRVMScript), 0755); err != nil {
		t.Fatalf("writing fake rvm: %v", err)
	}
	return path
}
