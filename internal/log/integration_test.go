//go:build integration

package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// Exercises a whole debug-log lifecycle the way a command invocation
// does: retention cleanup on Init, records at every level, Close, and
// the latest symlink. Run with: go test -tags=integration ./internal/log/
func TestDebugLogLifecycle(t *testing.T) {
	dir := t.TempDir()

	expired := filepath.Join(dir, time.Now().AddDate(0, 0, -20).Format(dateLayout)+".jsonl")
	if err := os.WriteFile(expired, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Init(Options{DebugDir: dir, RetentionDays: 14}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if _, err := os.Stat(expired); !os.IsNotExist(err) {
		t.Error("Init should prune files past retention")
	}

	Debug("running rvm", "args", "list strings")
	Info("resolved platform", "platform", "ubuntu")
	Warn("rvm not found")
	Error("installing package failed", "pkg", "libyaml-dev")
	Close()

	content := readToday(t, dir)
	for _, msg := range []string{"running rvm", "resolved platform", "rvm not found", "installing package failed"} {
		if !strings.Contains(content, msg) {
			t.Errorf("debug file missing %q", msg)
		}
	}

	target, err := os.Readlink(filepath.Join(dir, "latest"))
	if err != nil {
		t.Fatalf("reading latest symlink: %v", err)
	}
	if want := time.Now().Format(dateLayout) + ".jsonl"; target != want {
		t.Errorf("latest points at %s, want %s", target, want)
	}
}
