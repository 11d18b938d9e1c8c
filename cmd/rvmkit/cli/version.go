package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type buildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
	Date    string `json:"date,omitempty"`
	Go      string `json:"go,omitempty"`
}

func currentBuild() buildInfo {
	b := buildInfo{Version: version}
	if commit != "none" {
		b.Commit = commit
	}
	if date != "unknown" {
		b.Date = date
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		b.Go = info.GoVersion
	}
	return b
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of rvmkit",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	b := currentBuild()

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(b)
	}

	fmt.Printf("rvmkit %s\n", b.Version)
	if b.Commit != "" {
		fmt.Printf("  commit: %s\n", b.Commit)
	}
	if b.Date != "" {
		fmt.Printf("  built:  %s\n", b.Date)
	}
	if b.Go != "" {
		fmt.Printf("  go:     %s\n", b.Go)
	}
	return nil
}
