// Package cli implements the rvmkit command-line interface using Cobra.
// It provides query commands over a local rvm installation: which rubies
// are installed or known, the default ruby, gemset environments, and the
// OS packages a ruby needs before it can build.
package cli

import (
	"time"

	"github.com/rubyops/rvmkit/internal/config"
	"github.com/rubyops/rvmkit/internal/log"
	"github.com/rubyops/rvmkit/internal/rvm"
	"github.com/rubyops/rvmkit/internal/ui"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	dryRun  bool
	jsonOut bool
)

// globalCfg is loaded in PersistentPreRunE and shared by all commands.
var globalCfg = config.DefaultGlobalConfig()

var rootCmd = &cobra.Command{
	Use:   "rvmkit",
	Short: "Query helpers for rvm-managed rubies",
	Long: `rvmkit answers questions about a local rvm installation: which rubies
are installed or known, what the default is, whether a ruby@gemset
environment exists, and which OS packages a ruby needs before rvm can
build it.

rvmkit never installs or removes rubies itself — rvm owns that. The
only thing it changes on the system is build dependencies, via
'rvmkit deps install'.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		globalCfg, _ = config.LoadGlobal()

		if err := log.Init(log.Options{
			Verbose:       verbose,
			JSONFormat:    jsonOut,
			DebugDir:      config.DebugLogDir(),
			RetentionDays: globalCfg.Debug.RetentionDays,
		}); err != nil {
			// Log init failure is non-fatal - fallback to default logger
			cmd.PrintErrf("Warning: failed to initialize debug logging: %v\n", err)
		}

		// A missing rvm is not fatal at startup. Commands that need it
		// return the full error with install instructions.
		if _, err := newEnv().Binary(); err != nil {
			log.Debug("rvm probe failed", "error", err)
			ui.Warn("rvm not found; ruby queries will fail until it is installed")
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newEnv builds the rvm binding from global config.
func newEnv() *rvm.CLIEnv {
	return &rvm.CLIEnv{
		Path:    globalCfg.RVM.Path,
		Timeout: time.Duration(globalCfg.RVM.TimeoutSeconds) * time.Second,
	}
}

// newClient builds the query client the commands share.
func newClient() *rvm.Client {
	return rvm.NewClient(newEnv())
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "show what would happen without executing")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
}
