package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rubyops/rvmkit/internal/deps"
	"github.com/rubyops/rvmkit/internal/pkgmgr"
	"github.com/rubyops/rvmkit/internal/platform"
	"github.com/rubyops/rvmkit/internal/ui"
	"github.com/spf13/cobra"
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Manage build dependencies",
	Long:  `Resolve and install the OS packages a ruby needs before rvm can build it.`,
}

var depsListCmd = &cobra.Command{
	Use:   "list <ruby>",
	Short: "List build dependencies for a ruby",
	Long: `List the OS packages a ruby needs on this platform, without touching
the system.

Examples:
  rvmkit deps list ruby-3.2.2
  rvmkit deps list jruby-9.4.5.0
  rvmkit deps list ruby-head --platform centos`,
	Args: cobra.ExactArgs(1),
	RunE: runDepsList,
}

var depsInstallCmd = &cobra.Command{
	Use:   "install <ruby>",
	Short: "Install build dependencies for a ruby",
	Long: `Ensure every OS package a ruby needs on this platform is installed,
in order, stopping at the first failure.

Use --dry-run to see what would be installed without changing anything.`,
	Args: cobra.ExactArgs(1),
	RunE: runDepsInstall,
}

var platformOverride string

func init() {
	rootCmd.AddCommand(depsCmd)
	depsCmd.AddCommand(depsListCmd)
	depsCmd.AddCommand(depsInstallCmd)

	depsCmd.PersistentFlags().StringVar(&platformOverride, "platform", "", "platform identifier (default: detect from /etc/os-release)")
}

// resolvePlatform picks the platform identifier: --platform flag, then
// global config, then /etc/os-release.
func resolvePlatform() (string, error) {
	if platformOverride != "" {
		return platformOverride, nil
	}
	if globalCfg.Platform != "" {
		return globalCfg.Platform, nil
	}
	return platform.Detect()
}

func runDepsList(cmd *cobra.Command, args []string) error {
	plat, err := resolvePlatform()
	if err != nil {
		return err
	}

	pkgs := deps.Resolve(plat, args[0])

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(pkgs)
	}

	if len(pkgs) == 0 {
		fmt.Printf("No build dependencies for %s on %s\n", args[0], plat)
		return nil
	}
	for _, pkg := range pkgs {
		fmt.Println(pkg)
	}
	return nil
}

func runDepsInstall(cmd *cobra.Command, args []string) error {
	plat, err := resolvePlatform()
	if err != nil {
		return err
	}

	if dryRun {
		rec := &pkgmgr.DryRun{}
		if err := deps.Install(cmd.Context(), rec, plat, args[0]); err != nil {
			return err
		}
		if len(rec.Packages) == 0 {
			fmt.Printf("No build dependencies for %s on %s\n", args[0], plat)
			return nil
		}
		for _, pkg := range rec.Packages {
			fmt.Printf("Would install %s\n", pkg)
		}
		return nil
	}

	mgr, err := pkgmgr.ForPlatform(plat, pkgmgr.Options{Sudo: globalCfg.Sudo})
	if err != nil {
		return err
	}
	if err := deps.Install(cmd.Context(), mgr, plat, args[0]); err != nil {
		return err
	}

	fmt.Printf("%s build dependencies for %s installed\n", ui.OKTag(), args[0])
	return nil
}
