package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"text/tabwriter"

	"github.com/rubyops/rvmkit/internal/config"
	"github.com/rubyops/rvmkit/internal/doctor"
	"github.com/rubyops/rvmkit/internal/pkgmgr"
	"github.com/rubyops/rvmkit/internal/ui"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnostic information about the rvmkit environment",
	Long: `Inspect everything rvmkit depends on and report what it finds: the
build itself, the rvm installation, the host platform and its package
manager, and any manifest in the current directory.

Run it first when a query misbehaves.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	fmt.Println(ui.Bold("rvmkit doctor"))
	fmt.Println()

	reg := doctor.NewRegistry()
	reg.Register(&buildSection{})
	reg.Register(&rvmSection{ctx: cmd.Context()})
	reg.Register(&platformSection{})
	reg.Register(&manifestSection{})
	reg.Run(os.Stdout)

	return nil
}

// buildSection shows the rvmkit build and host platform.
type buildSection struct{}

func (s *buildSection) Name() string { return "Build" }

func (s *buildSection) Print(w io.Writer) error {
	b := currentBuild()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "rvmkit:\t%s\n", b.Version)
	if b.Commit != "" {
		fmt.Fprintf(tw, "Commit:\t%s\n", b.Commit)
	}
	if b.Go != "" {
		fmt.Fprintf(tw, "Go:\t%s\n", b.Go)
	}
	fmt.Fprintf(tw, "Host:\t%s/%s\n", runtime.GOOS, runtime.GOARCH)
	return tw.Flush()
}

// rvmSection shows where rvm lives and what it reports.
type rvmSection struct {
	ctx context.Context
}

func (s *rvmSection) Name() string { return "RVM" }

func (s *rvmSection) Print(w io.Writer) error {
	env := newEnv()

	bin, err := env.Binary()
	if err != nil {
		fmt.Fprintf(w, "%s %v\n", ui.FailTag(), err)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Binary:\t%s\n", bin)

	if v, err := env.Version(s.ctx); err == nil {
		fmt.Fprintf(tw, "Version:\t%s\n", v)
	}

	client := newClient()
	if installed, err := client.InstalledStrings(s.ctx); err == nil {
		fmt.Fprintf(tw, "Installed:\t%d rubies\n", len(installed))
	}
	if known, err := client.KnownStrings(s.ctx); err == nil {
		fmt.Fprintf(tw, "Known:\t%d rubies\n", len(known))
	}
	if def, err := client.DefaultString(s.ctx); err == nil {
		if def == "" {
			fmt.Fprintf(tw, "Default:\t%s not set\n", ui.Dim("—"))
		} else {
			fmt.Fprintf(tw, "Default:\t%s\n", def)
		}
	}

	return tw.Flush()
}

// platformSection shows the detected platform and its package manager.
type platformSection struct{}

func (s *platformSection) Name() string { return "Platform" }

func (s *platformSection) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	plat, err := resolvePlatform()
	if err != nil {
		fmt.Fprintf(tw, "Identifier:\t%s %v\n", ui.FailTag(), err)
		return tw.Flush()
	}
	fmt.Fprintf(tw, "Identifier:\t%s\n", plat)

	if mgr, err := pkgmgr.ForPlatform(plat, pkgmgr.Options{}); err == nil {
		fmt.Fprintf(tw, "Package manager:\t%s\n", mgr.Name())
	} else {
		fmt.Fprintf(tw, "Package manager:\t%s unsupported platform, deps commands will resolve nothing\n", ui.WarnTag())
	}

	return tw.Flush()
}

// manifestSection shows whether the current directory has a manifest.
type manifestSection struct{}

func (s *manifestSection) Name() string { return "Manifest" }

func (s *manifestSection) Print(w io.Writer) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	path := filepath.Join(cwd, "rvmkit.yaml")

	manifest, err := config.LoadManifest(cwd)
	switch {
	case err != nil:
		fmt.Fprintf(tw, "Manifest:\t%s %v\n", ui.FailTag(), err)
	case manifest == nil:
		fmt.Fprintf(tw, "Manifest:\tnot found (%s)\n", path)
	default:
		fmt.Fprintf(tw, "Manifest:\t%s %s (%d rubies)\n", ui.OKTag(), path, len(manifest.Rubies))
		if manifest.Default != "" {
			fmt.Fprintf(tw, "Default:\t%s\n", manifest.Default)
		}
	}

	return tw.Flush()
}
