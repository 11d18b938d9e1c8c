package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rubyops/rvmkit/internal/config"
	"github.com/rubyops/rvmkit/internal/rubie"
	"github.com/rubyops/rvmkit/internal/rvm"
	"github.com/rubyops/rvmkit/internal/ui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the project manifest against rvm",
	Long: `Read rvmkit.yaml from the current directory and report whether every
ruby and gemset environment it lists exists, and whether the requested
default is set.

Exits non-zero when anything is missing, so it can gate provisioning
steps and CI jobs.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

type statusEntry struct {
	Ruby       string `json:"ruby"`
	Normalized string `json:"normalized,omitempty"`
	Satisfied  bool   `json:"satisfied"`
	Detail     string `json:"detail"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	manifest, err := config.LoadManifest(cwd)
	if err != nil {
		return err
	}
	if manifest == nil {
		fmt.Println("No rvmkit.yaml manifest in the current directory")
		return nil
	}

	entries, defaultEntry, missing, err := evaluateManifest(cmd.Context(), newClient(), manifest)
	if err != nil {
		return err
	}

	if jsonOut {
		out := struct {
			Entries []statusEntry `json:"entries"`
			Default *statusEntry  `json:"default,omitempty"`
			Missing int           `json:"missing"`
		}{entries, defaultEntry, missing}
		if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
			return err
		}
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "RUBY\tSTATUS")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s %s\n", e.Ruby, statusTag(e.Satisfied), e.Detail)
		}
		if defaultEntry != nil {
			fmt.Fprintf(w, "%s\t%s %s\n", defaultEntry.Ruby, statusTag(defaultEntry.Satisfied), defaultEntry.Detail)
		}
		w.Flush()
	}

	if missing > 0 {
		total := len(entries)
		if defaultEntry != nil {
			total++
		}
		return fmt.Errorf("%d of %d manifest entries unsatisfied", missing, total)
	}
	return nil
}

// evaluateManifest checks every manifest entry against rvm. An entry that
// cannot resolve its "default" alias counts as unsatisfied rather than
// aborting the report; genuine rvm failures abort.
func evaluateManifest(ctx context.Context, client *rvm.Client, manifest *config.Manifest) (entries []statusEntry, defaultEntry *statusEntry, missing int, err error) {
	for _, r := range manifest.Rubies {
		entry := statusEntry{Ruby: r}

		normalized, err := client.Normalize(ctx, r)
		if err != nil {
			var noDefault *rvm.NoDefaultError
			if !errors.As(err, &noDefault) {
				return nil, nil, 0, err
			}
			entry.Detail = "no default ruby to resolve against"
			missing++
			entries = append(entries, entry)
			continue
		}
		if normalized != r {
			entry.Normalized = normalized
		}

		ok, err := client.EnvironmentExists(ctx, normalized)
		if err != nil {
			return nil, nil, 0, err
		}
		entry.Satisfied = ok
		switch {
		case ok && rubie.HasGemset(normalized):
			entry.Detail = "environment exists"
		case ok:
			entry.Detail = "installed"
		case rubie.HasGemset(normalized):
			entry.Detail = "environment missing"
		default:
			entry.Detail = "not installed"
		}
		if !ok {
			missing++
		}
		entries = append(entries, entry)
	}

	if manifest.Default != "" {
		entry := statusEntry{Ruby: manifest.Default}
		ok, err := client.Default(ctx, manifest.Default)
		if err != nil {
			return nil, nil, 0, err
		}
		entry.Satisfied = ok
		if ok {
			entry.Detail = "default"
		} else {
			entry.Detail = "not the default"
			missing++
		}
		defaultEntry = &entry
	}

	return entries, defaultEntry, missing, nil
}

func statusTag(ok bool) string {
	if ok {
		return ui.OKTag()
	}
	return ui.FailTag()
}
