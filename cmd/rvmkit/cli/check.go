package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rubyops/rvmkit/internal/rubie"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <ruby>",
	Short: "Show everything rvmkit knows about a ruby string",
	Long: `Check a ruby string against the local rvm installation.

Reports how the string parses (ruby, gemset, family), whether it looks
like a real ruby at all, and whether rvm has it installed, knows how to
install it, uses it as the default, and has its gemset environment.

Examples:
  rvmkit check ruby-3.2.2
  rvmkit check jruby-9.4.5.0@myapp
  rvmkit check default@migrations`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

type checkReport struct {
	Input       string `json:"input"`
	Normalized  string `json:"normalized"`
	Plausible   bool   `json:"plausible"`
	Ruby        string `json:"ruby"`
	Gemset      string `json:"gemset,omitempty"`
	Family      string `json:"family"`
	Installed   bool   `json:"installed"`
	Known       bool   `json:"known"`
	Default     bool   `json:"default"`
	Environment bool   `json:"environment"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	client := newClient()

	normalized, err := client.Normalize(ctx, args[0])
	if err != nil {
		return err
	}

	report := checkReport{
		Input:      args[0],
		Normalized: normalized,
		Plausible:  rubie.Plausible(normalized),
		Ruby:       rubie.Ruby(normalized),
		Family:     rubie.Classify(normalized).String(),
	}
	report.Gemset, _ = rubie.Gemset(normalized)

	if report.Installed, err = client.Installed(ctx, normalized); err != nil {
		return err
	}
	if report.Known, err = client.Known(ctx, normalized); err != nil {
		return err
	}
	if report.Default, err = client.Default(ctx, normalized); err != nil {
		return err
	}
	if report.Environment, err = client.EnvironmentExists(ctx, normalized); err != nil {
		return err
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(report)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Input:\t%s\n", report.Input)
	if report.Normalized != report.Input {
		fmt.Fprintf(w, "Normalized:\t%s\n", report.Normalized)
	}
	fmt.Fprintf(w, "Plausible:\t%s\n", yesNo(report.Plausible))
	fmt.Fprintf(w, "Ruby:\t%s\n", report.Ruby)
	if report.Gemset != "" {
		fmt.Fprintf(w, "Gemset:\t%s\n", report.Gemset)
	}
	fmt.Fprintf(w, "Family:\t%s\n", report.Family)
	fmt.Fprintf(w, "Installed:\t%s\n", yesNo(report.Installed))
	fmt.Fprintf(w, "Known:\t%s\n", yesNo(report.Known))
	fmt.Fprintf(w, "Default:\t%s\n", yesNo(report.Default))
	fmt.Fprintf(w, "Environment:\t%s\n", yesNo(report.Environment))
	return w.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
