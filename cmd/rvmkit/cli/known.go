package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var knownCmd = &cobra.Command{
	Use:   "known",
	Short: "List rubies rvm knows how to install",
	Long:  `Show every ruby string rvm can install, whether or not it is installed.`,
	RunE:  runKnown,
}

func init() {
	rootCmd.AddCommand(knownCmd)
}

func runKnown(cmd *cobra.Command, args []string) error {
	rubies, err := newClient().KnownStrings(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(rubies)
	}

	for _, r := range rubies {
		fmt.Println(r)
	}
	return nil
}
