package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed rubies",
	Long:  `Show every ruby string rvm reports as installed.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	rubies, err := newClient().InstalledStrings(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(rubies)
	}

	if len(rubies) == 0 {
		fmt.Println("No rubies installed")
		return nil
	}
	for _, r := range rubies {
		fmt.Println(r)
	}
	return nil
}
