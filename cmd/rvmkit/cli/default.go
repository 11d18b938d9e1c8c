package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var defaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the default ruby",
	Long:  `Show the ruby string rvm uses when nothing else is selected.`,
	RunE:  runDefault,
}

func init() {
	rootCmd.AddCommand(defaultCmd)
}

func runDefault(cmd *cobra.Command, args []string) error {
	def, err := newClient().DefaultString(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(map[string]string{"default": def})
	}

	if def == "" {
		fmt.Println("No default ruby set")
		return nil
	}
	fmt.Println(def)
	return nil
}
