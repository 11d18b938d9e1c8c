package main

import (
	"os"

	"github.com/rubyops/rvmkit/cmd/rvmkit/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
