package main

import (
	"fmt"
	"os"

	"github.com/louisgoodnews/webutils/internal/cli"
)

func main() {
	os.Exit(Main())
}

// Main runs the CLI and returns the process exit code.
func Main() int {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
