// Command memodemo renders the memoization demo in the terminal.
package main

import (
	"os"

	"github.com/go-drift/memodemo/cmd/memodemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
