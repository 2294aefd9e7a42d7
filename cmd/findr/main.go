// Command findr tracks job candidates from the terminal.
package main

import (
	"os"

	"github.com/allanrobert0203/tp/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
