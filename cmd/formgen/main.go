// Command formgen validates, renders, serves, and fills YAML survey forms.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "formgen: %v\n", err)
		}
		os.Exit(1)
	}
}
