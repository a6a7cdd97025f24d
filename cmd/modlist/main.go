// Package main is the entry point for the modlist CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/moduledocs/modlist/internal/cmd"
	merrors "github.com/moduledocs/modlist/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *merrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already reported it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(merrors.ExitCodeFromError(err))
	}
}
