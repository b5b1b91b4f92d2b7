package main

import (
	"errors"
	"os"

	"gen-entries/pkg/lib"
)

func main() {
	err := newRootCommand(os.Args).Execute()
	switch {
	case errors.Is(err, errParseFailed):
		// Each line error has already been reported.
		os.Exit(1)
	case err != nil:
		lib.Exit(err)
	}
}
