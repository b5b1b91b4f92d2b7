package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gen-entries/cmd/gen-entries/entries"
	"gen-entries/pkg/lib"
)

// stdinName is the display name of standard input in messages and in the
// gles/egl filename check.
const stdinName = "<stdin>"

var (
	errMissingInput = errors.New("missing input file: pass a path, or -- to read standard input")
	// errParseFailed is returned after the line errors have been printed.
	errParseFailed = errors.New("entries file has errors")
)

// openInput resolves the positional argument. A lone "--" or "-" selects
// standard input.
func openInput(cmd *cobra.Command, args []string) (string, io.ReadCloser, error) {
	switch {
	case len(args) == 1 && args[0] != "-":
		f, err := os.Open(args[0])
		if err != nil {
			return "", nil, fmt.Errorf("opening input: %w", err)
		}
		return args[0], f, nil
	case len(args) == 1 || cmd.ArgsLenAtDash() == 0:
		return stdinName, io.NopCloser(cmd.InOrStdin()), nil
	}
	return "", nil, errMissingInput
}

// readEntries opens and parses the input. Line errors are printed to the
// command's stderr and collapse into errParseFailed.
func readEntries(cmd *cobra.Command, args []string) (string, *entries.File, error) {
	name, in, err := openInput(cmd, args)
	if err != nil {
		return "", nil, err
	}
	defer in.Close()

	f, err := entries.Parse(in)
	if err != nil {
		return "", nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(f.Errors) > 0 {
		for _, lineErr := range f.Errors {
			lib.PrintError(cmd.ErrOrStderr(), name+":"+lineErr.Error())
		}
		return "", nil, errParseFailed
	}
	return name, f, nil
}
