package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gen-entries/cmd/gen-entries/emit"
)

var errMissingMode = errors.New("please use --mode=<name>, see --help")

// generateOptions holds the root command's local flags.
type generateOptions struct {
	mode   modeFlag
	output string
}

// newRootCommand builds the command tree. argv is the full command line,
// quoted in the banner of generated files.
func newRootCommand(argv []string) *cobra.Command {
	global := &globalOptions{}
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   appName + " --mode=<mode> [flags] <file|-->",
		Short: "Generate entry point glue code from an entries file",
		Long: "Parse an entries file (one C function signature per line plus !prefix,\n" +
			"%verbatim and namespaces directives) and print the selected artifact.\n\n" +
			"Modes:\n" + modeSummary() + "\n" +
			"Use -- (or -) instead of a path to read standard input.",
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return []string{"entries"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, global, opts, emit.BannerCommand(argv), args)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	registerModeFlag(cmd, &opts.mode, "artifact to generate (required, see '"+appName+" modes')")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "",
		"write to this file instead of stdout (only created on success)")
	global.register(cmd.PersistentFlags())

	cmd.AddCommand(newModesCommand())
	cmd.AddCommand(newBrowseCommand(global))
	cmd.AddCommand(newConfigCommand())
	return cmd
}

func runGenerate(cmd *cobra.Command, global *globalOptions, opts *generateOptions, banner string, args []string) error {
	if !opts.mode.set {
		return errMissingMode
	}
	mode := opts.mode.mode

	log := newLogger(global.verbose, cmd.ErrOrStderr())
	defer func() { _ = log.Sync() }()

	name, f, err := readEntries(cmd, args)
	if err != nil {
		return err
	}
	log.Debug("parsed entries",
		zap.String("file", name),
		zap.String("prefix", f.PrefixName()),
		zap.Int("entries", len(f.Entries)),
		zap.Strings("namespaces", f.Namespaces))

	tables, err := global.tables(mode, log)
	if err != nil {
		return err
	}

	out, err := emit.Emit(f, mode, tables, emit.Options{Filename: name, Banner: banner})
	if err != nil {
		return err
	}
	if err := writeOutput(cmd.OutOrStdout(), opts.output, out); err != nil {
		return err
	}
	log.Debug("generated", zap.Stringer("mode", mode), zap.Int("bytes", len(out)))
	return nil
}

// writeOutput writes the whole artifact at once, to path or to stdout when
// path is empty.
func writeOutput(stdout io.Writer, path, out string) error {
	if path == "" {
		_, err := io.WriteString(stdout, out)
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// modeSummary renders the mode list for --help.
func modeSummary() string {
	var b strings.Builder
	width := 0
	for _, m := range emit.Modes() {
		width = max(width, len(m.String()))
	}
	for _, m := range emit.Modes() {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, m, m.Description())
	}
	return b.String()
}
