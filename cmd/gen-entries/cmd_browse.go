package main

import (
	"errors"
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"gen-entries/cmd/gen-entries/emit"
	"gen-entries/cmd/gen-entries/entries"
	"gen-entries/cmd/gen-entries/overrides"
)

func newBrowseCommand(global *globalOptions) *cobra.Command {
	mode := modeFlag{mode: emit.ModeTranslatorPassthrough, set: true}

	cmd := &cobra.Command{
		Use:   "browse <file|-->",
		Short: "Fuzzy-find an entry and preview its generated code",
		Long: "Open an interactive finder over the entries of a file. The preview pane\n" +
			"shows what --mode generates for the highlighted entry. The chosen entry's\n" +
			"declaration is printed on exit.",
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return []string{"entries"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(global.verbose, cmd.ErrOrStderr())
			defer func() { _ = log.Sync() }()

			name, f, err := readEntries(cmd, args)
			if err != nil {
				return err
			}
			if len(f.Entries) == 0 {
				return fmt.Errorf("%s: no entries to browse", name)
			}
			tables, err := global.tables(mode.mode, log)
			if err != nil {
				return err
			}

			idx, err := fuzzyfinder.Find(
				f.Entries,
				func(i int) string {
					return f.Entries[i].Name
				},
				fuzzyfinder.WithPromptString(mode.String()+"> "),
				fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
					if i < 0 {
						return ""
					}
					return previewEntry(f, i, mode.mode, tables, name)
				}),
			)
			if errors.Is(err, fuzzyfinder.ErrAbort) {
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), declaration(f.Entries[idx]))
			return nil
		},
	}

	registerModeFlag(cmd, &mode, "artifact shown in the preview pane")
	return cmd
}

// previewEntry generates mode's output for the i-th entry alone, keeping the
// file's prefix, verbatim lines and namespaces.
func previewEntry(f *entries.File, i int, mode emit.Mode, tables overrides.Tables, filename string) string {
	single := &entries.File{
		Entries:    []entries.Entry{f.Entries[i]},
		Prefix:     f.Prefix,
		Verbatim:   f.Verbatim,
		Namespaces: f.Namespaces,
	}
	out, err := emit.Emit(single, mode, tables, emit.Options{Filename: filename, Banner: appName + " browse"})
	if err != nil {
		return err.Error()
	}
	return out
}

// declaration renders e back in entries file syntax.
func declaration(e entries.Entry) string {
	return fmt.Sprintf("%s %s(%s);", e.ReturnType, e.Name, e.Parameters())
}
