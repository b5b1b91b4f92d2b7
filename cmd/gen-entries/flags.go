package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"gen-entries/cmd/gen-entries/emit"
	"gen-entries/cmd/gen-entries/overrides"
)

// modeFlag is a pflag.Value over emit.Mode. Unknown names are rejected while
// flags are parsed.
type modeFlag struct {
	mode emit.Mode
	set  bool
}

var _ pflag.Value = (*modeFlag)(nil)

func (f *modeFlag) String() string {
	if !f.set {
		return ""
	}
	return f.mode.String()
}

func (f *modeFlag) Set(name string) error {
	m, err := emit.ParseMode(name)
	if err != nil {
		return err
	}
	f.mode, f.set = m, true
	return nil
}

func (f *modeFlag) Type() string { return "mode" }

// registerModeFlag adds --mode to cmd with shell completion of mode names.
func registerModeFlag(cmd *cobra.Command, f *modeFlag, usage string) {
	cmd.Flags().Var(f, "mode", usage)
	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return emit.ModeNames(), cobra.ShellCompDirectiveNoFileComp
	})
}

// globalOptions are the persistent flags shared by the root command and the
// subcommands that generate code.
type globalOptions struct {
	overrideFiles   []string
	noUserOverrides bool
	verbose         bool
}

func (g *globalOptions) register(fs *pflag.FlagSet) {
	fs.StringArrayVar(&g.overrideFiles, "overrides", nil,
		"translator override YAML file (repeatable; layered over ~/.config/"+appName+"/overrides/*.yml)")
	fs.BoolVar(&g.noUserOverrides, "no-user-overrides", false,
		"ignore the config directory and $"+envOverrides+"; use only built-in tables and --overrides")
	fs.BoolVarP(&g.verbose, "verbose", "v", false, "log progress to stderr")
}

// tables loads the override tables for mode. Only the translator consults
// them, so other modes never touch override files.
func (g *globalOptions) tables(mode emit.Mode, log *zap.Logger) (overrides.Tables, error) {
	if mode != emit.ModeTranslatorPassthrough {
		return overrides.Tables{}, nil
	}
	files, err := resolveOverrideFiles(g.overrideFiles, g.noUserOverrides)
	if err != nil {
		return overrides.Tables{}, err
	}
	return loadTables(files, log)
}
