package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gen-entries/cmd/gen-entries/overrides"
)

const starterOverridesYAML = `# gen-entries translator overrides
# -----------------------------------------------------------------------------
# Every *.yml file in this directory is layered over the built-in tables, in
# name order. Later files win per key. The built-in tables are in
# ../reference/defaults.yml.
#
# pre:               code inserted after argument validation
# post:              code inserted after the dispatcher call
# share_processing:  replaces the share group guard and name lookups
# no_passthrough:    entries that never call the dispatcher
# fail_codes:        value returned on error (default 0)
# extern_c:          entries defined with C linkage
# global_objects:    parameters mapped to share group names
# -----------------------------------------------------------------------------

# pre:
#   glBindTexture: |
#     if (target == GL_TEXTURE_EXTERNAL_OES) target = GL_TEXTURE_2D;
# post:
#   glBindTexture: |
#     ctx->setBindedTexture(target, texture);
# fail_codes:
#   glIsTexture: GL_FALSE
# global_objects:
#   - type: GLuint
#     name: renderbuffer
#     category: NamedObjectType::RENDERBUFFER
#     accessor: globalRenderbufferName
`

const referenceHeader = "# Built-in translator tables, for reference only.\n" +
	"# This file is not loaded; copy entries into ../overrides/ to change them.\n\n"

// confirmFunc asks whether path may be overwritten. A nil confirmFunc means
// nobody can be asked.
type confirmFunc func(path string) (bool, error)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the " + appName + " config directory",
		Long:  "Commands for initialising the " + appName + " config directory.",
	}
	cmd.AddCommand(newConfigInitCommand(terminalConfirm()))
	return cmd
}

func newConfigInitCommand(confirm confirmFunc) *cobra.Command {
	var (
		force bool
		dir   string
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialise the config directory with a starter overrides file",
		Long: "Create the " + appName + " config directory and populate it with a\n" +
			"commented overrides file and a copy of the built-in tables.\n\n" +
			"Files created:\n" +
			"  <config>/overrides/overrides.yml  layered over the built-in tables\n" +
			"  <config>/reference/defaults.yml   built-in tables, not loaded\n\n" +
			"The default config directory follows the same priority as the main command:\n" +
			"  $" + envConfigDir + " > $XDG_CONFIG_HOME/" + appName + " > ~/.config/" + appName + "\n\n" +
			"Existing files are kept unless --force is given or the overwrite is\n" +
			"confirmed interactively.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				var err error
				dir, err = resolveConfigDir()
				if err != nil {
					return err
				}
			}

			files := []struct {
				path    string
				content []byte
			}{
				{filepath.Join(dir, "overrides", "overrides.yml"), []byte(starterOverridesYAML)},
				{filepath.Join(dir, "reference", "defaults.yml"), append([]byte(referenceHeader), overrides.DefaultYAML()...)},
			}

			stderr := cmd.ErrOrStderr()
			for _, f := range files {
				written, err := writeInitFile(f.path, f.content, force, confirm)
				if err != nil {
					return err
				}
				if written {
					fmt.Fprintf(stderr, "wrote %s\n", f.path)
				} else {
					fmt.Fprintf(stderr, "kept %s\n", f.path)
				}
			}
			fmt.Fprintf(stderr, "\nRun `%s --mode=translator_passthrough --verbose <file>` to see which overrides load.\n", appName)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	cmd.Flags().StringVar(&dir, "dir", "", "target config directory (default: auto-resolved)")
	return cmd
}

// writeInitFile creates path and its parent directory. An existing file is
// replaced only with force or a positive confirmation. It reports whether the
// file was written.
func writeInitFile(path string, content []byte, force bool, confirm confirmFunc) (bool, error) {
	if !force {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if confirm == nil {
				return false, fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			ok, err := confirm(path)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		case !errors.Is(err, os.ErrNotExist):
			return false, fmt.Errorf("checking %s: %w", path, err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return false, fmt.Errorf("creating %s: %w", path, err)
	}
	return true, nil
}

// terminalConfirm returns a huh prompt when stdin is a terminal, nil otherwise.
func terminalConfirm() confirmFunc {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	return func(path string) (bool, error) {
		overwrite := false
		err := huh.NewConfirm().
			Title(path + " already exists").
			Description("Overwrite it?").
			Affirmative("Overwrite").
			Negative("Keep").
			Value(&overwrite).
			Run()
		return overwrite, err
	}
}
