// Package emit turns a parsed entries file into generated source text.
//
// Every emitter is a pure function of its inputs: the same file, mode, tables
// and options always produce byte-identical output.
package emit

import (
	"bytes"
	"fmt"
	"strings"

	"gen-entries/cmd/gen-entries/entries"
	"gen-entries/cmd/gen-entries/overrides"
)

// toolName replaces argv[0] in banners so output does not depend on where the
// binary was installed.
const toolName = "gen-entries"

// Options carries invocation details that leak into generated text.
type Options struct {
	// Filename is the display name of the input. Names containing "gles"
	// select the GL declaration macros, anything else the EGL ones.
	Filename string
	// Banner is the command line quoted in "Auto-generated with:" headers.
	Banner string
}

// BannerCommand returns the sanitized command line for args (usually os.Args).
func BannerCommand(args []string) string {
	if len(args) == 0 {
		return toolName
	}
	argv := append([]string{toolName}, args[1:]...)
	return strings.Join(argv, " ")
}

type generator struct {
	buf    bytes.Buffer
	file   *entries.File
	tables overrides.Tables
	opts   Options
}

// Emit generates the artifact selected by mode.
func Emit(f *entries.File, mode Mode, tables overrides.Tables, opts Options) (string, error) {
	g := &generator{file: f, tables: tables, opts: opts}

	switch mode {
	case ModeDef:
		g.defFile()
	case ModeSym:
		g.symFile()
	case ModeTranslatorPassthrough:
		g.translator()
	case ModeWrapper:
		g.dllWrapper()
	case ModeSymbols:
		g.symbols(false)
	case ModeUnderscoreSymbols:
		g.symbols(true)
	case ModeFunctions:
		g.functionsHeader(false)
	case ModeFuncArgs:
		g.functionsHeader(true)
	case ModeNamespacedHeader:
		g.namespacedHeader()
	case ModeNamespacedStubs:
		g.namespacedStubs()
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}

	return g.buf.String(), nil
}

func (g *generator) printf(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

func (g *generator) println(s string) {
	g.buf.WriteString(s)
	g.buf.WriteByte('\n')
}

func (g *generator) banner() {
	g.printf("// Auto-generated with: %s\n", g.bannerCommand())
}

func (g *generator) bannerCommand() string {
	if g.opts.Banner == "" {
		return toolName
	}
	return g.opts.Banner
}

func (g *generator) verbatim() {
	for _, line := range g.file.Verbatim {
		g.println(line)
	}
}

// isGLES reports whether the input file describes a GLES (rather than EGL) API.
func (g *generator) isGLES() bool {
	return strings.Contains(g.opts.Filename, "gles")
}
