package emit

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMode = errors.New("unknown mode")

// Mode selects the generated artifact.
type Mode int

const (
	ModeDef Mode = iota
	ModeSym
	ModeTranslatorPassthrough
	ModeWrapper
	ModeSymbols
	ModeUnderscoreSymbols
	ModeFunctions
	ModeFuncArgs
	ModeNamespacedHeader
	ModeNamespacedStubs
)

type modeInfo struct {
	name string
	help string
}

// Indexed by Mode; order is the order shown by `modes` and --help.
var modeTable = [...]modeInfo{
	ModeDef:                   {"def", "Generate a windows DLL .def file."},
	ModeSym:                   {"sym", "Generate a Unix .so linker script."},
	ModeTranslatorPassthrough: {"translator_passthrough", "Generate host translator passthrough function bodies."},
	ModeWrapper:               {"wrapper", "Generate a C source file containing wrapper functions."},
	ModeSymbols:               {"symbols", "Generate a simple list of symbols, one per line."},
	ModeUnderscoreSymbols:     {"_symbols", "Generate a simple list of symbols, prefixed with _."},
	ModeFunctions:             {"functions", "Generate a C header containing a macro listing all functions."},
	ModeFuncArgs:              {"funcargs", "Like 'functions', but adds function call arguments to listing."},
	ModeNamespacedHeader:      {"static_translator_namespaced_header", "Generate C++ header with namespaced versions of the api declarations."},
	ModeNamespacedStubs:       {"static_translator_namespaced_stubs", "Generate C++ namespaced stub definitions of the api."},
}

func (m Mode) valid() bool { return m >= 0 && int(m) < len(modeTable) }

// String returns the CLI name of the mode.
func (m Mode) String() string {
	if !m.valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeTable[m].name
}

// Description returns a one-line summary of what the mode generates.
func (m Mode) Description() string {
	if !m.valid() {
		return ""
	}
	return modeTable[m].help
}

// Modes returns every mode in CLI order.
func Modes() []Mode {
	out := make([]Mode, len(modeTable))
	for i := range modeTable {
		out[i] = Mode(i)
	}
	return out
}

// ModeNames returns the CLI names of all modes.
func ModeNames() []string {
	names := make([]string, len(modeTable))
	for i, info := range modeTable {
		names[i] = info.name
	}
	return names
}

// ParseMode maps a CLI name to its Mode.
func ParseMode(name string) (Mode, error) {
	for i, info := range modeTable {
		if info.name == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q (available: %s)", ErrUnknownMode, name, strings.Join(ModeNames(), ", "))
}
