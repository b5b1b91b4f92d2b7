package entries

import (
	"errors"
	"strings"
)

// defaultPrefix is used by header emitters when the file has no `!prefix` line.
const defaultPrefix = "unknown"

// Param is one `<type> <name>` pair of a signature.
type Param struct {
	Type string
	Name string
}

// Entry is a single entry point declaration.
// Params is empty exactly when the source signature was `(void)`.
type Entry struct {
	Name       string
	ReturnType string
	Params     []Param
}

// ReturnsVoid reports whether the entry has no return value.
func (e Entry) ReturnsVoid() bool { return e.ReturnType == "void" }

// Parameters returns the declaration list, e.g. "GLsizei n, GLuint* buffers".
func (e Entry) Parameters() string {
	parts := make([]string, len(e.Params))
	for i, p := range e.Params {
		parts[i] = p.Type + " " + p.Name
	}
	return strings.Join(parts, ", ")
}

// CallArgs returns the argument list used to forward a call, e.g. "n, buffers".
func (e Entry) CallArgs() string {
	return strings.Join(e.ParamNames(), ", ")
}

func (e Entry) ParamNames() []string {
	names := make([]string, len(e.Params))
	for i, p := range e.Params {
		names[i] = p.Name
	}
	return names
}

func (e Entry) ParamTypes() []string {
	types := make([]string, len(e.Params))
	for i, p := range e.Params {
		types[i] = p.Type
	}
	return types
}

// HasParam reports whether a parameter is literally named name.
func (e Entry) HasParam(name string) bool {
	for _, p := range e.Params {
		if p.Name == name {
			return true
		}
	}
	return false
}

// File is the result of parsing one entries file.
// Entries keep declaration order; every emitter relies on it.
type File struct {
	Entries    []Entry
	Prefix     string
	Verbatim   []string
	Namespaces []string
	Errors     []*LineError
}

// PrefixName returns the `!prefix` value, or "unknown" when none was given.
func (f *File) PrefixName() string {
	if f.Prefix == "" {
		return defaultPrefix
	}
	return f.Prefix
}

// Err joins all recorded line errors. It returns nil for a valid file.
func (f *File) Err() error {
	if len(f.Errors) == 0 {
		return nil
	}
	errs := make([]error, len(f.Errors))
	for i, e := range f.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}
