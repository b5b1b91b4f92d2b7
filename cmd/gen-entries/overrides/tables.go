package overrides

import (
	"maps"
	"sort"
)

// defaultFailCode is returned on error paths when FailCodes has no entry.
const defaultFailCode = "0"

// ObjectKey identifies a parameter by its declared type and name.
type ObjectKey struct {
	Type string
	Name string
}

// GlobalObject tells the translator how to map a context-local handle to its
// share-group global name.
type GlobalObject struct {
	Category string // e.g. NamedObjectType::TEXTURE
	Accessor string // local variable holding the resolved name
}

// Tables holds per-function customisations for the translator emitter.
//
// A Tables value is never modified after it is built: Merge returns a fresh
// copy, so a value may be shared between emitters freely.
type Tables struct {
	Pre             map[string]string
	Post            map[string]string
	ShareProcessing map[string]string
	NoPassthrough   map[string]struct{}
	FailCodes       map[string]string
	ExternC         map[string]struct{}
	GlobalObjects   map[ObjectKey]GlobalObject
}

// PreSnippet returns the code injected after argument validation.
func (t Tables) PreSnippet(name string) (string, bool) {
	s, ok := t.Pre[name]
	return s, ok
}

// PostSnippet returns the code injected after the dispatch call.
func (t Tables) PostSnippet(name string) (string, bool) {
	s, ok := t.Post[name]
	return s, ok
}

// ShareSnippet returns the code replacing the share group guard and name lookups.
func (t Tables) ShareSnippet(name string) (string, bool) {
	s, ok := t.ShareProcessing[name]
	return s, ok
}

func (t Tables) IsNoPassthrough(name string) bool {
	_, ok := t.NoPassthrough[name]
	return ok
}

func (t Tables) IsExternC(name string) bool {
	_, ok := t.ExternC[name]
	return ok
}

// FailCode returns the literal returned by name on error paths ("0" by default).
func (t Tables) FailCode(name string) string {
	if c, ok := t.FailCodes[name]; ok {
		return c
	}
	return defaultFailCode
}

func (t Tables) GlobalObject(paramType, paramName string) (GlobalObject, bool) {
	g, ok := t.GlobalObjects[ObjectKey{Type: paramType, Name: paramName}]
	return g, ok
}

// Merge returns a new Tables holding t overlaid with other. Entries of other
// win when both define the same key.
func (t Tables) Merge(other Tables) Tables {
	return Tables{
		Pre:             mergeMap(t.Pre, other.Pre),
		Post:            mergeMap(t.Post, other.Post),
		ShareProcessing: mergeMap(t.ShareProcessing, other.ShareProcessing),
		NoPassthrough:   mergeMap(t.NoPassthrough, other.NoPassthrough),
		FailCodes:       mergeMap(t.FailCodes, other.FailCodes),
		ExternC:         mergeMap(t.ExternC, other.ExternC),
		GlobalObjects:   mergeMap(t.GlobalObjects, other.GlobalObjects),
	}
}

// Names returns every function name that has at least one customisation,
// sorted. Used for diagnostics.
func (t Tables) Names() []string {
	seen := map[string]struct{}{}
	for _, m := range []map[string]string{t.Pre, t.Post, t.ShareProcessing, t.FailCodes} {
		for k := range m {
			seen[k] = struct{}{}
		}
	}
	for _, m := range []map[string]struct{}{t.NoPassthrough, t.ExternC} {
		for k := range m {
			seen[k] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func mergeMap[K comparable, V any](base, over map[K]V) map[K]V {
	out := make(map[K]V, len(base)+len(over))
	maps.Copy(out, base)
	maps.Copy(out, over)
	return out
}

func setOf(names []string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}
