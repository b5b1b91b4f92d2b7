package overrides

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidObject = errors.New("invalid global object")
	ErrDuplicateKey  = errors.New("duplicate global object")
)

//go:embed defaults.yml
var defaultsYAML []byte

// yamlTables mirrors Tables with YAML tags. Sets are plain lists and global
// objects a list of records so the file stays readable.
type yamlTables struct {
	Pre             map[string]string  `yaml:"pre,omitempty"`
	Post            map[string]string  `yaml:"post,omitempty"`
	ShareProcessing map[string]string  `yaml:"share_processing,omitempty"`
	NoPassthrough   []string           `yaml:"no_passthrough,omitempty"`
	FailCodes       map[string]string  `yaml:"fail_codes,omitempty"`
	ExternC         []string           `yaml:"extern_c,omitempty"`
	GlobalObjects   []yamlGlobalObject `yaml:"global_objects,omitempty"`
}

type yamlGlobalObject struct {
	Type     string `yaml:"type"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Accessor string `yaml:"accessor"`
}

// Parse decodes an overrides document. Unknown keys are rejected; an empty
// document yields empty tables.
func Parse(in []byte) (Tables, error) {
	dec := yaml.NewDecoder(bytes.NewReader(in))
	dec.KnownFields(true)

	var yt yamlTables
	if err := dec.Decode(&yt); err != nil && !errors.Is(err, io.EOF) {
		return Tables{}, err
	}
	return convertTables(yt)
}

func convertTables(yt yamlTables) (Tables, error) {
	t := Tables{
		Pre:             trimSnippets(yt.Pre),
		Post:            trimSnippets(yt.Post),
		ShareProcessing: trimSnippets(yt.ShareProcessing),
		NoPassthrough:   setOf(yt.NoPassthrough),
		FailCodes:       yt.FailCodes,
		ExternC:         setOf(yt.ExternC),
		GlobalObjects:   make(map[ObjectKey]GlobalObject, len(yt.GlobalObjects)),
	}
	for i, g := range yt.GlobalObjects {
		if g.Type == "" || g.Name == "" || g.Category == "" || g.Accessor == "" {
			return Tables{}, fmt.Errorf("global_objects[%d]: %w: type, name, category and accessor are required", i, ErrInvalidObject)
		}
		key := ObjectKey{Type: g.Type, Name: g.Name}
		if _, exists := t.GlobalObjects[key]; exists {
			return Tables{}, fmt.Errorf("global_objects[%d]: %w: (%s, %s)", i, ErrDuplicateKey, g.Type, g.Name)
		}
		t.GlobalObjects[key] = GlobalObject{Category: g.Category, Accessor: g.Accessor}
	}
	return t, nil
}

// trimSnippets drops the trailing newline that YAML block scalars carry; the
// emitter terminates every snippet itself.
func trimSnippets(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = strings.TrimRight(v, "\n")
	}
	return out
}

var parseDefaults = sync.OnceValues(func() (Tables, error) {
	return Parse(defaultsYAML)
})

// Default returns the built-in GLES translator tables.
// It panics if the embedded defaults are malformed.
func Default() Tables {
	t, err := parseDefaults()
	if err != nil {
		panic(fmt.Sprintf("overrides: embedded defaults: %v", err))
	}
	return Tables{}.Merge(t)
}

// DefaultYAML returns the embedded defaults document, used to seed user config.
func DefaultYAML() []byte {
	return bytes.Clone(defaultsYAML)
}
