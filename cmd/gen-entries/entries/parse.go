package entries

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// namespacesKeyword introduces the namespace directive, e.g. `namespaces gles, v2`.
const namespacesKeyword = "namespaces"

const byteOrderMark = "\ufeff"

// Parse reads an entries file from r.
//
// Malformed lines do not stop parsing: they are recorded in File.Errors and the
// caller decides what to do with them. The returned error is only set when r
// itself fails.
func Parse(r io.Reader) (*File, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ParseLines(lines), nil
}

// ParseLines parses already split lines. Line numbers in errors are 1-based.
// A byte order mark at the start of the first line is skipped. Lines that are
// not valid UTF-8 are rejected rather than rewritten.
//
// Each trimmed line is classified in this order, first match wins:
//
//	<empty>                     ignored
//	#<comment>                  ignored
//	!<prefix>                   prefix name (last one wins)
//	%<verbatim>                 copied verbatim into generated headers
//	namespaces a, b             namespace list (last one wins)
//	<ret> <name>(<params>);     entry point declaration
func ParseLines(lines []string) *File {
	f := &File{}
	for i, raw := range lines {
		lineno := i + 1
		if i == 0 {
			raw = strings.TrimPrefix(raw, byteOrderMark)
		}
		if _, _, err := transform.String(encoding.UTF8Validator, raw); err != nil {
			f.Errors = append(f.Errors, &LineError{Line: lineno, Text: raw, Err: ErrBadEncoding})
			continue
		}
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			continue
		case line[0] == '#':
			continue
		case line[0] == '!':
			f.Prefix = line[1:]
			continue
		case line[0] == '%':
			f.Verbatim = append(f.Verbatim, line[1:])
			continue
		case strings.HasPrefix(line, namespacesKeyword):
			f.Namespaces = splitNamespaces(strings.TrimPrefix(line, namespacesKeyword))
			continue
		}

		entry, ok := parseEntry(line, lineno, f)
		if ok {
			f.Entries = append(f.Entries, entry)
		}
	}
	return f
}

// parseEntry parses a signature line. Errors are appended to f; the entry is
// only valid when every one of its parameters is.
func parseEntry(line string, lineno int, f *File) (Entry, bool) {
	ret, name, params, ok := splitSignature(line)
	if !ok {
		f.Errors = append(f.Errors, &LineError{Line: lineno, Text: line, Err: ErrBadSignature})
		return Entry{}, false
	}

	entry := Entry{Name: name, ReturnType: ret}
	if params == "void" {
		return entry, true
	}
	for _, text := range strings.Split(params, ",") {
		text = strings.TrimSpace(text)
		p, ok := splitParam(text)
		if !ok {
			f.Errors = append(f.Errors, &LineError{Line: lineno, Text: text, Err: ErrBadParameter})
			return Entry{}, false
		}
		entry.Params = append(entry.Params, p)
	}
	return entry, true
}

// splitSignature splits `<ret>[ *]<ident>(<params>);`.
//
// The return type extends greedily up to the last space or '*' that precedes
// a function name followed by '(' so return types such as "const char *"
// keep their inner spaces.
func splitSignature(line string) (ret, name, params string, ok bool) {
	body, found := strings.CutSuffix(line, ");")
	if !found {
		return "", "", "", false
	}
	for k := strings.LastIndexByte(body, '('); k >= 0; k = strings.LastIndexByte(body[:k], '(') {
		p := k
		for p > 0 && isIdentByte(body[p-1]) {
			p--
		}
		if p == k || p == 0 || !isIdentStart(body[p]) || !isSplitByte(body[p-1]) {
			continue
		}
		return strings.TrimSpace(body[:p]), body[p:k], strings.TrimSpace(body[k+1:]), true
	}
	return "", "", "", false
}

// splitParam splits `<type>[ *]<name>`, where name may carry array brackets.
func splitParam(s string) (Param, bool) {
	p := len(s)
	for p > 0 && (isIdentByte(s[p-1]) || s[p-1] == '[' || s[p-1] == ']') {
		p--
	}
	if p == len(s) || p == 0 || !isIdentStart(s[p]) || !isSplitByte(s[p-1]) {
		return Param{}, false
	}
	return Param{Type: strings.TrimSpace(s[:p]), Name: s[p:]}, true
}

func splitNamespaces(s string) []string {
	var out []string
	for _, ns := range strings.Split(s, ",") {
		if ns = strings.TrimSpace(ns); ns != "" {
			out = append(out, ns)
		}
	}
	return out
}

func isSplitByte(c byte) bool { return c == ' ' || c == '*' }

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentByte(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}
