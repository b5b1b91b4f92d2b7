package entries

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func mustContain(t *testing.T, got string, subs ...string) {
	t.Helper()
	for _, sub := range subs {
		if !strings.Contains(got, sub) {
			t.Fatalf("expected %q to contain %q", got, sub)
		}
	}
}

func parseText(t *testing.T, text string) *File {
	t.Helper()
	f, err := Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	return f
}

func requireNoErrors(t *testing.T, f *File) {
	t.Helper()
	if err := f.Err(); err != nil {
		t.Fatalf("unexpected parse errors: %v", err)
	}
}

func TestParse_ReferenceExample(t *testing.T) {
	f := parseText(t, `!mylib
%#include <stdint.h>
void myFunc(int a, int b);
int myOther(void);
`)
	requireNoErrors(t, f)

	if f.Prefix != "mylib" {
		t.Errorf("prefix: want %q, got %q", "mylib", f.Prefix)
	}
	if !reflect.DeepEqual(f.Verbatim, []string{"#include <stdint.h>"}) {
		t.Errorf("verbatim: got %q", f.Verbatim)
	}
	want := []Entry{
		{Name: "myFunc", ReturnType: "void", Params: []Param{{"int", "a"}, {"int", "b"}}},
		{Name: "myOther", ReturnType: "int"},
	}
	if !reflect.DeepEqual(f.Entries, want) {
		t.Errorf("entries:\nwant %+v\ngot  %+v", want, f.Entries)
	}
}

func TestParse_CommentsAndBlankLines(t *testing.T) {
	f := parseText(t, "\n# a comment\n   \n  # indented comment\nvoid glFlush(void);\n")
	requireNoErrors(t, f)
	if len(f.Entries) != 1 || f.Entries[0].Name != "glFlush" {
		t.Fatalf("expected glFlush only, got %+v", f.Entries)
	}
}

func TestParse_VoidParametersYieldEmptyList(t *testing.T) {
	for _, line := range []string{"GLenum glGetError(void);", "GLenum glGetError( void );"} {
		f := parseText(t, line)
		requireNoErrors(t, f)
		if n := len(f.Entries[0].Params); n != 0 {
			t.Errorf("%q: want 0 params, got %d", line, n)
		}
	}
}

func TestParse_ReturnTypeSplit(t *testing.T) {
	tests := []struct {
		line     string
		wantRet  string
		wantName string
	}{
		{"const char * eglQueryString(EGLDisplay dpy, EGLint name);", "const char *", "eglQueryString"},
		{"const GLubyte* glGetString(GLenum name);", "const GLubyte*", "glGetString"},
		{"void *glMapBufferRange(GLenum target, GLintptr offset, GLsizeiptr length, GLbitfield access);", "void *", "glMapBufferRange"},
		{"unsigned long long  counter(void);", "unsigned long long", "counter"},
	}
	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			f := parseText(t, tt.line)
			requireNoErrors(t, f)
			e := f.Entries[0]
			if e.ReturnType != tt.wantRet || e.Name != tt.wantName {
				t.Errorf("want (%q, %q), got (%q, %q)", tt.wantRet, tt.wantName, e.ReturnType, e.Name)
			}
		})
	}
}

func TestParse_ParameterShapes(t *testing.T) {
	f := parseText(t, "void glShaderSource(GLuint shader, GLsizei count, const GLchar* const* string, const GLint *length);\n"+
		"void glUniformMatrix(GLint location, const GLfloat value[]);\n")
	requireNoErrors(t, f)

	want := []Param{
		{"GLuint", "shader"},
		{"GLsizei", "count"},
		{"const GLchar* const*", "string"},
		{"const GLint *", "length"},
	}
	if !reflect.DeepEqual(f.Entries[0].Params, want) {
		t.Errorf("params:\nwant %+v\ngot  %+v", want, f.Entries[0].Params)
	}
	if got := f.Entries[1].Params[1]; got != (Param{"const GLfloat", "value[]"}) {
		t.Errorf("array param: got %+v", got)
	}
}

func TestParse_DeclarationOrderPreserved(t *testing.T) {
	f := parseText(t, "void c(void);\nvoid a(void);\nvoid b(void);\n")
	requireNoErrors(t, f)
	var names []string
	for _, e := range f.Entries {
		names = append(names, e.Name)
	}
	if strings.Join(names, ",") != "c,a,b" {
		t.Errorf("order: got %v", names)
	}
}

func TestParse_Directives(t *testing.T) {
	t.Run("last prefix wins", func(t *testing.T) {
		f := parseText(t, "!first\n!second\n")
		if f.Prefix != "second" {
			t.Errorf("got %q", f.Prefix)
		}
	})

	t.Run("missing prefix defaults to unknown", func(t *testing.T) {
		f := parseText(t, "void a(void);\n")
		if f.PrefixName() != "unknown" {
			t.Errorf("got %q", f.PrefixName())
		}
	})

	t.Run("namespaces are trimmed and last one wins", func(t *testing.T) {
		f := parseText(t, "namespaces old\nnamespaces  translator , gles2 ,,\n")
		if !reflect.DeepEqual(f.Namespaces, []string{"translator", "gles2"}) {
			t.Errorf("got %q", f.Namespaces)
		}
	})

	t.Run("verbatim lines keep order", func(t *testing.T) {
		f := parseText(t, "%#include <a.h>\n%#include <b.h>\n")
		if !reflect.DeepEqual(f.Verbatim, []string{"#include <a.h>", "#include <b.h>"}) {
			t.Errorf("got %q", f.Verbatim)
		}
	})
}

func TestParse_Errors(t *testing.T) {
	t.Run("bad signature lines are collected with line numbers", func(t *testing.T) {
		f := parseText(t, "void ok(void);\nthis is not a signature\nvoid alsoOk(int a);\nvoid noSemicolon(void)\n")
		if len(f.Errors) != 2 {
			t.Fatalf("want 2 errors, got %d: %v", len(f.Errors), f.Err())
		}
		if f.Errors[0].Line != 2 || f.Errors[1].Line != 4 {
			t.Errorf("line numbers: got %d and %d", f.Errors[0].Line, f.Errors[1].Line)
		}
		for _, e := range f.Errors {
			if !errors.Is(e, ErrBadSignature) {
				t.Errorf("want ErrBadSignature, got %v", e.Err)
			}
		}
		if len(f.Entries) != 2 {
			t.Errorf("valid lines must still be parsed, got %d entries", len(f.Entries))
		}
	})

	t.Run("bad parameter discards the whole entry", func(t *testing.T) {
		f := parseText(t, "void first(void);\nvoid broken(int a, int);\nvoid last(void);\n")
		if len(f.Errors) != 1 {
			t.Fatalf("want 1 error, got %v", f.Err())
		}
		e := f.Errors[0]
		if !errors.Is(e, ErrBadParameter) || e.Line != 2 || e.Text != "int" {
			t.Errorf("unexpected error %+v", e)
		}
		mustContain(t, e.Error(), "2: parameter 'int'")
		if len(f.Entries) != 2 || f.Entries[1].Name != "last" {
			t.Errorf("entries: got %+v", f.Entries)
		}
	})

	t.Run("empty parameter list is not void", func(t *testing.T) {
		f := parseText(t, "void f();\n")
		if len(f.Errors) != 1 || !errors.Is(f.Errors[0], ErrBadParameter) {
			t.Fatalf("want one parameter error, got %v", f.Err())
		}
	})

	t.Run("function name cannot start with a digit", func(t *testing.T) {
		f := parseText(t, "void 9lives(void);\n")
		if len(f.Errors) != 1 || !errors.Is(f.Errors[0], ErrBadSignature) {
			t.Fatalf("want one signature error, got %v", f.Err())
		}
	})

	t.Run("joined error mentions every line", func(t *testing.T) {
		f := parseText(t, "bad one\nbad two\n")
		mustContain(t, f.Err().Error(), "1: 'bad one'", "2: 'bad two'")
	})
}

func TestParse_ByteOrderMark(t *testing.T) {
	f := parseText(t, "\ufeff!mylib\nvoid a(void);\n")
	requireNoErrors(t, f)
	if f.Prefix != "mylib" {
		t.Errorf("prefix: got %q", f.Prefix)
	}
}

func TestParse_InvalidUTF8(t *testing.T) {
	f := parseText(t, "!mylib\n%// caf\xe9\nvoid a(void);\nvoid b(int caf\xe9);\n")

	if len(f.Verbatim) != 0 {
		t.Errorf("verbatim lines must not be rewritten, got %q", f.Verbatim)
	}
	if len(f.Entries) != 1 || f.Entries[0].Name != "a" {
		t.Fatalf("entries: got %+v", f.Entries)
	}
	if len(f.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", f.Errors)
	}
	for i, line := range []int{2, 4} {
		e := f.Errors[i]
		if e.Line != line || !errors.Is(e, ErrBadEncoding) {
			t.Errorf("error %d: got line %d, %v", i, e.Line, e.Err)
		}
	}
	if got := f.Errors[0].Error(); got != "2: invalid UTF-8" {
		t.Errorf("Error(): got %q", got)
	}
}

func TestEntry_DerivedViews(t *testing.T) {
	e := Entry{Name: "glGenBuffers", ReturnType: "void", Params: []Param{{"GLsizei", "n"}, {"GLuint*", "buffers"}}}
	if got := e.Parameters(); got != "GLsizei n, GLuint* buffers" {
		t.Errorf("Parameters: got %q", got)
	}
	if got := e.CallArgs(); got != "n, buffers" {
		t.Errorf("CallArgs: got %q", got)
	}
	if !e.HasParam("n") || e.HasParam("target") {
		t.Error("HasParam mismatch")
	}
	if !e.ReturnsVoid() {
		t.Error("ReturnsVoid: want true")
	}
	if got := (Entry{Name: "f", ReturnType: "int"}).Parameters(); got != "" {
		t.Errorf("empty Parameters: got %q", got)
	}
}
