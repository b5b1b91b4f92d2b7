package emit

import (
	"strings"

	"gen-entries/cmd/gen-entries/entries"
)

// countedPrefixes mark entry points that take an object count `n` which must
// not be negative.
var countedPrefixes = []string{"glGen", "glDelete"}

// translator writes host-side GLES translator bodies. Each body fetches the
// current context, validates arguments, maps shared object handles to their
// global names and forwards the call to the dispatch table.
func (g *generator) translator() {
	g.banner()
	g.println("// This file is best left unedited.")
	g.println("// Try to make changes through the translator override tables,")
	g.println("// and/or parcel out custom functionality in separate code.")

	for _, e := range g.file.Entries {
		g.translatorEntry(e)
	}
}

func (g *generator) translatorEntry(e entries.Entry) {
	linkage := ""
	if g.tables.IsExternC(e.Name) {
		linkage = `extern "C" `
	}
	g.printf("%sGL_APICALL %s GL_APIENTRY %s(%s) {\n", linkage, e.ReturnType, e.Name, e.Parameters())

	g.contextGetter(e)
	g.validations(e)
	g.callAndReturn(e)

	g.println("}")
	g.println("")
}

func (g *generator) contextGetter(e entries.Entry) {
	if e.ReturnsVoid() {
		g.println("    GET_CTX_V2();")
	} else {
		g.printf("    GET_CTX_V2_RET(%s);\n", g.tables.FailCode(e.Name))
	}
}

func (g *generator) validations(e entries.Entry) {
	if hasAnyPrefix(e.Name, countedPrefixes) && e.HasParam("n") {
		g.printf("    %s;\n", g.setErrorIf(e, "n < 0", "GL_INVALID_VALUE"))
	}
	if strings.Contains(e.Name, "Buffer") && e.HasParam("target") {
		g.printf("    %s;\n", g.setErrorIf(e, "!GLESv2Validate::bufferTarget(ctx, target)", "GL_INVALID_ENUM"))
	}
	if s, ok := g.tables.PreSnippet(e.Name); ok {
		g.println(s)
	}
}

// setErrorIf picks the error macro form: void entries just return, the others
// return their fail code.
func (g *generator) setErrorIf(e entries.Entry, cond, glErr string) string {
	if e.ReturnsVoid() {
		return "SET_ERROR_IF(" + cond + "," + glErr + ")"
	}
	return "RET_AND_SET_ERROR_IF(" + cond + "," + glErr + "," + g.tables.FailCode(e.Name) + ")"
}

// sharedParam is a parameter whose handle is resolved to a global name.
type sharedParam struct {
	name     string
	category string
	accessor string
}

func (g *generator) callAndReturn(e entries.Entry) {
	var shared []sharedParam
	args := make([]string, len(e.Params))
	for i, p := range e.Params {
		args[i] = p.Name
		if obj, ok := g.tables.GlobalObject(p.Type, p.Name); ok {
			shared = append(shared, sharedParam{name: p.Name, category: obj.Category, accessor: obj.Accessor})
			args[i] = obj.Accessor
		}
	}
	// A share_processing snippet stands in for the guard opener and the name
	// lookups, whether or not a parameter matched. The generated closer
	// follows only when the snippet leaves a brace open.
	var guarded bool
	if s, ok := g.tables.ShareSnippet(e.Name); ok {
		g.println(s)
		guarded = strings.Count(s, "{") > strings.Count(s, "}")
	} else if len(shared) > 0 {
		g.println("    if (ctx->shareGroup().get()) {")
		for _, sp := range shared {
			g.printf("        const GLuint %s = ctx->shareGroup()->getGlobalName(%s, %s);\n",
				sp.accessor, sp.category, sp.name)
		}
		guarded = true
	}

	indent := "    "
	if guarded {
		indent = "        "
	}

	call := "ctx->dispatcher()." + e.Name + "(" + strings.Join(args, ", ") + ")"
	passthrough := !g.tables.IsNoPassthrough(e.Name)
	post, hasPost := g.tables.PostSnippet(e.Name)

	if e.ReturnsVoid() {
		if passthrough {
			g.printf("%s%s;\n", indent, call)
		}
		if guarded {
			g.println("    }")
		}
		if hasPost {
			g.println(post)
		}
		return
	}

	ret := e.Name + "RET"
	if passthrough {
		g.printf("%s%s %s = %s;\n", indent, e.ReturnType, ret, call)
	} else {
		g.printf("%s%s %s = %s;\n", indent, e.ReturnType, ret, g.tables.FailCode(e.Name))
	}
	if hasPost {
		g.println(post)
	}
	g.printf("%sreturn %s;\n", indent, ret)
	if guarded {
		g.printf("    } else return %s;\n", g.tables.FailCode(e.Name))
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
