package emit

import (
	"strings"

	"gen-entries/cmd/gen-entries/entries"
)

// privateEGLAPIs are entry points missing from the stock EGL headers: the
// emulator's private extensions and the snapshot hooks. The functions header
// declares them explicitly.
var privateEGLAPIs = map[string]struct{}{
	"eglGetMaxGLESVersion":                {},
	"eglBlitFromCurrentReadBufferANDROID": {},
	"eglSetImageFenceANDROID":             {},
	"eglWaitImageFenceANDROID":            {},
	"eglAddLibrarySearchPathANDROID":      {},
	"eglQueryVulkanInteropSupportANDROID": {},
	"eglLoadConfig":                       {},
	"eglLoadContext":                      {},
	"eglLoadAllImages":                    {},
	"eglSaveConfig":                       {},
	"eglSaveContext":                      {},
	"eglSaveAllImages":                    {},
	"eglPreSaveContext":                   {},
	"eglPostLoadAllImages":                {},
	"eglPostSaveContext":                  {},
	"eglUseOsEglApi":                      {},
	"eglFillUsages":                       {},
	"eglSetMaxGLESVersion":                {},
}

// functionsHeader writes a C header defining LIST_<PREFIX>_FUNCTIONS(X), an
// X-macro with one row per entry. withArgs adds the call argument tuple.
func (g *generator) functionsHeader(withArgs bool) {
	prefix := strings.ToUpper(g.file.PrefixName())

	g.banner()
	g.println("// DO NOT EDIT THIS FILE")
	g.println("")
	g.printf("#ifndef %s_FUNCTIONS_H\n", prefix)
	g.printf("#define %s_FUNCTIONS_H\n", prefix)
	g.println("")
	g.verbatim()
	g.printf("#define LIST_%s_FUNCTIONS(X) \\\n", prefix)

	var decls []entries.Entry
	for _, e := range g.file.Entries {
		if _, ok := privateEGLAPIs[e.Name]; ok {
			decls = append(decls, e)
		}
		if withArgs {
			g.printf("  X(%s, %s, (%s), (%s)) \\\n", e.ReturnType, e.Name, e.Parameters(), e.CallArgs())
		} else {
			g.printf("  X(%s, %s, (%s)) \\\n", e.ReturnType, e.Name, e.Parameters())
		}
	}
	g.println("")

	for _, e := range decls {
		g.printf("EGLAPI %s EGLAPIENTRY %s(%s);\n", e.ReturnType, e.Name, e.Parameters())
	}
	g.println("")
	g.printf("#endif  // %s_FUNCTIONS_H\n", prefix)
}

// namespacedHeader declares every entry inside the file's namespaces.
func (g *generator) namespacedHeader() {
	g.banner()
	g.println("// DO NOT EDIT THIS FILE")
	g.println("")
	g.println("#pragma once")
	g.println("")
	g.verbatim()

	g.openNamespaces()
	for _, e := range g.file.Entries {
		g.declaration(e)
	}
	g.closeNamespaces()
}

// namespacedStubs defines do-nothing bodies for GLES entries, returning a
// zero value of the return type. EGL entries are only declared.
func (g *generator) namespacedStubs() {
	g.banner()
	g.println("// DO NOT EDIT THIS FILE")
	g.println("")
	g.verbatim()

	g.openNamespaces()
	for _, e := range g.file.Entries {
		if !g.isGLES() {
			g.declaration(e)
			continue
		}
		ret := "return"
		if !e.ReturnsVoid() {
			ret = "return (" + e.ReturnType + ")0"
		}
		g.printf("GL_APICALL %s GL_APIENTRY %s(%s) { %s; }\n",
			e.ReturnType, e.Name, strings.Join(e.ParamTypes(), ", "), ret)
	}
	g.closeNamespaces()
}

func (g *generator) declaration(e entries.Entry) {
	if g.isGLES() {
		g.printf("GL_APICALL %s GL_APIENTRY %s(%s);\n", e.ReturnType, e.Name, e.Parameters())
	} else {
		g.printf("EGLAPI %s EGLAPIENTRY %s(%s);\n", e.ReturnType, e.Name, e.Parameters())
	}
}

func (g *generator) openNamespaces() {
	for _, ns := range g.file.Namespaces {
		g.printf("namespace %s {\n", ns)
	}
}

// closeNamespaces closes innermost first so the trailing comments match.
func (g *generator) closeNamespaces() {
	for i := len(g.file.Namespaces) - 1; i >= 0; i-- {
		g.printf("} // namespace %s\n", g.file.Namespaces[i])
	}
}
