package emit

// dllEntryPrefix names the function pointer that backs each wrapper.
const dllEntryPrefix = "__dll_"

// dllWrapper writes a C source file with lazily linked wrappers: one pointer
// and one forwarding function per entry, plus <prefix>_dynlink_init that
// resolves every pointer with dlsym and fails on the first missing symbol.
func (g *generator) dllWrapper() {
	g.banner()
	g.println("// DO NOT EDIT THIS FILE")
	g.println("")
	g.println("#include <dlfcn.h>")
	g.verbatim()
	g.println("")

	g.sectionBanner("W R A P P E R   P O I N T E R S")
	for _, e := range g.file.Entries {
		g.printf("static %s (*%s%s)(%s) = 0;\n", e.ReturnType, dllEntryPrefix, e.Name, e.Parameters())
	}
	g.println("")

	g.sectionBanner("W R A P P E R   F U N C T I O N S")
	for _, e := range g.file.Entries {
		g.printf("%s %s(%s) {\n", e.ReturnType, e.Name, e.Parameters())
		if e.ReturnsVoid() {
			g.printf("  %s%s(%s);\n", dllEntryPrefix, e.Name, e.CallArgs())
		} else {
			g.printf("  return %s%s(%s);\n", dllEntryPrefix, e.Name, e.CallArgs())
		}
		g.println("}")
		g.println("")
	}
	g.println("")

	g.sectionBanner("I N I T I A L I Z A T I O N   F U N C T I O N")
	g.printf("int %s_dynlink_init(void* lib) {\n", g.file.PrefixName())
	for _, e := range g.file.Entries {
		ptr := dllEntryPrefix + e.Name
		g.printf("  %s = (%s(*)(%s))dlsym(lib, \"%s\");\n", ptr, e.ReturnType, e.Parameters(), e.Name)
		g.printf("  if (!%s) return -1;\n", ptr)
	}
	g.println("  return 0;")
	g.println("}")
}

func (g *generator) sectionBanner(title string) {
	g.println("///")
	g.printf("///  %s\n", title)
	g.println("///")
	g.println("")
}
