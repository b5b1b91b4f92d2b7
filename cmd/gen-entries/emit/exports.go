package emit

// defFile writes a Windows DLL .def file.
func (g *generator) defFile() {
	g.println("EXPORTS")
	for _, e := range g.file.Entries {
		g.printf("    %s\n", e.Name)
	}
}

// symFile writes an ELF linker version script that only exports the entries.
func (g *generator) symFile() {
	g.println("VERSION {")
	g.println("\tglobal:")
	for _, e := range g.file.Entries {
		g.printf("\t\t%s;\n", e.Name)
	}
	g.println("\tlocal:")
	g.println("\t\t*;")
	g.println("};")
}

func (g *generator) symbols(underscore bool) {
	prefix := ""
	if underscore {
		prefix = "_"
	}
	for _, e := range g.file.Entries {
		g.printf("%s%s\n", prefix, e.Name)
	}
}
