package lib

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// PrintError writes "ERROR: msg" to w. The prefix is rendered bold red when w
// is a colour terminal and plain otherwise.
func PrintError(w io.Writer, msg string) {
	prefix := lipgloss.NewRenderer(w).NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	fmt.Fprintf(w, "%s %s\n", prefix.Render("ERROR:"), msg)
}

// Exit prints the error and exits the program with code 1
func Exit(err error) {
	PrintError(os.Stderr, err.Error())
	os.Exit(1)
}
