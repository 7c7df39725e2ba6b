// Command biosdebug is a small interactive TUI for single-stepping a
// scripted sequence of SWI invocations against an in-memory CPU, directly
// modeled on cpu/debugger.go's bubbletea program.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if _, err := tea.NewProgram(newModel()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
