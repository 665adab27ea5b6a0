// Command solarcalc is the interactive terminal client for the lead API. It
// runs the savings calculator and the contact/quote forms against a running
// server instance.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gesol/go-solar-backend/internal/tui"
)

func main() {
	api := flag.String("api", "http://localhost:8080/api/v1", "Base URL of the lead API")
	flag.Parse()

	model := tui.NewModel(tui.NewClient(*api))
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "solarcalc: %v\n", err)
		os.Exit(1)
	}
}
