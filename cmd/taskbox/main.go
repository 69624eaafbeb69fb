package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"taskbox/client"
	"taskbox/tui"
)

func main() {
	apiURL := os.Getenv("TASKBOX_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:3001"
	}

	program := tea.NewProgram(tui.NewModel(client.New(apiURL)))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "taskbox failed: %v\n", err)
		os.Exit(1)
	}
}
