package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/bingosheets/cmd/bingosheets/shared"
	"github.com/lox/bingosheets/internal/tui"
)

// TuiCmd runs the interactive generator form
type TuiCmd struct {
	Debug bool `help:"Write debug logging to bingosheets-tui.log"`
}

func (c *TuiCmd) Run() error {
	// The TUI owns the terminal, so logging goes to a file.
	logger, closeLog, err := shared.SetupFileLogger("bingosheets-tui.log", c.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	program := tea.NewProgram(tui.New(logger), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
