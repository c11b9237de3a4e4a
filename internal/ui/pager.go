package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// showInPager displays content in the ov pager, handing the terminal over
// and restoring it when the pager exits.
func showInPager(program *tea.Program, content string) error {
	if program == nil {
		return fmt.Errorf("program not set")
	}

	if err := program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Give ov a moment to fully exit before taking the terminal back
		time.Sleep(100 * time.Millisecond)
		_ = program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Keep ov from writing its buffer to the screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
