package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debouncer implements a trailing-edge debounce on top of tea.Tick. Each
// restart invalidates the previous pending tick by bumping seq; a tick whose
// seq no longer matches is simply ignored, so stale timers are inert after
// further input and after teardown.
type debouncer struct {
	delay time.Duration
	seq   int
}

// restart arms a new tick, discarding any pending one.
func (d *debouncer) restart() tea.Cmd {
	d.seq++
	seq := d.seq
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

// settled reports whether msg is the most recently armed tick.
func (d *debouncer) settled(msg debounceMsg) bool {
	return msg.seq == d.seq
}
