package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"fxpick/internal/config"
	"fxpick/internal/domain"
	"fxpick/internal/eventbus"
	"fxpick/internal/suggest"
)

// dropdownTop is the screen row of the first suggestion: title line plus
// input line. Mouse clicks on the dropdown are resolved against it.
const dropdownTop = 2

// Model is the autocomplete widget controller. It owns the input state,
// drives the debounce, requests lookups over the bus and renders the
// dropdown. All mutation happens inside Update.
type Model struct {
	bus    eventbus.EventBus
	cfg    *config.Config
	source suggest.Source

	styles *Styles
	keys   keyMap
	help   help.Model

	input    textinput.Model
	dropdown viewport.Model
	spin     spinner.Model

	width  int
	height int

	// Widget state. selectedIndex is -1 whenever suggestions is empty;
	// selectionMade suppresses lookups until the next edit.
	query          string
	debouncedQuery string
	suggestions    []domain.Suggestion
	loading        bool
	selectedIndex  int
	selectionMade  bool

	debounce debouncer
	fetchSeq int // most recently issued lookup; older responses are discarded

	status  string
	program *tea.Program
}

// NewModel creates the widget model
func NewModel(cfg *config.Config, bus eventbus.EventBus, source suggest.Source) *Model {
	styles := NewStyles()

	ti := textinput.New()
	ti.Placeholder = cfg.UISettings.Placeholder
	ti.Prompt = "> "
	ti.PromptStyle = styles.Prompt
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Loading

	vp := viewport.New(80, cfg.UISettings.MaxVisible)

	return &Model{
		bus:           bus,
		cfg:           cfg,
		source:        source,
		styles:        styles,
		keys:          defaultKeyMap(),
		help:          help.New(),
		input:         ti,
		dropdown:      vp,
		spin:          sp,
		selectedIndex: -1,
		debounce: debouncer{
			delay: time.Duration(cfg.UISettings.DebounceMS) * time.Millisecond,
		},
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.dropdown.Width = msg.Width
		m.refreshDropdown()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case debounceMsg:
		return m.handleDebounce(msg)

	case EventMsg:
		return m.handleEvent(msg.Event)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case browseDoneMsg:
		if msg.err != nil {
			log.Warn("dataset browser failed", "err", msg.err)
			m.status = "Could not open the dataset browser"
		}
		return m, nil
	}

	// Remaining messages (cursor blink etc.) belong to the text input
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
		return m, nil

	case key.Matches(msg, m.keys.Accept):
		if m.selectedIndex >= 0 {
			m.commit(m.selectedIndex)
		}
		return m, nil

	case key.Matches(msg, m.keys.Browse):
		return m, m.browseDataset()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// The input echo is immediate; only the lookup trigger is debounced.
	if v := m.input.Value(); v != m.query {
		m.query = v
		m.selectedIndex = -1
		m.selectionMade = false
		m.status = ""
		if m.query == "" {
			// Emptying the input drops results right away instead of
			// waiting for the debounce to settle
			m.debouncedQuery = ""
			m.suggestions = nil
		}
		m.refreshDropdown()
		return m, tea.Batch(cmd, m.debounce.restart())
	}

	return m, cmd
}

// handleDebounce reacts to the debounced query settling. The selection and
// empty checks happen here, in the same reaction, so a commit can never be
// followed by a spurious lookup.
func (m *Model) handleDebounce(msg debounceMsg) (tea.Model, tea.Cmd) {
	if !m.debounce.settled(msg) {
		return m, nil
	}

	m.debouncedQuery = m.query

	if m.selectionMade || m.debouncedQuery == "" {
		m.suggestions = nil
		m.selectedIndex = -1
		m.refreshDropdown()
		return m, nil
	}

	m.fetchSeq++
	m.suggestions = nil
	m.selectedIndex = -1
	m.loading = true
	m.refreshDropdown()

	m.bus.Publish(eventbus.LookupRequestedEvent{
		Query: m.debouncedQuery,
		Seq:   m.fetchSeq,
	})

	return m, m.spin.Tick
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(e domain.DomainEvent) (tea.Model, tea.Cmd) {
	switch ev := e.(type) {
	case eventbus.SuggestionsReadyEvent:
		// Latest request wins: anything but the most recently issued
		// sequence is a stale response
		if ev.Seq != m.fetchSeq {
			return m, nil
		}
		m.loading = false
		m.suggestions = ev.Suggestions
		m.selectedIndex = -1
		m.refreshDropdown()
		return m, nil
	}
	return m, nil
}

// handleMouse commits the clicked suggestion and scrolls the dropdown on
// wheel input
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.showList() {
		return m, nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.dropdown.SetYOffset(m.dropdown.YOffset - 1)
		return m, nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.dropdown.SetYOffset(m.dropdown.YOffset + 1)
		return m, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	row := msg.Y - dropdownTop
	if row < 0 || row >= m.dropdown.Height {
		return m, nil
	}

	i := m.dropdown.YOffset + row
	if i >= len(m.suggestions) {
		return m, nil
	}

	m.commit(i)
	return m, nil
}

// moveSelection clamps the highlight to [-1, len-1]; -1 means nothing is
// highlighted, which is distinct from the first item.
func (m *Model) moveSelection(delta int) {
	if len(m.suggestions) == 0 {
		m.selectedIndex = -1
		return
	}

	next := m.selectedIndex + delta
	if next < -1 {
		next = -1
	}
	if max := len(m.suggestions) - 1; next > max {
		next = max
	}
	if next == m.selectedIndex {
		return
	}

	m.selectedIndex = next
	m.refreshDropdown()
	if next >= 0 {
		m.scrollIntoView(next)
	}
}

// scrollIntoView nudges the dropdown so row i is visible, once per
// selection change
func (m *Model) scrollIntoView(i int) {
	top := m.dropdown.YOffset
	bottom := top + m.dropdown.Height - 1
	switch {
	case i < top:
		m.dropdown.SetYOffset(i)
	case i > bottom:
		m.dropdown.SetYOffset(i - m.dropdown.Height + 1)
	}
}

// commit finalizes suggestion i as the input's value and ends the search
// cycle. Lookups stay suppressed until the next edit; bumping fetchSeq
// orphans any in-flight response.
func (m *Model) commit(i int) {
	if i < 0 || i >= len(m.suggestions) {
		return
	}

	s := m.suggestions[i]
	m.query = s.Label
	m.debouncedQuery = s.Label
	m.input.SetValue(s.Label)
	m.input.CursorEnd()
	m.input.Focus()

	m.suggestions = nil
	m.selectedIndex = -1
	m.selectionMade = true
	m.loading = false
	m.fetchSeq++
	m.refreshDropdown()
}

// refreshDropdown rebuilds the viewport content from the current
// suggestions, highlight and selection
func (m *Model) refreshDropdown() {
	if len(m.suggestions) == 0 {
		m.dropdown.SetContent("")
		m.dropdown.SetYOffset(0)
		return
	}

	height := len(m.suggestions)
	if mv := m.cfg.UISettings.MaxVisible; height > mv {
		height = mv
	}
	m.dropdown.Height = height

	rows := make([]string, len(m.suggestions))
	for i, s := range m.suggestions {
		cursor := "  "
		if i == m.selectedIndex {
			cursor = m.styles.Cursor.Render("▸ ")
		}
		rows[i] = cursor + highlightLabel(s.Label, m.query, m.styles.Match)
	}
	m.dropdown.SetContent(strings.Join(rows, "\n"))
}

// browseDataset opens the full expanded currency list in the pager
func (m *Model) browseDataset() tea.Cmd {
	source := m.source
	program := m.program
	timeout := time.Duration(m.cfg.RequestTimeoutMS) * time.Millisecond

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		all, err := source.Fetch(ctx, "")
		if err != nil {
			return browseDoneMsg{err: err}
		}

		var sb strings.Builder
		sb.WriteString("Currencies\n\n")
		for _, s := range all {
			sb.WriteString(s.Label)
			sb.WriteString("\n")
		}

		return browseDoneMsg{err: showInPager(program, sb.String())}
	}
}

// showList reports whether the dropdown is visible
func (m *Model) showList() bool {
	return m.query != "" && len(m.suggestions) > 0
}

// showNoResults reports whether the "no results" indicator is visible. It
// is mutually exclusive with the loading indicator.
func (m *Model) showNoResults() bool {
	return m.debouncedQuery != "" && !m.loading && len(m.suggestions) == 0 && !m.selectionMade
}
