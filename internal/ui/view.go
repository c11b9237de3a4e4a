package ui

import "strings"

// View renders the widget. Layout rows matter to mouse handling: the first
// suggestion always sits at dropdownTop.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("fxpick"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.showList() {
		b.WriteString(m.dropdown.View())
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString(m.styles.Loading.Render(m.spin.View() + " Looking up currencies..."))
		b.WriteString("\n")
	} else if m.showNoResults() {
		b.WriteString(m.styles.NoResults.Render("No results found"))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.styles.Dim.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))

	return b.String()
}
