package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// highlightLabel renders label with every non-overlapping case-insensitive
// occurrence of query in the match style. An empty query renders the label
// as-is.
func highlightLabel(label, query string, match lipgloss.Style) string {
	if query == "" {
		return label
	}

	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return label
	}

	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringIndex(label, -1) {
		b.WriteString(label[last:loc[0]])
		b.WriteString(match.Render(label[loc[0]:loc[1]]))
		last = loc[1]
	}
	b.WriteString(label[last:])
	return b.String()
}
