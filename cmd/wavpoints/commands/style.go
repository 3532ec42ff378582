// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for text output.
type Theme struct {
	Primary lipgloss.Color
	Dim     lipgloss.Color
}

var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Dim:     lipgloss.Color("#6e7681"),
}

// Styles holds all styles derived from a theme.
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Label: lipgloss.NewStyle().Foreground(t.Dim).Width(labelWidth),
		Value: lipgloss.NewStyle(),
	}
}

const labelWidth = 14

type field struct {
	label string
	value string
}

// renderFields lays out a title followed by aligned label/value lines.
func renderFields(s Styles, title string, fields []field) string {
	var b strings.Builder
	b.WriteString(s.Title.Render(title))
	b.WriteByte('\n')
	for _, f := range fields {
		b.WriteString(s.Label.Render(f.label))
		b.WriteString(s.Value.Render(f.value))
		b.WriteByte('\n')
	}
	return b.String()
}
