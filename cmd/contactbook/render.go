package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/illmade-knight/contactbook/pkg/contacts"
	"github.com/illmade-knight/contactbook/pkg/preferences"
)

var (
	darkText  = lipgloss.Color("#1a1a1a")
	lightText = lipgloss.Color("#f0f0f0")
)

// pageStyle paints text on the stored background color. Terminals have no
// font size, so it is only reported, not applied.
func pageStyle(p preferences.Preferences) lipgloss.Style {
	fg := lightText
	if p.BackgroundColor.IsLight() {
		fg = darkText
	}
	// lipgloss has no alpha channel.
	bg := p.BackgroundColor
	bg.A = 1
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg.Hex())).
		Foreground(fg)
}

func renderContacts(cs []contacts.Contact, p preferences.Preferences) string {
	if len(cs) == 0 {
		return "No contacts.\n"
	}

	headers := []string{"ID", "Name", "Phone", "Email", "Address"}
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, []string{c.ID.String(), c.Name, c.PhoneNumber, c.Email, c.Address})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	base := pageStyle(p)
	header := base.Bold(true)

	var sb strings.Builder
	writeRow := func(style lipgloss.Style, cells []string) {
		rendered := make([]string, len(cells))
		for i, cell := range cells {
			rendered[i] = style.Width(widths[i] + 2).PaddingLeft(1).Render(cell)
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
		sb.WriteString("\n")
	}

	writeRow(header, headers)
	for _, row := range rows {
		writeRow(base, row)
	}
	return sb.String()
}

func renderPreferences(p preferences.Preferences) string {
	swatch := pageStyle(p).Padding(0, 2).Render(" ")
	return fmt.Sprintf("Font size:  %d\nBackground: %s %s\n", p.FontSize, p.BackgroundColor.Hex(), swatch)
}
