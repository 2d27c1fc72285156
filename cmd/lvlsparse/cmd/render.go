// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Violet
	colorAccent  = lipgloss.Color("#06B6D4") // Cyan

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)
)

// printer writes titled matrices and plain lines, styled when pretty is set.
type printer struct {
	w      io.Writer
	pretty bool
}

// matrix prints a titled matrix followed by a blank line.
func (p *printer) matrix(title string, m fmt.Stringer) {
	body := m.String()
	if !p.pretty {
		fmt.Fprintf(p.w, "%s\n%s\n", title, body)
		return
	}
	fmt.Fprintln(p.w, titleStyle.Render(title))
	fmt.Fprintln(p.w, boxStyle.Render(alignColumns(body)))
}

// line prints a formatted line.
func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// heading prints a section heading.
func (p *printer) heading(title string) {
	if p.pretty {
		fmt.Fprintln(p.w, titleStyle.Underline(true).Render(title))
		return
	}
	fmt.Fprintf(p.w, "== %s ==\n", title)
}

// table prints a header row and data rows.
func (p *printer) table(headers []string, rows [][]string) {
	if !p.pretty {
		fmt.Fprintln(p.w, strings.Join(headers, "\t"))
		for _, r := range rows {
			fmt.Fprintln(p.w, strings.Join(r, "\t"))
		}
		return
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorAccent)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(p.w, t.Render())
}

// alignColumns right-aligns the space-separated values of a rendered matrix.
func alignColumns(body string) string {
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	cells := make([][]string, len(lines))
	var widths []int
	for i, l := range lines {
		cells[i] = strings.Fields(l)
		for j, c := range cells[i] {
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			widths[j] = max(widths[j], lipgloss.Width(c))
		}
	}
	var b strings.Builder
	for i, row := range cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, c := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strings.Repeat(" ", widths[j]-lipgloss.Width(c)))
			b.WriteString(c)
		}
	}

	return b.String()
}
