package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"content-planner/internal/calendar"
	"content-planner/internal/models"
)

const cellWidth = 16

var (
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	primaryStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)

	cellStyle  = lipgloss.NewStyle().Width(cellWidth).Height(3).Padding(0, 1)
	todayStyle = cellStyle.Foreground(colorPrimary).Bold(true)
	headStyle  = lipgloss.NewStyle().Width(cellWidth).Padding(0, 1).Foreground(colorMuted)
)

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Print(warningStyle.Render("⚠ "))
	fmt.Printf(format+"\n", args...)
}

// Error prints an error message to stderr
func Error(format string, args ...interface{}) {
	fmt.Fprint(os.Stderr, errorStyle.Render("✗ "))
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// PostTable renders one line per post.
func PostTable(posts []models.Post) string {
	lines := make([]string, 0, len(posts)+1)
	lines = append(lines, primaryStyle.Render(fmt.Sprintf("%-24s %-9s %-10s %-5s %s", "TITLE", "FREQUENCY", "START", "TIME", "PLATFORMS")))
	for _, p := range posts {
		platforms := make([]string, len(p.Platforms))
		for i, pl := range p.Platforms {
			platforms[i] = string(pl)
		}
		lines = append(lines, fmt.Sprintf("%-24s %-9s %-10s %-5s %s",
			truncate(p.Title, 24), p.Frequency, p.StartDate, p.PostTime, strings.Join(platforms, ",")))
		if p.Category != "" {
			lines = append(lines, mutedStyle.Render("  "+p.Category+"  "+p.ID))
		}
	}
	return strings.Join(lines, "\n")
}

// MonthGrid renders m as a seven-column grid starting on Sunday. Each cell
// shows the day number and the first titles scheduled on it.
func MonthGrid(m calendar.Month) string {
	header := make([]string, len(m.Weekdays))
	for i, w := range m.Weekdays {
		header[i] = headStyle.Render(w)
	}

	cells := make([]string, 0, m.LeadingBlanks+len(m.Days))
	for i := 0; i < m.LeadingBlanks; i++ {
		cells = append(cells, cellStyle.Render(""))
	}
	for _, d := range m.Days {
		cells = append(cells, dayCell(d))
	}
	for len(cells)%7 != 0 {
		cells = append(cells, cellStyle.Render(""))
	}

	rows := []string{
		primaryStyle.Render(fmt.Sprintf("%s %d", m.Name, m.Year)),
		lipgloss.JoinHorizontal(lipgloss.Top, header...),
	}
	for i := 0; i < len(cells); i += 7 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i:i+7]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func dayCell(d calendar.Day) string {
	lines := []string{fmt.Sprintf("%2d", d.Number)}
	for i, e := range d.Entries {
		if i == 2 {
			lines[len(lines)-1] = truncate(lines[len(lines)-1], cellWidth-4) + fmt.Sprintf(" +%d", len(d.Entries)-1)
			break
		}
		lines = append(lines, truncate(e.Title, cellWidth-2))
	}
	style := cellStyle
	if d.IsToday {
		style = todayStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
