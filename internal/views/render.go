package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type Pane int

const (
	PaneTasks Pane = iota
	PaneFilter
)

type AppData struct {
	Title       string
	Mode        string
	Visible     int
	Total       int
	ActivePane  Pane
	TasksPane   string
	FilterPane  string
	StatusLine  string
	StatusError bool
	Footer      string
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	paneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	activeStyle = paneStyle.BorderForeground(lipgloss.Color("12"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle   = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))

	priorityStyles = map[string]lipgloss.Style{
		"low":    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		"medium": lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		"high":   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
)

// RenderApp lays out the header badges, the task and filter panes side by
// side, then the status and footer lines.
func RenderApp(data AppData) string {
	tasks, filter := paneStyle, paneStyle
	if data.ActivePane == PaneFilter {
		filter = activeStyle
	} else {
		tasks = activeStyle
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		tasks.Width(58).Render(data.TasksPane),
		filter.Width(48).Render(data.FilterPane),
	)

	status := statusStyle.Render(data.StatusLine)
	if data.StatusError {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{renderHeader(data), row, status}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func renderHeader(data AppData) string {
	return strings.Join([]string{
		titleStyle.Render(data.Title),
		badgeStyle.Render(data.Mode),
		badgeStyle.Render(fmt.Sprintf("%d/%d", data.Visible, data.Total)),
	}, " ")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
