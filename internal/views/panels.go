package views

import (
	"fmt"
	"strings"
)

type TaskItemData struct {
	ID          string
	Label       string
	Priority    string
	IsCompleted bool
}

type TaskListData struct {
	AddView  string
	Items    []TaskItemData
	Cursor   int
	Focused  bool
	Total    int
	Pending  int
	Finished int
}

type CheckboxData struct {
	Key     string
	Label   string
	Checked bool
}

type FilterPanelData struct {
	Mode       string
	InputView  string
	Options    string
	Label      string
	Priorities []CheckboxData
	Statuses   []CheckboxData
}

type HelpPanelData struct {
	Markdown string
	HelpView string
}

func RenderTaskList(data TaskListData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	b.WriteString(data.AddView + "\n")
	b.WriteString("prefix ! for medium, * for high\n\n")
	if len(data.Items) == 0 {
		b.WriteString("(no matching tasks)\n")
	}
	for i, item := range data.Items {
		cursor := " "
		if data.Focused && i == data.Cursor {
			cursor = ">"
		}
		check := "[ ]"
		label := item.Label
		if item.IsCompleted {
			check = "[x]"
			label = doneStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s\n", cursor, check, priorityBadge(item.Priority), label))
	}
	b.WriteString(fmt.Sprintf("\nshowing %d of %d | pending %d | completed %d", len(data.Items), data.Total, data.Pending, data.Finished))
	return strings.TrimSpace(b.String())
}

func RenderFilterPanel(data FilterPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("filter (%s):\n", data.Mode))
	b.WriteString(data.InputView + "\n")
	if data.Mode == "sigil" {
		b.WriteString("priority: ? low  ! medium  * high\n")
		b.WriteString("status:   @ pending  # completed\n")
		b.WriteString(fmt.Sprintf("options: %q label: %q\n", data.Options, data.Label))
		return strings.TrimSpace(b.String())
	}
	b.WriteString("priority: ")
	b.WriteString(renderCheckboxes(data.Priorities))
	b.WriteString("\nstatus:   ")
	b.WriteString(renderCheckboxes(data.Statuses))
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("\ncommand: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	body := RenderMarkdown(data.Markdown)
	return fmt.Sprintf("\nhelp:\n%s\n%s", body, data.HelpView)
}

func renderCheckboxes(items []CheckboxData) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		mark := " "
		if item.Checked {
			mark = "x"
		}
		parts = append(parts, fmt.Sprintf("[%s]%s %s", mark, item.Key, item.Label))
	}
	return strings.Join(parts, "  ")
}

func priorityBadge(priority string) string {
	badge := "[" + strings.ToUpper(priority) + "]"
	if style, ok := priorityStyles[priority]; ok {
		return style.Render(badge)
	}
	return badge
}
