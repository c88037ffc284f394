package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sandeepkv93/tasksift/internal/filter"
	"github.com/sandeepkv93/tasksift/internal/model"
	"github.com/sandeepkv93/tasksift/internal/storage"
	"github.com/sandeepkv93/tasksift/internal/tasklist"
)

type formatter interface {
	FormatTask(t model.Task) string
	FormatTaskList(tasks []model.Task, counts tasklist.Counts) string
	FormatParsed(p filter.Parsed, spec filter.Spec) string
	FormatMessage(msg string) string
	FormatError(err error) string
}

type humanFormatter struct{}

func (humanFormatter) FormatTask(t model.Task) string {
	check := "[ ]"
	if t.IsCompleted {
		check = "[x]"
	}
	return fmt.Sprintf("%s %s %-6s %s\n", check, t.ID, t.Priority, t.Label)
}

func (f humanFormatter) FormatTaskList(tasks []model.Task, counts tasklist.Counts) string {
	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(f.FormatTask(t))
	}
	b.WriteString(fmt.Sprintf("%d of %d shown (%d pending, %d completed)\n", counts.Visible, counts.Total, counts.Pending, counts.Completed))
	return b.String()
}

func (humanFormatter) FormatParsed(p filter.Parsed, spec filter.Spec) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("options: %q\n", p.Options))
	b.WriteString(fmt.Sprintf("label:   %q\n", p.Label))
	b.WriteString(fmt.Sprintf("priority: %s\n", describeRestriction(spec.RestrictPriorities, priorityNames(spec.EnabledPriorities()))))
	b.WriteString(fmt.Sprintf("status:   %s\n", describeRestriction(spec.RestrictStatuses, statusNames(spec.EnabledStatuses()))))
	return b.String()
}

func (humanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}

func (humanFormatter) FormatError(err error) string {
	return "error: " + err.Error() + "\n"
}

func describeRestriction(restricted bool, names []string) string {
	if !restricted {
		return "any"
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

type jsonFormatter struct{}

func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

type listJSON struct {
	Tasks     []storage.Record `json:"tasks"`
	Total     int              `json:"total"`
	Pending   int              `json:"pending"`
	Completed int              `json:"completed"`
}

type parsedJSON struct {
	Options    string   `json:"options"`
	Label      string   `json:"label"`
	Priorities []string `json:"priorities"`
	Statuses   []string `json:"statuses"`
}

func (jsonFormatter) FormatTask(t model.Task) string {
	return marshalJSON(storage.FromTasks([]model.Task{t})[0])
}

func (jsonFormatter) FormatTaskList(tasks []model.Task, counts tasklist.Counts) string {
	return marshalJSON(listJSON{
		Tasks:     storage.FromTasks(tasks),
		Total:     counts.Total,
		Pending:   counts.Pending,
		Completed: counts.Completed,
	})
}

// FormatParsed writes null for an unrestricted group. An empty list means the
// group matches nothing.
func (jsonFormatter) FormatParsed(p filter.Parsed, spec filter.Spec) string {
	out := parsedJSON{Options: p.Options, Label: p.Label}
	if spec.RestrictPriorities {
		out.Priorities = append([]string{}, priorityNames(spec.EnabledPriorities())...)
	}
	if spec.RestrictStatuses {
		out.Statuses = append([]string{}, statusNames(spec.EnabledStatuses())...)
	}
	return marshalJSON(out)
}

func (jsonFormatter) FormatMessage(msg string) string {
	return marshalJSON(map[string]string{"message": msg})
}

func (jsonFormatter) FormatError(err error) string {
	return marshalJSON(map[string]string{"error": err.Error()})
}

func priorityNames(in []model.Priority) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		out = append(out, string(p))
	}
	return out
}

func statusNames(in []model.Status) []string {
	out := make([]string, 0, len(in))
	for _, st := range in {
		out = append(out, string(st))
	}
	return out
}
