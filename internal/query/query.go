// Package query applies a normalized filter to a task collection.
//
// Run is pure and recomputes from scratch on every call. The visible list is
// always derived on demand, never maintained incrementally.
package query

import (
	"strings"

	"github.com/sandeepkv93/tasksift/internal/filter"
	"github.com/sandeepkv93/tasksift/internal/model"
)

// Run narrows tasks through the text, priority and status stages in that
// order. Each stage consumes the previous stage's output. The input slice is
// never modified.
func Run(tasks []model.Task, spec filter.Spec) []model.Task {
	out := matchText(tasks, spec.SearchText)
	out = narrowPriority(out, spec)
	out = narrowStatus(out, spec)
	return out
}

// matchText is a case-sensitive literal substring match. An empty search
// matches every label.
func matchText(tasks []model.Task, search string) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(t.Label, search) {
			out = append(out, t)
		}
	}
	return out
}

// narrowPriority concatenates the low, medium and high matches when a strict
// subset of tiers is selected, so results come out grouped by tier with the
// input order kept inside each group.
func narrowPriority(tasks []model.Task, spec filter.Spec) []model.Task {
	if !spec.RestrictPriorities {
		return tasks
	}
	out := make([]model.Task, 0, len(tasks))
	for _, p := range model.Priorities {
		if !spec.Priorities[p] {
			continue
		}
		for _, t := range tasks {
			if t.Priority == p {
				out = append(out, t)
			}
		}
	}
	return out
}

// narrowStatus regroups as pending then completed under an active restriction.
func narrowStatus(tasks []model.Task, spec filter.Spec) []model.Task {
	if !spec.RestrictStatuses {
		return tasks
	}
	out := make([]model.Task, 0, len(tasks))
	for _, st := range model.Statuses {
		if !spec.Statuses[st] {
			continue
		}
		for _, t := range tasks {
			if t.Status() == st {
				out = append(out, t)
			}
		}
	}
	return out
}
