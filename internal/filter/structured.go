package filter

import "github.com/sandeepkv93/tasksift/internal/model"

// Structured mirrors three independent controls: a search field, a set of
// priority checkboxes and a set of status checkboxes.
type Structured struct {
	SearchText string
	Priorities map[model.Priority]bool
	Statuses   map[model.Status]bool
}

// DefaultStructured has every checkbox checked and an empty search field.
func DefaultStructured() Structured {
	s := Structured{
		Priorities: make(map[model.Priority]bool, len(model.Priorities)),
		Statuses:   make(map[model.Status]bool, len(model.Statuses)),
	}
	for _, p := range model.Priorities {
		s.Priorities[p] = true
	}
	for _, st := range model.Statuses {
		s.Statuses[st] = true
	}
	return s
}

// TogglePriority flips one priority checkbox and returns the updated value.
func (s Structured) TogglePriority(p model.Priority) Structured {
	next := make(map[model.Priority]bool, len(model.Priorities))
	for k, v := range s.Priorities {
		next[k] = v
	}
	next[p] = !next[p]
	s.Priorities = next
	return s
}

func (s Structured) ToggleStatus(st model.Status) Structured {
	next := make(map[model.Status]bool, len(model.Statuses))
	for k, v := range s.Statuses {
		next[k] = v
	}
	next[st] = !next[st]
	s.Statuses = next
	return s
}

// Normalize passes each control through. The search text is not trimmed.
// Zero checked boxes in a group restrict to nothing; all boxes checked is
// the same as no restriction.
func (s Structured) Normalize() Spec {
	priorities, np := prioritySubset(s.Priorities)
	statuses, ns := statusSubset(s.Statuses)
	return Spec{
		SearchText:         s.SearchText,
		Priorities:         priorities,
		Statuses:           statuses,
		RestrictPriorities: np < len(model.Priorities),
		RestrictStatuses:   ns < len(model.Statuses),
	}
}
