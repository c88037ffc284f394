// Package filter turns the UI's filter representation into the normalized
// criteria consumed by the query engine.
//
// Two front ends exist. Structured (checkbox style) treats its sets
// literally: an empty set matches nothing. SigilString (a compact
// "[sigils]label" input) treats an absent selector group as "no restriction".
// The two conventions differ and are not interchangeable.
package filter

import "github.com/sandeepkv93/tasksift/internal/model"

// Spec is the normalized, mode-independent filter tuple.
//
// A restriction flag that is false means the stage passes its input through
// unchanged. When it is true only the members of the matching set survive,
// and the stage regroups them in the fixed tier or status order.
type Spec struct {
	SearchText         string
	Priorities         map[model.Priority]bool
	Statuses           map[model.Status]bool
	RestrictPriorities bool
	RestrictStatuses   bool
}

// MatchAll is the filter that leaves every task visible.
func MatchAll() Spec {
	return Spec{}
}

func (s Spec) AllowsPriority(p model.Priority) bool {
	if !s.RestrictPriorities {
		return true
	}
	return s.Priorities[p]
}

func (s Spec) AllowsStatus(st model.Status) bool {
	if !s.RestrictStatuses {
		return true
	}
	return s.Statuses[st]
}

// EnabledPriorities returns the enabled tiers in fixed order. An unrestricted
// spec reports every tier.
func (s Spec) EnabledPriorities() []model.Priority {
	out := make([]model.Priority, 0, len(model.Priorities))
	for _, p := range model.Priorities {
		if s.AllowsPriority(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s Spec) EnabledStatuses() []model.Status {
	out := make([]model.Status, 0, len(model.Statuses))
	for _, st := range model.Statuses {
		if s.AllowsStatus(st) {
			out = append(out, st)
		}
	}
	return out
}

// Input is implemented by every filter front end.
type Input interface {
	Normalize() Spec
}

type Mode string

const (
	ModeStructured Mode = "structured"
	ModeSigil      Mode = "sigil"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeStructured, ModeSigil:
		return true
	default:
		return false
	}
}

func prioritySubset(in map[model.Priority]bool) (map[model.Priority]bool, int) {
	out := make(map[model.Priority]bool, len(model.Priorities))
	for _, p := range model.Priorities {
		if in[p] {
			out[p] = true
		}
	}
	return out, len(out)
}

func statusSubset(in map[model.Status]bool) (map[model.Status]bool, int) {
	out := make(map[model.Status]bool, len(model.Statuses))
	for _, st := range model.Statuses {
		if in[st] {
			out[st] = true
		}
	}
	return out, len(out)
}
