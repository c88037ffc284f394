package model

import "strings"

const (
	SigilMedium = '!'
	SigilHigh   = '*'
)

// InferPriority decodes an optional leading priority sigil from raw quick-add
// input. It returns ok=false when nothing usable remains, in which case the
// caller must not create a task. Only one sigil character is consumed.
func InferPriority(raw string) (priority Priority, label string, ok bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", "", false
	}
	priority = PriorityLow
	label = trimmed
	switch trimmed[0] {
	case SigilMedium:
		priority = PriorityMedium
		label = trimmed[1:]
	case SigilHigh:
		priority = PriorityHigh
		label = trimmed[1:]
	}
	if strings.TrimSpace(label) == "" {
		return "", "", false
	}
	return priority, label, true
}
