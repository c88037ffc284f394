package filter

import (
	"strings"

	"github.com/sandeepkv93/tasksift/internal/model"
)

const (
	SigilLow       = '?'
	SigilMedium    = '!'
	SigilHigh      = '*'
	SigilPending   = '@'
	SigilCompleted = '#'
)

const sigilSet = "?!*@#"

// SigilString is the compact "[sigils]label" filter form, e.g. "?!Buy".
type SigilString string

// Parsed is the split form of a SigilString.
type Parsed struct {
	Options string
	Label   string
}

// ParseSigilString splits raw at the end of its maximal leading run of filter
// sigils. Characters outside the sigil set end the run and belong to the label.
func ParseSigilString(raw string) Parsed {
	i := 0
	for i < len(raw) && strings.IndexByte(sigilSet, raw[i]) >= 0 {
		i++
	}
	return Parsed{Options: raw[:i], Label: raw[i:]}
}

func (p Parsed) Has(sigil byte) bool {
	return strings.IndexByte(p.Options, sigil) >= 0
}

// Spec maps the sigils onto criteria. A selector group with no sigil present
// applies no restriction at all.
func (p Parsed) Spec() Spec {
	priorities := make(map[model.Priority]bool, len(model.Priorities))
	if p.Has(SigilLow) {
		priorities[model.PriorityLow] = true
	}
	if p.Has(SigilMedium) {
		priorities[model.PriorityMedium] = true
	}
	if p.Has(SigilHigh) {
		priorities[model.PriorityHigh] = true
	}

	statuses := make(map[model.Status]bool, len(model.Statuses))
	if p.Has(SigilPending) {
		statuses[model.StatusPending] = true
	}
	if p.Has(SigilCompleted) {
		statuses[model.StatusCompleted] = true
	}

	return Spec{
		SearchText:         p.Label,
		Priorities:         priorities,
		Statuses:           statuses,
		RestrictPriorities: len(priorities) > 0 && len(priorities) < len(model.Priorities),
		RestrictStatuses:   len(statuses) > 0 && len(statuses) < len(model.Statuses),
	}
}

func (s SigilString) Normalize() Spec {
	return ParseSigilString(string(s)).Spec()
}
