package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sandeepkv93/tasksift/internal/model"
)

func TestDefaultStructuredIsUnrestricted(t *testing.T) {
	spec := DefaultStructured().Normalize()

	assert.False(t, spec.RestrictPriorities)
	assert.False(t, spec.RestrictStatuses)
	assert.Equal(t, "", spec.SearchText)
}

func TestStructuredPassesSearchTextUntrimmed(t *testing.T) {
	in := DefaultStructured()
	in.SearchText = "  Buy "

	assert.Equal(t, "  Buy ", in.Normalize().SearchText)
}

func TestStructuredEmptySetsMatchNothing(t *testing.T) {
	spec := Structured{}.Normalize()

	assert.True(t, spec.RestrictPriorities)
	assert.True(t, spec.RestrictStatuses)
	assert.Empty(t, spec.EnabledPriorities())
	assert.Empty(t, spec.EnabledStatuses())
}

func TestStructuredToggleDoesNotAliasOriginal(t *testing.T) {
	base := DefaultStructured()
	next := base.TogglePriority(model.PriorityMedium).ToggleStatus(model.StatusCompleted)

	assert.True(t, base.Priorities[model.PriorityMedium])
	assert.True(t, base.Statuses[model.StatusCompleted])

	spec := next.Normalize()
	assert.True(t, spec.RestrictPriorities)
	assert.Equal(t, []model.Priority{model.PriorityLow, model.PriorityHigh}, spec.EnabledPriorities())
	assert.Equal(t, []model.Status{model.StatusPending}, spec.EnabledStatuses())
}

func TestStructuredIgnoresUncheckedAndUnknownKeys(t *testing.T) {
	in := Structured{
		Priorities: map[model.Priority]bool{model.PriorityHigh: true, model.PriorityLow: false, "urgent": true},
		Statuses:   map[model.Status]bool{model.StatusPending: true},
	}
	spec := in.Normalize()

	assert.Equal(t, []model.Priority{model.PriorityHigh}, spec.EnabledPriorities())
	assert.Len(t, spec.Priorities, 1)
}

func TestModeIsValid(t *testing.T) {
	assert.True(t, ModeStructured.IsValid())
	assert.True(t, ModeSigil.IsValid())
	assert.False(t, Mode("fuzzy").IsValid())
}
