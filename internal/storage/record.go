package storage

import (
	"fmt"

	"github.com/sandeepkv93/tasksift/internal/model"
)

// Record is the persisted shape of a single task. The list of records is
// stored in insertion order and rewritten in full after every mutation.
type Record struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	IsCompleted bool   `json:"isCompleted" yaml:"isCompleted"`
	Priority    string `json:"priority" yaml:"priority"`
}

func FromTasks(tasks []model.Task) []Record {
	out := make([]Record, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, Record{
			ID:          t.ID,
			Label:       t.Label,
			IsCompleted: t.IsCompleted,
			Priority:    string(t.Priority),
		})
	}
	return out
}

// ToTasks validates every record. Any invalid or duplicate record makes the
// whole list malformed.
func ToTasks(records []Record) ([]model.Task, error) {
	out := make([]model.Task, 0, len(records))
	seen := make(map[string]bool, len(records))
	for i, r := range records {
		task := model.Task{
			ID:          r.ID,
			Label:       r.Label,
			IsCompleted: r.IsCompleted,
			Priority:    model.Priority(r.Priority),
		}
		if err := task.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformed, i, err)
		}
		if seen[task.ID] {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrMalformed, task.ID)
		}
		seen[task.ID] = true
		out = append(out, task)
	}
	return out, nil
}
