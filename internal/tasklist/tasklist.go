// Package tasklist owns the task collection and exposes the operations the
// UI drives: create, toggle, delete, set filter and read the visible list.
package tasklist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"

	"github.com/sandeepkv93/tasksift/internal/filter"
	"github.com/sandeepkv93/tasksift/internal/ids"
	"github.com/sandeepkv93/tasksift/internal/model"
	"github.com/sandeepkv93/tasksift/internal/query"
	"github.com/sandeepkv93/tasksift/internal/storage"
)

type Counts struct {
	Total     int
	Pending   int
	Completed int
	Visible   int
}

// List is not safe for concurrent use. Every mutation is saved in full before
// it becomes visible; a failed save leaves the collection unchanged.
type List struct {
	store  storage.Store
	newID  ids.Generator
	logger *log.Logger
	tasks  []model.Task
	input  filter.Input
	spec   filter.Spec
}

type Option func(*List)

func WithLogger(logger *log.Logger) Option {
	return func(l *List) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func WithIDGenerator(gen ids.Generator) Option {
	return func(l *List) {
		if gen != nil {
			l.newID = gen
		}
	}
}

func WithFilter(in filter.Input) Option {
	return func(l *List) {
		if in != nil {
			l.input = in
		}
	}
}

// New reads the stored list once. Malformed state is logged and replaced by
// an empty collection; other read failures are returned.
func New(ctx context.Context, store storage.Store, opts ...Option) (*List, error) {
	if store == nil {
		return nil, errors.New("tasklist: nil store")
	}
	l := &List{
		store:  store,
		newID:  ids.NewULIDGenerator(),
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.SetFilter(l.input)

	tasks, err := store.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrMalformed):
		l.logger.Printf("stored tasks unreadable, starting empty: %v", err)
		tasks = nil
	case err != nil:
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	l.tasks = append([]model.Task{}, tasks...)
	l.logger.Printf("loaded %d task(s)", len(l.tasks))
	return l, nil
}

// AddTask infers priority from a leading sigil and appends the task. Input
// with no usable label is rejected with ok=false and nothing is saved.
func (l *List) AddTask(ctx context.Context, raw string) (model.Task, bool, error) {
	priority, label, ok := model.InferPriority(raw)
	if !ok {
		return model.Task{}, false, nil
	}
	task := model.Task{
		ID:       l.uniqueID(),
		Label:    label,
		Priority: priority,
	}
	next := append(slices.Clone(l.tasks), task)
	if err := l.commit(ctx, next); err != nil {
		return model.Task{}, false, err
	}
	return task, true, nil
}

// ToggleComplete flips the completion flag. Unknown ids are a no-op.
func (l *List) ToggleComplete(ctx context.Context, id string) (bool, error) {
	idx := l.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	next := slices.Clone(l.tasks)
	next[idx].IsCompleted = !next[idx].IsCompleted
	if err := l.commit(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteTask removes the task. Unknown ids are a no-op.
func (l *List) DeleteTask(ctx context.Context, id string) (bool, error) {
	idx := l.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	next := slices.Delete(slices.Clone(l.tasks), idx, idx+1)
	if err := l.commit(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// SetFilter replaces the active filter. A nil input clears it.
func (l *List) SetFilter(in filter.Input) {
	l.input = in
	if in == nil {
		l.spec = filter.MatchAll()
		return
	}
	l.spec = in.Normalize()
}

// Filter returns the active filter input, or nil when none is set.
func (l *List) Filter() filter.Input {
	return l.input
}

func (l *List) Spec() filter.Spec {
	return l.spec
}

// VisibleTasks recomputes the filtered view from scratch.
func (l *List) VisibleTasks() []model.Task {
	return query.Run(l.tasks, l.spec)
}

func (l *List) Tasks() []model.Task {
	return slices.Clone(l.tasks)
}

func (l *List) Get(id string) (model.Task, bool) {
	idx := l.indexOf(id)
	if idx < 0 {
		return model.Task{}, false
	}
	return l.tasks[idx], true
}

func (l *List) Counts() Counts {
	c := Counts{Total: len(l.tasks), Visible: len(l.VisibleTasks())}
	for _, t := range l.tasks {
		if t.IsCompleted {
			c.Completed++
		} else {
			c.Pending++
		}
	}
	return c
}

func (l *List) commit(ctx context.Context, next []model.Task) error {
	if err := l.store.Save(ctx, next); err != nil {
		l.logger.Printf("save failed: %v", err)
		return fmt.Errorf("save tasks: %w", err)
	}
	l.tasks = next
	return nil
}

func (l *List) indexOf(id string) int {
	return slices.IndexFunc(l.tasks, func(t model.Task) bool { return t.ID == id })
}

func (l *List) uniqueID() string {
	for {
		id := l.newID()
		if id != "" && l.indexOf(id) < 0 {
			return id
		}
	}
}
