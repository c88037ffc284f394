package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/tasksift/internal/model"
)

func setupSQLite(t *testing.T) *SQLiteKV {
	t.Helper()
	kv, err := OpenSQLite(t.Context(), filepath.Join(t.TempDir(), "tasksift-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestSQLiteKVPutGet(t *testing.T) {
	kv := setupSQLite(t)
	ctx := t.Context()

	if _, err := kv.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if err := kv.Put(ctx, "tasks", []byte("[]")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := kv.Put(ctx, "tasks", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := kv.Get(ctx, "tasks")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[{"id":"a"}]` {
		t.Fatalf("unexpected value: %q", got)
	}
}

func TestListStoreOverSQLite(t *testing.T) {
	store := NewListStore(setupSQLite(t), "")
	ctx := t.Context()

	empty, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty list, got %#v", empty)
	}

	tasks := []model.Task{
		{ID: "a", Label: "Buy milk", Priority: model.PriorityMedium},
		{ID: "b", Label: "Fix bug", Priority: model.PriorityHigh, IsCompleted: true},
	}
	if err := store.Save(ctx, tasks); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0] != tasks[0] || got[1] != tasks[1] {
		t.Fatalf("unexpected tasks after load: %#v", got)
	}
}
