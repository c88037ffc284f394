package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sandeepkv93/tasksift/internal/model"
)

func TestListStoreMalformedPayload(t *testing.T) {
	kv := NewMemoryKV()
	ctx := t.Context()
	store := NewListStore(kv, "custom")

	cases := []string{
		`not json`,
		`{"id":"a"}`,
		`[{"id":"a","label":"x","isCompleted":false,"priority":"urgent"}]`,
		`[{"id":"a","label":"","isCompleted":false,"priority":"low"}]`,
		`[{"id":"a","label":"x","priority":"low"},{"id":"a","label":"y","priority":"low"}]`,
	}
	for _, payload := range cases {
		if err := kv.Put(ctx, "custom", []byte(payload)); err != nil {
			t.Fatalf("put: %v", err)
		}
		if _, err := store.Load(ctx); !errors.Is(err, ErrMalformed) {
			t.Fatalf("payload %q: expected ErrMalformed, got: %v", payload, err)
		}
	}
}

func TestListStoreWritesPersistedShape(t *testing.T) {
	kv := NewMemoryKV()
	ctx := t.Context()
	store := NewListStore(kv, "")
	if err := store.Save(ctx, []model.Task{{ID: "a", Label: "Walk dog", Priority: model.PriorityLow}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := kv.Get(ctx, DefaultKey)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := `[{"id":"a","label":"Walk dog","isCompleted":false,"priority":"low"}]`
	if string(raw) != want {
		t.Fatalf("persisted shape = %s, want %s", raw, want)
	}
}

func TestFileStoreJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tasks.json")
	store := NewFileStore(path)
	ctx := t.Context()

	got, err := store.Load(ctx)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty load for missing file, got %#v err=%v", got, err)
	}

	tasks := []model.Task{
		{ID: "a", Label: "Buy milk", Priority: model.PriorityMedium},
		{ID: "b", Label: "Fix bug", Priority: model.PriorityHigh, IsCompleted: true},
	}
	if err := store.Save(ctx, tasks); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be renamed away, stat err=%v", err)
	}
	got, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[1] != tasks[1] {
		t.Fatalf("unexpected tasks: %#v", got)
	}
}

func TestFileStoreYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	store := NewFileStore(path)
	ctx := t.Context()

	tasks := []model.Task{{ID: "a", Label: "Walk dog", Priority: model.PriorityLow, IsCompleted: true}}
	if err := store.Save(ctx, tasks); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(raw), "isCompleted: true") {
		t.Fatalf("expected yaml payload, got %q", raw)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0] != tasks[0] {
		t.Fatalf("unexpected tasks: %#v", got)
	}
}

func TestFileStoreMalformedAndBlank(t *testing.T) {
	dir := t.TempDir()
	ctx := t.Context()

	blank := filepath.Join(dir, "blank.json")
	if err := os.WriteFile(blank, []byte("  \n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := NewFileStore(blank).Load(ctx)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty load for blank file, got %#v err=%v", got, err)
	}

	bad := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(bad, []byte("id: [unterminated"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewFileStore(bad).Load(ctx); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got: %v", err)
	}
}
