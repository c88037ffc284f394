package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sandeepkv93/tasksift/internal/model"
)

var (
	ErrNotFound  = errors.New("storage: not found")
	ErrMalformed = errors.New("storage: malformed state")
)

// DefaultKey is the key the task list is stored under in a KV backend.
const DefaultKey = "tasks"

// Store loads and saves the whole task list. Load returns an empty list when
// nothing has been stored yet and ErrMalformed when stored data is unusable.
type Store interface {
	Load(ctx context.Context) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task) error
}

// KV is a minimal key-value put/get backend.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// ListStore keeps the task list as a JSON array under one KV key.
type ListStore struct {
	kv  KV
	key string
}

func NewListStore(kv KV, key string) *ListStore {
	if key == "" {
		key = DefaultKey
	}
	return &ListStore{kv: kv, key: key}
}

func (s *ListStore) Load(ctx context.Context) ([]model.Task, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []model.Task{}, nil
		}
		return nil, err
	}
	return decodeJSON(raw)
}

func (s *ListStore) Save(ctx context.Context, tasks []model.Task) error {
	payload, err := json.Marshal(FromTasks(tasks))
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	return s.kv.Put(ctx, s.key, payload)
}

func decodeJSON(raw []byte) ([]model.Task, error) {
	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return ToTasks(records)
}
