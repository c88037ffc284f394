package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sandeepkv93/tasksift/internal/model"
)

// FileStore keeps the task list in one file. Files ending in .yaml or .yml
// are written as YAML, everything else as indented JSON.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: strings.TrimSpace(path)}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) isYAML() bool {
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func (s *FileStore) Load(_ context.Context) ([]model.Task, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Task{}, nil
		}
		return nil, err
	}
	if strings.TrimSpace(string(raw)) == "" {
		return []model.Task{}, nil
	}
	if !s.isYAML() {
		return decodeJSON(raw)
	}
	var records []Record
	if err := yaml.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return ToTasks(records)
}

// Save writes to a temporary sibling and renames it over the target.
func (s *FileStore) Save(_ context.Context, tasks []model.Task) error {
	records := FromTasks(tasks)
	var (
		payload []byte
		err     error
	)
	if s.isYAML() {
		payload, err = yaml.Marshal(records)
	} else {
		payload, err = json.MarshalIndent(records, "", "  ")
		payload = append(payload, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	dir := filepath.Dir(s.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
