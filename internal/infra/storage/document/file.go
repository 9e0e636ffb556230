package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore хранит все документы в одном JSON файле вида {"key": "<raw json>"}
// Значения хранятся строками, поэтому повреждённый документ не ломает остальные ключи
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore создает файловое хранилище. Файл создаётся при первой записи
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load читает документ по ключу
func (s *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.readAll()
	if err != nil {
		return nil, err
	}

	value, ok := docs[key]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	return []byte(value), nil
}

// Save записывает документ, перезаписывая файл целиком через временный файл и rename
// Если файл повреждён, он заменяется новым содержимым
func (s *FileStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.readAll()
	if errors.Is(err, ErrCorrupted) {
		docs = make(map[string]string)
	} else if err != nil {
		return err
	}

	docs[key] = string(value)

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: Save - marshal: %v", ErrFileIO, err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: Save - mkdir: %v", ErrFileIO, err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: Save - create temp: %v", ErrFileIO, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: Save - write temp: %v", ErrFileIO, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: Save - close temp: %v", ErrFileIO, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: Save - rename: %v", ErrFileIO, err)
	}

	return nil
}

func (s *FileStore) readAll() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read: %v", ErrFileIO, err)
	}
	if len(data) == 0 {
		return make(map[string]string), nil
	}

	docs := make(map[string]string)
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	return docs, nil
}
