package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MO-OUISSI/commercewebsite-public/internal/domain"
)

var ErrInvalidCartKey = errors.New("invalid cart key")

// FileCartStore persists each cart as one JSON file under a data
// directory, the server-side analog of the client's local storage: one
// key, one serialized line-item array. Writes go through a temp file and
// rename so a crash never leaves a half-written cart.
type FileCartStore struct {
	dir string
}

func NewFileCartStore(dir string) (*FileCartStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cart data dir: %w", err)
	}
	return &FileCartStore{dir: dir}, nil
}

// path maps a key to its file. Keys come from client cookies, so
// anything that is not a plain path element is rejected before it can
// name a file outside the data dir.
func (s *FileCartStore) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || key != filepath.Base(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCartKey, key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func (s *FileCartStore) Load(key string) ([]domain.CartItem, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read cart %s: %w", key, err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, fmt.Errorf("decode cart %s: %w", key, err)
	}
	return items, true, nil
}

func (s *FileCartStore) Save(key string, items []domain.CartItem) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", key, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write cart %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit cart %s: %w", key, err)
	}
	return nil
}

func (s *FileCartStore) Delete(key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete cart %s: %w", key, err)
	}
	return nil
}
