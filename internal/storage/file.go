package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/terraincognita07/fitplanner/internal/services"
)

var _ services.SessionBackend = (*FileBackend)(nil)

var fileKeyPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

var ErrInvalidKey = errors.New("invalid storage key")

const deletingSuffix = ".deleting"

// FileBackend stores each key as <root>/<key>.json. A missing file means the
// key is absent.
type FileBackend struct {
	root string
	mu   sync.RWMutex
}

func NewFileBackend(root string) *FileBackend {
	return &FileBackend{root: root}
}

func (b *FileBackend) Init() error {
	if err := os.MkdirAll(b.root, 0o755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	return nil
}

func (b *FileBackend) Get(key string) ([]byte, bool, error) {
	path, err := b.keyPath(key)
	if err != nil {
		return nil, false, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return data, true, nil
}

func (b *FileBackend) Put(key string, value []byte) error {
	path, err := b.keyPath(key)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := os.MkdirAll(b.root, 0o755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	temp, err := os.CreateTemp(b.root, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", key, err)
	}
	tempPath := temp.Name()
	if _, err := temp.Write(value); err != nil {
		temp.Close()
		os.Remove(tempPath)
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := temp.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

func (b *FileBackend) Delete(keys ...string) error {
	paths := make([]string, 0, len(keys))
	for _, key := range keys {
		path, err := b.keyPath(key)
		if err != nil {
			return err
		}
		paths = append(paths, path)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// Keys are moved aside first so a failure leaves every key in place.
	moved := make([]string, 0, len(paths))
	for index, path := range paths {
		err := os.Rename(path, path+deletingSuffix)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			for _, restored := range moved {
				os.Rename(restored+deletingSuffix, restored)
			}
			return fmt.Errorf("delete %s: %w", keys[index], err)
		}
		moved = append(moved, path)
	}

	for _, path := range moved {
		if err := os.Remove(path + deletingSuffix); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}

func (b *FileBackend) keyPath(key string) (string, error) {
	if !fileKeyPattern.MatchString(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(b.root, key+".json"), nil
}
