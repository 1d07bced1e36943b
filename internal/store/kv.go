package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// KV is a file-backed key-value store. Each key maps to one JSON file under
// the base directory; writes are atomic (temp file + rename) and guarded by
// a single mutex, which is enough for a single-process service.
type KV struct {
	baseDir string
	mu      sync.Mutex
}

func NewKV(baseDir string) (*KV, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &KV{baseDir: baseDir}, nil
}

func (kv *KV) path(key string) string {
	return filepath.Join(kv.baseDir, key+".json")
}

// Get unmarshals the value stored under key into dest. Returns os.ErrNotExist
// when the key has never been written.
func (kv *KV) Get(key string, dest interface{}) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	data, err := os.ReadFile(kv.path(key))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode value for %q: %w", key, err)
	}
	return nil
}

func (kv *KV) Set(key string, value interface{}) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode value for %q: %w", key, err)
	}

	target := kv.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to commit %q: %w", key, err)
	}
	return nil
}

func (kv *KV) Delete(key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	err := os.Remove(kv.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}
