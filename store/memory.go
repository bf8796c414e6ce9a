package store

import (
	"bytes"
	"context"
	"sync"

	"github.com/stsysd/notebook/model"
)

// MemoryStore はプロセス内のみで値を保持するSlotStoreの実装です。
type MemoryStore struct {
	mu    sync.Mutex
	slots map[string][]byte
}

// NewMemoryStore は空のMemoryStoreを作成します。
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

// Get は指定されたキーの値のコピーを返します。
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.slots[key]
	if !ok {
		return nil, model.ErrSlotNotFound
	}
	return bytes.Clone(v), nil
}

// Put は指定されたキーの値を上書きします。
func (s *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = bytes.Clone(value)
	return nil
}

// Close は何もしません。
func (s *MemoryStore) Close() error {
	return nil
}
