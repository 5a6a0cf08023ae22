// Package store holds the client-side state containers: session and cart.
// Each store owns one persistence key, loads it at startup and writes it back
// after every mutation; nothing else touches that key.
package store

import (
	"encoding/json"
	"sync"
)

// Storage is the durable client-side storage boundary. The file-backed
// implementation lives in internal/infrastructure/localstore.
type Storage interface {
	Load(key string, into any) (ok bool, err error)
	Save(key string, value any) error
	Delete(key string) error
}

// MemoryStorage is an in-memory Storage for tests and throwaway sessions.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemoryStorage builds an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: map[string][]byte{}}
}

func (m *MemoryStorage) Load(key string, into any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, into)
}

func (m *MemoryStorage) Save(key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = data
	return nil
}

func (m *MemoryStorage) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
