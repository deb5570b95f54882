package store

import (
	"context"
	"encoding/json"
	"sync"
)

// memoryKVStore is an in-memory [KVStore] used by tests and by ephemeral
// client sessions that do not need durability.
type memoryKVStore struct {
	mu   sync.RWMutex
	docs map[string]json.RawMessage
}

// NewMemoryKVStore constructs an empty in-memory [KVStore].
func NewMemoryKVStore() KVStore {
	return &memoryKVStore{
		docs: make(map[string]json.RawMessage),
	}
}

func (s *memoryKVStore) GetMap(_ context.Context, rootKey string) (map[string]json.RawMessage, error) {
	s.mu.RLock()
	raw, ok := s.docs[rootKey]
	s.mu.RUnlock()

	if !ok {
		return map[string]json.RawMessage{}, nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, ErrDecodingDocument
	}
	if doc == nil {
		doc = map[string]json.RawMessage{}
	}

	return doc, nil
}

func (s *memoryKVStore) SetMap(_ context.Context, rootKey string, doc map[string]json.RawMessage) error {
	if doc == nil {
		doc = map[string]json.RawMessage{}
	}
	return s.set(rootKey, doc)
}

func (s *memoryKVStore) GetArray(_ context.Context, rootKey string) ([]json.RawMessage, error) {
	s.mu.RLock()
	raw, ok := s.docs[rootKey]
	s.mu.RUnlock()

	if !ok {
		return []json.RawMessage{}, nil
	}

	var doc []json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, ErrDecodingDocument
	}

	return doc, nil
}

func (s *memoryKVStore) SetArray(_ context.Context, rootKey string, doc []json.RawMessage) error {
	if doc == nil {
		doc = []json.RawMessage{}
	}
	return s.set(rootKey, doc)
}

func (s *memoryKVStore) set(rootKey string, doc any) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return ErrEncodingDocument
	}

	s.mu.Lock()
	s.docs[rootKey] = payload
	s.mu.Unlock()

	return nil
}
