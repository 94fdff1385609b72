package docstore

import (
	"context"
	"sync"

	"github.com/estio-ai/estio/core"
)

// InMemoryStore is a volatile DocumentStore implementation storing documents
// in a process local map. It is safe for concurrent access and best suited
// for tests or ephemeral demo runs. Documents are cloned on both read and
// write so callers and the store never share mutable state.
type InMemoryStore struct {
	mu   sync.RWMutex
	docs map[string]core.UserDocument
}

// NewInMemoryStore constructs an empty in-memory document store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{docs: make(map[string]core.UserDocument)}
}

// Get returns a clone of the document stored under id, or
// core.ErrDocumentNotFound when absent.
func (s *InMemoryStore) Get(_ context.Context, id string) (core.UserDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, core.ErrDocumentNotFound
	}
	return doc.Clone(), nil
}

// Upsert stores a clone of the provided document under id, replacing any
// previous value.
func (s *InMemoryStore) Upsert(_ context.Context, id string, doc core.UserDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[id] = doc.Clone()
	return nil
}

// Len reports the number of stored documents. Test helper.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
