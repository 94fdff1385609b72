package memstore

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/estio-ai/estio/core"
	"github.com/estio-ai/estio/logging"
)

// Options configure a Store.
type Options struct {
	// Logger for diagnostic records of what was stored. Defaults to NoOp.
	Logger logging.Logger
}

// WithLogger sets the store logger.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// Store maps (user, category) to an ordered, de-duplicated list of string
// entries, persisted as one document per user in a core.DocumentStore.
//
// Add is a fetch-modify-upsert cycle against the backend; the store
// serializes mutations per user with a keyed mutex so concurrent in-process
// Adds for the same user cannot lose updates. Reads take no lock.
type Store struct {
	docs   core.DocumentStore
	logger logging.Logger

	mu    sync.Mutex
	users map[string]*sync.Mutex
}

// New creates a Store over the given document backend.
func New(docs core.DocumentStore, optFns ...func(o *Options)) *Store {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Store{docs: docs, logger: opts.Logger, users: make(map[string]*sync.Mutex)}
}

// docID derives the document key for a user.
func docID(userID string) string { return "user::" + userID }

// userLock returns the mutex serializing mutations for one user.
func (s *Store) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.users[userID]
	if !ok {
		l = &sync.Mutex{}
		s.users[userID] = l
	}
	return l
}

// Add appends entry to the user's category unless an equal entry is already
// stored there. A missing document is treated as empty, not an error; the
// document is created on first write. Only backend failures are returned.
func (s *Store) Add(ctx context.Context, userID, category, entry string) error {
	if userID == "" || category == "" {
		return fmt.Errorf("memstore: user id and category must be non-empty")
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	id := docID(userID)
	doc, err := s.docs.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, core.ErrDocumentNotFound) {
			return fmt.Errorf("memstore: fetch document for user %q: %w", userID, err)
		}
		doc = core.UserDocument{}
	}

	if slices.Contains(doc[category], entry) {
		s.logger.Debug("memstore.add.duplicate", "user_id", userID, "category", category)
		return nil
	}

	doc[category] = append(doc[category], entry)
	if err := s.docs.Upsert(ctx, id, doc); err != nil {
		return fmt.Errorf("memstore: persist document for user %q: %w", userID, err)
	}

	s.logger.Info("memstore.add.saved", "user_id", userID, "category", category, "entry", entry)
	return nil
}

// Search returns the entries stored under the user's category in insertion
// order. A missing document or absent category yields an empty list; only
// backend failures are returned as errors.
func (s *Store) Search(ctx context.Context, userID, category string) ([]string, error) {
	if userID == "" || category == "" {
		return nil, fmt.Errorf("memstore: user id and category must be non-empty")
	}

	doc, err := s.docs.Get(ctx, docID(userID))
	if err != nil {
		if errors.Is(err, core.ErrDocumentNotFound) {
			s.logger.Debug("memstore.search.empty", "user_id", userID, "category", category)
			return []string{}, nil
		}
		return nil, fmt.Errorf("memstore: fetch document for user %q: %w", userID, err)
	}

	entries := doc[category]
	results := make([]string, len(entries))
	copy(results, entries)

	s.logger.Info("memstore.search.done", "user_id", userID, "category", category, "count", len(results))
	return results, nil
}
