package core

import (
	"context"
	"errors"
)

// ErrDocumentNotFound is returned by DocumentStore.Get when no document
// exists under the requested id. Callers recover from it locally (typically
// by substituting an empty document); it is never a user-visible failure.
var ErrDocumentNotFound = errors.New("document not found")

// UserDocument is the durable record holding all memory categories for one
// user: a mapping from category name to the ordered entries stored under it.
// A category absent from the document is equivalent to an empty sequence.
type UserDocument map[string][]string

// Clone returns a deep copy safe for independent mutation.
func (d UserDocument) Clone() UserDocument {
	clone := make(UserDocument, len(d))
	for category, entries := range d {
		cp := make([]string, len(entries))
		copy(cp, entries)
		clone[category] = cp
	}
	return clone
}

// DocumentStore is the durable key-value backend consumed by the memory
// store. Upsert has create-or-replace semantics for the full document; there
// are no partial patches. Implementations back it with a document database
// (docstore/couchbase) or a process-local map (docstore.InMemoryStore).
type DocumentStore interface {
	// Get fetches the document stored under id, or ErrDocumentNotFound.
	Get(ctx context.Context, id string) (UserDocument, error)

	// Upsert stores the full document under id, replacing any previous value.
	Upsert(ctx context.Context, id string, doc UserDocument) error
}
