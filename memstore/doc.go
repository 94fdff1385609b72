// Package memstore implements the categorized per-user memory store: one
// durable document per user mapping category names to ordered, de-duplicated
// entry lists.
//
// Semantics:
//   - Add appends an entry to a user's category unless an equal entry is
//     already present (idempotent append, insertion order preserved)
//   - Search returns the entries stored under a category; a missing document
//     or category reads as an empty list, never an error
//
// The backing core.DocumentStore only offers full-document get/upsert, so an
// Add is a read-modify-write cycle. Within one process, mutations are
// serialized per user by a keyed mutex; concurrent writers in separate
// processes still race with last-writer-wins overwrite, which is inherent to
// the unversioned upsert contract.
package memstore
