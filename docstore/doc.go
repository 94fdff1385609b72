// Package docstore contains concrete DocumentStore implementations. The
// store interface and UserDocument type reside in the core package. Import
// github.com/estio-ai/estio/core and depend on core.DocumentStore in your
// code; select an implementation (the in-memory store below, or the
// Couchbase-backed store in the couchbase subpackage) at wiring time.
package docstore
