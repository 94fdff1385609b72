// Package couchbase provides a DocumentStore backed by a Couchbase cluster
// (including Capella) using the official gocb SDK. Documents live in one
// collection inside a caller-chosen scope, so separate use-cases (general
// preferences vs. email messages) can be partitioned by scope/collection
// without touching the store code.
package couchbase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/couchbase/gocb/v2"

	"github.com/estio-ai/estio/core"
	"github.com/estio-ai/estio/logging"
)

// Options configure the Couchbase document store.
type Options struct {
	// ScopeName partitions documents by use-case. Defaults to "agent".
	ScopeName string
	// CollectionName within the scope. Defaults to "memory".
	CollectionName string
	// ConnectTimeout bounds the initial bucket readiness wait.
	ConnectTimeout time.Duration
	// Logger for connection diagnostics. Defaults to NoOp.
	Logger logging.Logger
}

// Compile-time interface check.
var _ core.DocumentStore = (*Store)(nil)

// Store implements core.DocumentStore on top of a Couchbase collection.
type Store struct {
	cluster    *gocb.Cluster
	collection *gocb.Collection
	logger     logging.Logger
}

// New connects to the cluster, waits for the bucket to become ready and
// returns a Store bound to the configured scope/collection.
func New(connStr, username, password, bucketName string, optFns ...func(o *Options)) (*Store, error) {
	opts := Options{
		ScopeName:      "agent",
		CollectionName: "memory",
		ConnectTimeout: 10 * time.Second,
		Logger:         logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	cluster, err := gocb.Connect(connStr, gocb.ClusterOptions{
		Authenticator: gocb.PasswordAuthenticator{Username: username, Password: password},
	})
	if err != nil {
		return nil, fmt.Errorf("couchbase connect: %w", err)
	}

	bucket := cluster.Bucket(bucketName)
	if err := bucket.WaitUntilReady(opts.ConnectTimeout, nil); err != nil {
		return nil, fmt.Errorf("couchbase bucket %q not ready: %w", bucketName, err)
	}

	opts.Logger.Info("docstore.couchbase.connected", "bucket", bucketName, "scope", opts.ScopeName, "collection", opts.CollectionName)

	return &Store{
		cluster:    cluster,
		collection: bucket.Scope(opts.ScopeName).Collection(opts.CollectionName),
		logger:     opts.Logger,
	}, nil
}

// Get fetches the document stored under id. A missing document is reported
// as core.ErrDocumentNotFound so callers can treat it as an empty document.
func (s *Store) Get(ctx context.Context, id string) (core.UserDocument, error) {
	res, err := s.collection.Get(id, &gocb.GetOptions{Context: ctx})
	if err != nil {
		if errors.Is(err, gocb.ErrDocumentNotFound) {
			return nil, core.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("couchbase get %q: %w", id, err)
	}

	var doc core.UserDocument
	if err := res.Content(&doc); err != nil {
		return nil, fmt.Errorf("couchbase decode %q: %w", id, err)
	}
	return doc, nil
}

// Upsert stores the full document under id with create-or-replace semantics.
func (s *Store) Upsert(ctx context.Context, id string, doc core.UserDocument) error {
	if _, err := s.collection.Upsert(id, doc, &gocb.UpsertOptions{Context: ctx}); err != nil {
		return fmt.Errorf("couchbase upsert %q: %w", id, err)
	}
	return nil
}

// Close releases the underlying cluster connection.
func (s *Store) Close() error {
	return s.cluster.Close(nil)
}
