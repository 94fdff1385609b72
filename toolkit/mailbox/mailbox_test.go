package mailbox

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estio-ai/estio/core"
	"github.com/estio-ai/estio/docstore"
	"github.com/estio-ai/estio/logging"
	"github.com/estio-ai/estio/memstore"
)

func fixedClock() func() time.Time {
	t := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func testToolContext(userID string) *core.ToolContext {
	return core.NewToolContext(context.Background(), userID, "s1", "inv1", "fc1", logging.NoOpLogger{})
}

func validEmailArgs() map[string]any {
	return map[string]any{
		"from":    "John <j.doe@example.com>",
		"to":      "Jane <jane@example.com>",
		"date":    "2023-01-01",
		"subject": "Meeting",
		"body":    "Hi, team.",
	}
}

func TestStoreEmail_RoundTrip(t *testing.T) {
	store := memstore.New(docstore.NewInMemoryStore())
	kit := New(store, func(o *Options) { o.Now = fixedClock() })

	result, err := kit.StoreEmailTool().Call(testToolContext("u1"), validEmailArgs())
	require.NoError(t, err)
	assert.Equal(t, "success", result.(map[string]any)["status"])

	entries, err := store.Search(context.Background(), "u1", Category)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	var email Email
	require.NoError(t, json.Unmarshal([]byte(entries[0]), &email))
	assert.Equal(t, "Meeting", email.Subject)
	assert.NotEmpty(t, email.ID)
}

func TestStoreEmail_MissingBodyRejectedBeforeBackend(t *testing.T) {
	backend := docstore.NewInMemoryStore()
	kit := New(memstore.New(backend), func(o *Options) { o.Now = fixedClock() })

	args := validEmailArgs()
	delete(args, "body")

	result, err := kit.StoreEmailTool().Call(testToolContext("u1"), args)
	require.NoError(t, err)

	res := result.(map[string]any)
	assert.Equal(t, "error", res["status"])
	assert.Equal(t, "Missing required fields: date, from, to, subject, body", res["message"])
	assert.Equal(t, 0, backend.Len(), "no backend write on validation failure")
}

func TestRetrieveEmails_QueryFilter(t *testing.T) {
	store := memstore.New(docstore.NewInMemoryStore())
	kit := New(store, func(o *Options) { o.Now = fixedClock() })

	// raw entry shape written by the original composite-string variant
	require.NoError(t, store.Add(context.Background(), "u1", Category, "From: a\nTo: b"))

	tests := []struct {
		name  string
		query string
		count int
	}{
		{name: "case-insensitive match", query: "A", count: 1},
		{name: "no match", query: "zzz", count: 0},
		{name: "empty query returns all", query: "", count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := kit.RetrieveEmailsTool().Call(testToolContext("u1"), map[string]any{"query": tt.query})
			require.NoError(t, err)

			res := result.(map[string]any)
			assert.Equal(t, "success", res["status"])
			assert.Equal(t, tt.count, res["count"])
			assert.Len(t, res["emails"], tt.count)
		})
	}
}

func TestGetEmailByID(t *testing.T) {
	store := memstore.New(docstore.NewInMemoryStore())
	kit := New(store, func(o *Options) { o.Now = fixedClock() })

	_, err := kit.StoreEmailTool().Call(testToolContext("u1"), validEmailArgs())
	require.NoError(t, err)

	entries, err := store.Search(context.Background(), "u1", Category)
	require.NoError(t, err)
	var stored Email
	require.NoError(t, json.Unmarshal([]byte(entries[0]), &stored))

	result, err := kit.GetEmailByIDTool().Call(testToolContext("u1"), map[string]any{"email_id": stored.ID})
	require.NoError(t, err)

	res := result.(map[string]any)
	assert.Equal(t, "success", res["status"])
	assert.Equal(t, stored, res["email"])
}

func TestGetEmailByID_NotFound(t *testing.T) {
	store := memstore.New(docstore.NewInMemoryStore())
	kit := New(store)

	result, err := kit.GetEmailByIDTool().Call(testToolContext("u1"), map[string]any{"email_id": "email_404"})
	require.NoError(t, err)

	res := result.(map[string]any)
	assert.Equal(t, "error", res["status"])
	assert.Contains(t, res["message"], "email_404")
}

func TestFilterEmails(t *testing.T) {
	entries := []string{"Subject: Lisbon flat", "Subject: Porto house"}

	assert.Equal(t, entries, FilterEmails(entries, ""))
	assert.Equal(t, []string{"Subject: Lisbon flat"}, FilterEmails(entries, "lisbon"))
	assert.Empty(t, FilterEmails(entries, "algarve"))
}
