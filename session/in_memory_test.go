package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estio-ai/estio/core"
)

// Interface compliance (compile-time assertion)
var _ core.SessionStore = (*InMemoryStore)(nil)

func TestInMemoryStore_CreateAndGet(t *testing.T) {
	store := NewInMemoryStore()

	created, err := store.Create("s1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "s1", created.ID)
	assert.Equal(t, "u1", created.UserID)

	got, err := store.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.Empty(t, got.GetEvents())
}

func TestInMemoryStore_GetMissing(t *testing.T) {
	store := NewInMemoryStore()
	_, err := store.Get("nope")
	assert.Error(t, err)
}

func TestInMemoryStore_AppendEvent(t *testing.T) {
	store := NewInMemoryStore()
	_, err := store.Create("s1", "u1")
	require.NoError(t, err)

	ev := core.Event{
		ID:        "ev1",
		Author:    "user",
		Content:   core.NewUserText("hello"),
		Timestamp: time.Now(),
	}
	require.NoError(t, store.AppendEvent("s1", ev))

	got, err := store.Get("s1")
	require.NoError(t, err)
	events := got.GetEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "ev1", events[0].ID)
	assert.Equal(t, "hello", events[0].Content.Text())

	assert.Error(t, store.AppendEvent("nope", ev))
}

func TestInMemoryStore_CloneIsolation(t *testing.T) {
	store := NewInMemoryStore()
	_, err := store.Create("s1", "u1")
	require.NoError(t, err)

	got, _ := store.Get("s1")
	got.AddEvent(core.Event{ID: "rogue"})

	again, _ := store.Get("s1")
	assert.Empty(t, again.GetEvents(), "mutating a returned clone must not affect the store")
}
