package estio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estio-ai/estio/model"
	"github.com/estio-ai/estio/toolkit/mailbox"
	"github.com/estio-ai/estio/toolkit/realestate"
)

func TestAdvisorEndToEnd(t *testing.T) {
	app := New()

	mock := model.NewMockModel("test")
	mock.EnqueueToolCall("fc1", "save_preference", `{"category":"property_preferences","preference":"apartment with pool"}`)
	mock.EnqueueText("Noted! I'll look for apartments with pools.")
	mock.EnqueueToolCall("fc2", "find_properties", `{"location":"Lisbon","budget":"300000 EUR"}`)
	mock.EnqueueText("Here are three Lisbon apartments within your budget.")

	r := app.NewRealEstateAdvisor(mock)
	require.NoError(t, r.CreateSession("s1", "client-1"))
	ctx := context.Background()

	reply, err := r.Ask(ctx, "client-1", "s1", "I want an apartment with a pool")
	require.NoError(t, err)
	assert.Equal(t, "Noted! I'll look for apartments with pools.", reply)

	reply, err = r.Ask(ctx, "client-1", "s1", "Find me something in Lisbon for 300000 EUR")
	require.NoError(t, err)
	assert.Equal(t, "Here are three Lisbon apartments within your budget.", reply)

	prefs, err := app.MemoryStore().Search(ctx, "client-1", realestate.PreferenceCategory)
	require.NoError(t, err)
	assert.Equal(t, []string{"apartment with pool"}, prefs)
}

func TestMailboxEndToEnd(t *testing.T) {
	app := New()

	mock := model.NewMockModel("test")
	mock.EnqueueToolCall("fc1", "store_email", `{"from":"John <j@example.com>","to":"Jane <jane@example.com>","date":"2023-01-01","subject":"Meeting","body":"Hi, team."}`)
	mock.EnqueueText("Stored the email about the meeting.")

	r := app.NewEmailAssistant(mock)
	require.NoError(t, r.CreateSession("s1", "client-1"))

	reply, err := r.Ask(context.Background(), "client-1", "s1", "store this email")
	require.NoError(t, err)
	assert.Equal(t, "Stored the email about the meeting.", reply)

	emails, err := app.MemoryStore().Search(context.Background(), "client-1", mailbox.Category)
	require.NoError(t, err)
	require.Len(t, emails, 1)
	assert.Contains(t, emails[0], `"subject":"Meeting"`)
}

func TestAssistantsShareOneMemoryStore(t *testing.T) {
	app := New()
	ctx := context.Background()

	require.NoError(t, app.MemoryStore().Add(ctx, "u1", "property_preferences", "garden"))

	prefs, err := app.MemoryStore().Search(ctx, "u1", "property_preferences")
	require.NoError(t, err)
	assert.Equal(t, []string{"garden"}, prefs)

	emails, err := app.MemoryStore().Search(ctx, "u1", mailbox.Category)
	require.NoError(t, err)
	assert.Empty(t, emails, "categories stay isolated across toolkits")
}
