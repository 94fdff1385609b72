package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estio-ai/estio/agent"
	"github.com/estio-ai/estio/core"
	"github.com/estio-ai/estio/docstore"
	"github.com/estio-ai/estio/memstore"
	"github.com/estio-ai/estio/model"
	"github.com/estio-ai/estio/toolkit/realestate"
)

func advisorAgent(mock *model.MockModel, store *memstore.Store) *agent.Agent {
	kit := realestate.New(store)
	return agent.New("RealEstateAdvisor", mock, "You are a real estate advisor.", func(o *agent.Options) {
		o.Description = "Advises on the Portuguese property market."
		o.Tools = kit.Tools()
	})
}

func TestRunner_PlainTextTurn(t *testing.T) {
	mock := model.NewMockModel("test")
	mock.EnqueueText("Hello! How can I help with your property search?")

	r := New(advisorAgent(mock, memstore.New(docstore.NewInMemoryStore())))
	require.NoError(t, r.CreateSession("s1", "u1"))

	reply, err := r.Ask(context.Background(), "u1", "s1", "Hi")
	require.NoError(t, err)
	assert.Equal(t, "Hello! How can I help with your property search?", reply)
}

func TestRunner_ToolCallTurn(t *testing.T) {
	store := memstore.New(docstore.NewInMemoryStore())
	mock := model.NewMockModel("test")
	mock.EnqueueToolCall("fc1", "save_preference", `{"category":"property_preferences","preference":"apartment"}`)
	mock.EnqueueText("Saved your preference for an apartment.")

	r := New(advisorAgent(mock, store))
	require.NoError(t, r.CreateSession("s1", "u1"))

	reply, err := r.Ask(context.Background(), "u1", "s1", "I want an apartment")
	require.NoError(t, err)
	assert.Equal(t, "Saved your preference for an apartment.", reply)

	// the tool ran with the caller's identity, not some ambient default
	entries, err := store.Search(context.Background(), "u1", realestate.PreferenceCategory)
	require.NoError(t, err)
	assert.Equal(t, []string{"apartment"}, entries)

	// second model call carried the tool response back
	reqs := mock.Requests()
	require.Len(t, reqs, 2)
	last := reqs[1].Contents[len(reqs[1].Contents)-1]
	assert.Equal(t, "tool", last.Role)
	fr, ok := last.Parts[0].(core.FunctionResponsePart)
	require.True(t, ok)
	assert.Equal(t, "fc1", fr.FunctionResponse.ID)
	assert.Contains(t, fr.FunctionResponse.Response, `"status":"success"`)
}

func TestRunner_UnknownToolBecomesErrorResult(t *testing.T) {
	mock := model.NewMockModel("test")
	mock.EnqueueToolCall("fc1", "no_such_tool", `{}`)
	mock.EnqueueText("Sorry, something went wrong.")

	r := New(advisorAgent(mock, memstore.New(docstore.NewInMemoryStore())))
	require.NoError(t, r.CreateSession("s1", "u1"))

	reply, err := r.Ask(context.Background(), "u1", "s1", "do something odd")
	require.NoError(t, err, "tool failures must not abort the turn")
	assert.Equal(t, "Sorry, something went wrong.", reply)

	reqs := mock.Requests()
	last := reqs[1].Contents[len(reqs[1].Contents)-1]
	fr := last.Parts[0].(core.FunctionResponsePart)
	assert.Contains(t, fr.FunctionResponse.Response, `"status":"error"`)
}

func TestRunner_ValidationFailureBecomesErrorResult(t *testing.T) {
	mock := model.NewMockModel("test")
	mock.EnqueueToolCall("fc1", "save_preference", `{"category":"property_preferences"}`)
	mock.EnqueueText("I need the preference text as well.")

	r := New(advisorAgent(mock, memstore.New(docstore.NewInMemoryStore())))
	require.NoError(t, r.CreateSession("s1", "u1"))

	_, err := r.Ask(context.Background(), "u1", "s1", "save it")
	require.NoError(t, err)

	reqs := mock.Requests()
	last := reqs[1].Contents[len(reqs[1].Contents)-1]
	fr := last.Parts[0].(core.FunctionResponsePart)
	assert.Contains(t, fr.FunctionResponse.Response, "VALIDATION_ERROR")
}

func TestRunner_ModelCallLimit(t *testing.T) {
	mock := model.NewMockModel("test")
	for i := 0; i < 3; i++ {
		mock.EnqueueToolCall("fc", "retrieve_preferences", `{"category":"property_preferences"}`)
	}

	r := New(advisorAgent(mock, memstore.New(docstore.NewInMemoryStore())), func(o *Options) {
		o.MaxModelCalls = 3
	})
	require.NoError(t, r.CreateSession("s1", "u1"))

	_, err := r.Ask(context.Background(), "u1", "s1", "loop forever")
	assert.Error(t, err)
}

func TestRunner_HistoryAccumulates(t *testing.T) {
	mock := model.NewMockModel("test")
	mock.EnqueueText("first reply")
	mock.EnqueueText("second reply")

	r := New(advisorAgent(mock, memstore.New(docstore.NewInMemoryStore())))
	require.NoError(t, r.CreateSession("s1", "u1"))

	_, err := r.Ask(context.Background(), "u1", "s1", "first question")
	require.NoError(t, err)
	_, err = r.Ask(context.Background(), "u1", "s1", "second question")
	require.NoError(t, err)

	reqs := mock.Requests()
	require.Len(t, reqs, 2)
	// second request sees: first question, first reply, second question
	require.Len(t, reqs[1].Contents, 3)
	assert.Equal(t, "first question", reqs[1].Contents[0].Text())
	assert.Equal(t, "first reply", reqs[1].Contents[1].Text())
	assert.Equal(t, "second question", reqs[1].Contents[2].Text())
}

func TestRunner_LazySessionCreation(t *testing.T) {
	mock := model.NewMockModel("test")
	mock.EnqueueText("hello")

	r := New(advisorAgent(mock, memstore.New(docstore.NewInMemoryStore())))

	// no CreateSession call; Ask creates the session on demand
	reply, err := r.Ask(context.Background(), "u1", "fresh", "hi")
	require.NoError(t, err)
	assert.Equal(t, "hello", reply)
}
