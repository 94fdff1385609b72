package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/estio-ai/estio/agent"
	"github.com/estio-ai/estio/core"
	"github.com/estio-ai/estio/logging"
	"github.com/estio-ai/estio/model"
	"github.com/estio-ai/estio/session"
	"github.com/estio-ai/estio/tool"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// MaxModelCalls limits the number of model calls per turn, bounding
	// tool-call loops.
	MaxModelCalls int
	// SessionStore persists conversation history. Defaults to in-memory.
	SessionStore core.SessionStore
	// Logger for invocation diagnostics. Defaults to NoOp.
	Logger logging.Logger
}

// Runner coordinates one agent's execution: it builds model requests from
// session history, dispatches tool calls and persists the resulting events.
// Public methods are safe for concurrent use across sessions.
type Runner struct {
	agent         *agent.Agent
	maxModelCalls int
	sessions      core.SessionStore
	logger        logging.Logger
}

// New constructs a Runner with optional overrides.
func New(a *agent.Agent, optFns ...func(o *Options)) *Runner {
	opts := Options{
		MaxModelCalls: 10,
		SessionStore:  session.NewInMemoryStore(),
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Runner{
		agent:         a,
		maxModelCalls: opts.MaxModelCalls,
		sessions:      opts.SessionStore,
		logger:        opts.Logger,
	}
}

// CreateSession creates (or resets) a session bound to a user.
func (r *Runner) CreateSession(sessionID, userID string) error {
	_, err := r.sessions.Create(sessionID, userID)
	return err
}

// Ask runs one conversational turn for the given user and session: the user
// text is appended to history, the model is invoked, requested tool calls
// are executed with the user's identity, and the final assistant text is
// returned. Tool failures never abort the turn; they are fed back to the
// model as uniform error results.
func (r *Runner) Ask(ctx context.Context, userID, sessionID, text string) (string, error) {
	sess, err := r.sessions.Get(sessionID)
	if err != nil {
		if _, err := r.sessions.Create(sessionID, userID); err != nil {
			return "", fmt.Errorf("create session %q: %w", sessionID, err)
		}
		sess, err = r.sessions.Get(sessionID)
		if err != nil {
			return "", err
		}
	}

	invocationID := uuid.NewString()
	logger := r.logger

	logger.Info("runner.turn.start", "agent", r.agent.Name(), "user_id", userID, "session_id", sessionID, "invocation_id", invocationID)

	userContent := core.NewUserText(text)
	if err := r.appendEvent(sessionID, "user", userContent); err != nil {
		return "", err
	}

	contents := append(sess.ConversationHistory(), userContent)
	toolDefs := r.agent.ToolDefinitions()

	for call := 0; call < r.maxModelCalls; call++ {
		resp, err := r.agent.Model().Generate(ctx, model.Request{
			Instructions: r.agent.Instruction(),
			Contents:     contents,
			Tools:        toolDefs,
		})
		if err != nil {
			return "", fmt.Errorf("model generate: %w", err)
		}

		contents = append(contents, resp.Content)
		if err := r.appendEvent(sessionID, r.agent.Name(), resp.Content); err != nil {
			return "", err
		}

		functionCalls := collectFunctionCalls(resp.Content)
		if len(functionCalls) == 0 {
			logger.Info("runner.turn.done", "agent", r.agent.Name(), "invocation_id", invocationID, "model_calls", call+1)
			return resp.Content.Text(), nil
		}

		toolContent := core.Content{Role: "tool"}
		for _, fc := range functionCalls {
			toolContent.Parts = append(toolContent.Parts, core.FunctionResponsePart{
				FunctionResponse: r.executeToolCall(ctx, userID, sessionID, invocationID, fc),
			})
		}

		contents = append(contents, toolContent)
		if err := r.appendEvent(sessionID, r.agent.Name(), toolContent); err != nil {
			return "", err
		}
	}

	return "", fmt.Errorf("model call limit (%d) reached without final response", r.maxModelCalls)
}

// executeToolCall resolves and runs a single requested tool. Every failure is
// converted into the uniform {status, message} error-result shape so the
// model (and user) never sees an unhandled fault.
func (r *Runner) executeToolCall(ctx context.Context, userID, sessionID, invocationID string, fc core.FunctionCall) core.FunctionResponse {
	response := core.FunctionResponse{ID: fc.ID, Name: fc.Name}

	t, err := r.agent.Tool(fc.Name)
	if err != nil {
		response.Response = marshalResult(tool.ErrorResult(err.Error()))
		return response
	}

	args := map[string]any{}
	if fc.Arguments != "" {
		if err := json.Unmarshal([]byte(fc.Arguments), &args); err != nil {
			response.Response = marshalResult(tool.ErrorResult(fmt.Sprintf("invalid tool arguments: %v", err)))
			return response
		}
	}

	toolCtx := core.NewToolContext(ctx, userID, sessionID, invocationID, fc.ID, r.logger)
	result, err := t.Call(toolCtx, args)
	if err != nil {
		response.Response = marshalResult(tool.ErrorResult(err.Error()))
		return response
	}

	response.Response = marshalResult(result)
	return response
}

// appendEvent persists one content item to the session history.
func (r *Runner) appendEvent(sessionID, author string, content core.Content) error {
	return r.sessions.AppendEvent(sessionID, core.Event{
		ID:        uuid.NewString(),
		Author:    author,
		Content:   content,
		Timestamp: time.Now(),
	})
}

// collectFunctionCalls extracts the function call parts of a model turn.
func collectFunctionCalls(c core.Content) []core.FunctionCall {
	var calls []core.FunctionCall
	for _, p := range c.Parts {
		if fcp, ok := p.(core.FunctionCallPart); ok {
			calls = append(calls, fcp.FunctionCall)
		}
	}
	return calls
}

// marshalResult serializes a tool result for transport back to the model.
func marshalResult(result any) string {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf("%v", result)
	}
	return string(data)
}
