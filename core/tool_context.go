package core

import (
	"context"

	"github.com/estio-ai/estio/logging"
)

// ToolContext provides a constrained, auditable surface for tool / function
// implementations invoked by an agent. It carries the request-scoped identity
// (user, session, invocation) explicitly so tools never read it from ambient
// state.
type ToolContext struct {
	ctx            context.Context
	userID         string
	sessionID      string
	invocationID   string
	functionCallID string
	logger         logging.Logger
}

// NewToolContext constructs a tool context bound to a request identity and a
// unique functionCallID correlating the model request with the tool execution.
func NewToolContext(ctx context.Context, userID, sessionID, invocationID, functionCallID string, logger logging.Logger) *ToolContext {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &ToolContext{
		ctx:            ctx,
		userID:         userID,
		sessionID:      sessionID,
		invocationID:   invocationID,
		functionCallID: functionCallID,
		logger:         logger,
	}
}

// Context returns the context associated with the tool invocation.
func (tc *ToolContext) Context() context.Context {
	if tc.ctx == nil {
		return context.Background()
	}
	return tc.ctx
}

// UserID returns the user on whose behalf the tool runs.
func (tc *ToolContext) UserID() string { return tc.userID }

// SessionID returns the session ID associated with the tool invocation.
func (tc *ToolContext) SessionID() string { return tc.sessionID }

// InvocationID returns the invocation ID associated with the tool invocation.
func (tc *ToolContext) InvocationID() string { return tc.invocationID }

// FunctionCallID returns the function call ID associated with the tool invocation.
func (tc *ToolContext) FunctionCallID() string { return tc.functionCallID }

// Logger returns the logger associated with the tool invocation.
func (tc *ToolContext) Logger() logging.Logger { return tc.logger }
