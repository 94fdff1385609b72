// Package tool implements the function / tool calling subsystem that lets
// agents invoke structured capabilities (memory writes, lookups, synthetic
// computations) with schema validated arguments and consistent error handling.
package tool

import (
	"fmt"

	"github.com/estio-ai/estio/core"
	"github.com/estio-ai/estio/internal/util"
)

// Tool defines the interface for extending agent capabilities with external functions.
//
// Tools receive a ToolContext carrying the request-scoped identity (user,
// session, function call id) plus a logger, so implementations never read
// per-call state from package level variables.
//
// Tool implementations should:
//   - Provide clear, descriptive names (snake_case) and descriptions
//   - Define a JSON schema for parameters
//   - Return result maps with a "status" key of "success" or "error" rather
//     than letting domain failures escape as Go errors
//   - Be safe for concurrent use
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description provided to the LLM
	// to help it understand when and how to use the tool.
	Description() string

	// Parameters returns a JSON schema describing the expected input format.
	Parameters() map[string]any

	// Call executes the tool with structured arguments and ToolContext.
	// Arguments are parsed from JSON and validated against the tool's schema.
	Call(toolCtx *core.ToolContext, args map[string]any) (any, error)
}

// ValidationError represents parameter validation errors with detailed information.
type ValidationError = util.ValidationError

// ToolError represents errors that occur during tool execution.
type ToolError struct {
	Tool    string `json:"tool"`              // Name of the tool that failed
	Message string `json:"message"`           // Error message
	Code    string `json:"code"`              // Error code for categorization
	Details any    `json:"details,omitempty"` // Additional error details
}

func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// NewToolError creates a new ToolError with the specified details.
func NewToolError(tool, message, code string) *ToolError {
	return &ToolError{
		Tool:    tool,
		Message: message,
		Code:    code,
	}
}

// ErrorResult is the uniform error-shaped tool result: a mapping with
// status "error" and a human readable message. Domain failures cross the
// tool boundary in this shape, never as raised errors.
func ErrorResult(message string) map[string]any {
	return map[string]any{"status": "error", "message": message}
}
