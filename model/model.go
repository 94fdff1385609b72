// Package model defines the normalized LLM interface driven by the runner
// and provides a deterministic mock for tests. Provider adapters live in the
// openai and anthropic subpackages.
package model

import (
	"context"
	"fmt"

	"github.com/estio-ai/estio/core"
)

// ToolDefinition declaratively exposes a callable function to the model.
type ToolDefinition struct {
	Type     string             `json:"type"` // "function"
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition describes an individual function (tool) exposed to the
// model. Parameters is a JSON Schema object (minimal subset expected).
type FunctionDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Request captures the normalized model input produced by the runner.
type Request struct {
	Instructions string           `json:"instructions"`
	Contents     []core.Content   `json:"contents"`
	Tools        []ToolDefinition `json:"tools,omitempty"`
}

// TokenUsage captures token usage statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is one complete model turn. Tool invocation requests appear as
// FunctionCallParts inside Content.
type Response struct {
	Content      core.Content `json:"content"`
	FinishReason string       `json:"finish_reason"` // "stop", "tool_calls", etc.
	Usage        *TokenUsage  `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name          string `json:"name"`
	Provider      string `json:"provider"` // "openai", "anthropic", "mock"
	SupportsTools bool   `json:"supports_tools"`
}

// Model is the minimal interface required by the runner to drive generation.
type Model interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
// Responses are consumed in order across Generate calls, so a scripted
// tool-call turn can be followed by a final text turn.
type MockModel struct {
	info      Info
	script    []Response
	requests  []Request
	nextIndex int
}

// NewMockModel constructs a MockModel with basic tool support enabled.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info: Info{Name: name, Provider: "mock", SupportsTools: true},
	}
}

// EnqueueText scripts a plain assistant text turn.
func (m *MockModel) EnqueueText(text string) {
	m.script = append(m.script, Response{
		Content:      core.Content{Role: "assistant", Parts: []core.Part{core.TextPart{Text: text}}},
		FinishReason: "stop",
	})
}

// EnqueueToolCall scripts a turn requesting a single tool invocation.
func (m *MockModel) EnqueueToolCall(id, name, arguments string) {
	m.script = append(m.script, Response{
		Content: core.Content{Role: "assistant", Parts: []core.Part{
			core.FunctionCallPart{FunctionCall: core.FunctionCall{ID: id, Name: name, Arguments: arguments}},
		}},
		FinishReason: "tool_calls",
	})
}

// Requests returns the requests seen so far, for assertions.
func (m *MockModel) Requests() []Request { return m.requests }

// Generate implements Model by replaying the scripted responses in order.
func (m *MockModel) Generate(_ context.Context, req Request) (*Response, error) {
	m.requests = append(m.requests, req)
	if m.nextIndex >= len(m.script) {
		return nil, fmt.Errorf("mock model: no scripted response for request %d", m.nextIndex)
	}
	resp := m.script[m.nextIndex]
	m.nextIndex++
	return &resp, nil
}

// Info implements Model interface.
func (m *MockModel) Info() Info { return m.info }
