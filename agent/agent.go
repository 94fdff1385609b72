// Package agent defines the model-backed conversational agent: a name,
// a description, an instruction prompt and a registered tool set. Agents are
// passive definitions; the runner package drives the model/tool loop.
package agent

import (
	"fmt"

	"github.com/estio-ai/estio/model"
	"github.com/estio-ai/estio/tool"
)

// Options configure an Agent instance.
type Options struct {
	// Description summarizes the agent for humans and routing layers.
	Description string
	// Tools registered at construction time.
	Tools []tool.Tool
}

// Agent is a model-backed agent definition: immutable after wiring, safe for
// concurrent use by the runner.
type Agent struct {
	name        string
	description string
	instruction string
	llm         model.Model
	tools       map[string]tool.Tool
	toolOrder   []string
}

// New creates an agent with the given name, model and instruction prompt.
func New(name string, llm model.Model, instruction string, optFns ...func(o *Options)) *Agent {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	a := &Agent{
		name:        name,
		description: opts.Description,
		instruction: instruction,
		llm:         llm,
		tools:       make(map[string]tool.Tool),
	}
	for _, t := range opts.Tools {
		a.RegisterTool(t)
	}
	return a
}

// Name returns the agent's unique name.
func (a *Agent) Name() string { return a.name }

// Description returns the agent's human-readable description.
func (a *Agent) Description() string { return a.description }

// Instruction returns the system prompt driving the agent.
func (a *Agent) Instruction() string { return a.instruction }

// Model returns the language model backing the agent.
func (a *Agent) Model() model.Model { return a.llm }

// RegisterTool adds a tool to the agent's set, replacing any previous tool
// with the same name.
func (a *Agent) RegisterTool(t tool.Tool) {
	if _, exists := a.tools[t.Name()]; !exists {
		a.toolOrder = append(a.toolOrder, t.Name())
	}
	a.tools[t.Name()] = t
}

// Tool returns the registered tool with the given name.
func (a *Agent) Tool(name string) (tool.Tool, error) {
	t, ok := a.tools[name]
	if !ok {
		return nil, fmt.Errorf("agent %q has no tool %q", a.name, name)
	}
	return t, nil
}

// Tools returns the registered tools in registration order.
func (a *Agent) Tools() []tool.Tool {
	out := make([]tool.Tool, 0, len(a.toolOrder))
	for _, name := range a.toolOrder {
		out = append(out, a.tools[name])
	}
	return out
}

// ToolDefinitions exposes the registered tools in the model's declaration format.
func (a *Agent) ToolDefinitions() []model.ToolDefinition {
	defs := make([]model.ToolDefinition, 0, len(a.toolOrder))
	for _, name := range a.toolOrder {
		t := a.tools[name]
		defs = append(defs, model.ToolDefinition{
			Type: "function",
			Function: model.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  t.Parameters(),
			},
		})
	}
	return defs
}
