// Package runner drives agent execution: it assembles the model request from
// session history, executes requested tool calls with an explicit
// request-scoped identity, persists events and returns the final assistant
// reply. A turn is synchronous; concurrency across turns is the caller's
// choice.
package runner
