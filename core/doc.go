// Package core defines the shared contracts of estio: conversational content
// parts, the document store consumed by the memory layer, session history and
// the tool invocation context.
//
// The package holds interfaces and small value types only; concrete
// implementations live in their own packages (docstore, memstore, session,
// runner) and are selected at wiring time. Keeping the contracts centralized
// avoids dependency cycles between the store, tool and model layers.
package core
