// Package estio provides a high-level façade over the categorized memory
// store and the agent toolkits built on it. Most applications interact with
// this package by:
//  1. Creating an Estio via New() (optionally overriding the default
//     in-memory document and session stores)
//  2. Building an assistant (real-estate advisor or email assistant) around
//     a model
//  3. Running chat turns through the returned runner
//
// All defaults are safe for local development and testing; production
// deployments supply the Couchbase document store and a structured logger.
package estio

import (
	"github.com/estio-ai/estio/agent"
	"github.com/estio-ai/estio/core"
	"github.com/estio-ai/estio/docstore"
	"github.com/estio-ai/estio/logging"
	"github.com/estio-ai/estio/memstore"
	"github.com/estio-ai/estio/model"
	"github.com/estio-ai/estio/runner"
	"github.com/estio-ai/estio/session"
	"github.com/estio-ai/estio/toolkit/mailbox"
	"github.com/estio-ai/estio/toolkit/realestate"
)

// Options configures the Estio instance.
type Options struct {
	// DocumentStore backs the categorized memory store. Defaults to the
	// in-memory implementation.
	DocumentStore core.DocumentStore
	// SessionStore persists conversation history. Defaults to in-memory.
	SessionStore core.SessionStore
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Estio aggregates the memory store and assistant wiring.
type Estio struct {
	store    *memstore.Store
	sessions core.SessionStore
	logger   logging.Logger
}

// New creates a new Estio instance with optional overrides. Any unset service
// is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *Estio {
	opts := Options{
		DocumentStore: docstore.NewInMemoryStore(),
		SessionStore:  session.NewInMemoryStore(),
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Estio{
		store:    memstore.New(opts.DocumentStore, memstore.WithLogger(opts.Logger)),
		sessions: opts.SessionStore,
		logger:   opts.Logger,
	}
}

// MemoryStore returns the categorized memory store handle.
func (e *Estio) MemoryStore() *memstore.Store { return e.store }

// NewRealEstateAdvisor builds the property advisor assistant around the
// given model and returns a runner ready for chat turns.
func (e *Estio) NewRealEstateAdvisor(llm model.Model) *runner.Runner {
	kit := realestate.New(e.store)
	a := agent.New("RealEstateAdvisor", llm, realEstateInstruction, func(o *agent.Options) {
		o.Description = "Analyzes client real estate needs and provides market research and property recommendations tailored to the Portuguese property market."
		o.Tools = kit.Tools()
	})
	return e.newRunner(a)
}

// NewEmailAssistant builds the email management assistant around the given
// model and returns a runner ready for chat turns.
func (e *Estio) NewEmailAssistant(llm model.Model) *runner.Runner {
	kit := mailbox.New(e.store)
	a := agent.New("EmailAssistant", llm, emailInstruction, func(o *agent.Options) {
		o.Description = "Manages and analyzes email communications: stores, retrieves and summarizes emails with date, from, to, subject and body fields."
		o.Tools = kit.Tools()
	})
	return e.newRunner(a)
}

func (e *Estio) newRunner(a *agent.Agent) *runner.Runner {
	return runner.New(a, func(o *runner.Options) {
		o.SessionStore = e.sessions
		o.Logger = e.logger
	})
}

const realEstateInstruction = `You are an expert Real Estate Advisor specializing in the Portuguese property market. Your role is to:
1. Understand client needs and preferences through conversation
2. Use retrieve_preferences with category 'property_preferences' to recall client history
3. Call find_properties with location and budget parameters to suggest suitable properties
4. Provide market analysis and negotiation support based on current market conditions
5. If no preferences exist, guide the client to save their preferences using save_preference

Key Expertise:
- Portuguese property market trends and values
- Property investment analysis
- Negotiation strategies
- Market research and analytics
- Client communication and relationship management`

const emailInstruction = `You are a friendly and efficient assistant for managing emails.

Email Management Workflow:
1. To save an email, use the store_email tool. You must provide from, to, date, subject and body. The cc field is optional.
2. To find emails, use the retrieve_emails tool. You can provide an optional query to search through the content of all stored emails. If you omit the query, you will get all emails.
3. To fetch one specific email, use get_email_by_id with its id.
4. Use the retrieved emails to answer questions or compose new messages.`
