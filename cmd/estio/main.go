// Command estio runs an interactive chat session against one of the two
// assistants (real-estate advisor or email assistant), with memory persisted
// per user in Couchbase when configured, or in-process otherwise.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/estio-ai/estio"
	"github.com/estio-ai/estio/config"
	"github.com/estio-ai/estio/core"
	"github.com/estio-ai/estio/docstore"
	"github.com/estio-ai/estio/docstore/couchbase"
	"github.com/estio-ai/estio/logging"
	"github.com/estio-ai/estio/model"
	"github.com/estio-ai/estio/model/anthropic"
	"github.com/estio-ai/estio/model/openai"
	"github.com/estio-ai/estio/runner"
)

func main() {
	assistant := flag.String("assistant", "advisor", "assistant to run: advisor or mailbox")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.FromEnv()

	if err := cfg.ValidateModel(); err != nil {
		log.Fatal(err)
	}

	level := logging.LogLevelInfo
	if *verbose {
		level = logging.LogLevelDebug
	}
	logger := logging.NewSlogLogger(level, "text", false)

	docs, closeDocs, err := buildDocumentStore(cfg, logger)
	if err != nil {
		log.Fatalf("document store: %v", err)
	}
	defer closeDocs()

	app := estio.New(func(o *estio.Options) {
		o.DocumentStore = docs
		o.Logger = logger
	})

	var r *runner.Runner
	switch *assistant {
	case "advisor":
		r = app.NewRealEstateAdvisor(buildModel(cfg))
	case "mailbox":
		r = app.NewEmailAssistant(buildModel(cfg))
	default:
		log.Fatalf("unknown assistant %q (want advisor or mailbox)", *assistant)
	}

	sessionID := uuid.NewString()
	if err := r.CreateSession(sessionID, cfg.UserID); err != nil {
		log.Fatalf("create session: %v", err)
	}

	chat(r, cfg.UserID, sessionID, *assistant)
}

// buildDocumentStore selects Couchbase when configured and falls back to the
// volatile in-memory store for local experimentation.
func buildDocumentStore(cfg config.Config, logger logging.Logger) (core.DocumentStore, func(), error) {
	if !cfg.HasCouchbase() {
		logger.Warn("docstore.fallback.in_memory", "reason", "COUCHBASE_CONN_STR or COUCHBASE_BUCKET not set")
		return docstore.NewInMemoryStore(), func() {}, nil
	}

	store, err := couchbase.New(
		cfg.Couchbase.ConnStr,
		cfg.Couchbase.Username,
		cfg.Couchbase.Password,
		cfg.Couchbase.Bucket,
		func(o *couchbase.Options) {
			o.ScopeName = cfg.Couchbase.Scope
			o.CollectionName = cfg.Couchbase.Collection
			o.Logger = logger
		},
	)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}

// buildModel picks the provider from the configured API keys.
func buildModel(cfg config.Config) model.Model {
	if cfg.AnthropicAPIKey != "" {
		return anthropic.NewModel(func(o *anthropic.Options) {
			o.APIKey = cfg.AnthropicAPIKey
		})
	}
	return openai.NewModel()
}

// chat runs the interactive loop until the user quits.
func chat(r *runner.Runner, userID, sessionID, assistant string) {
	fmt.Printf("--- Interactive %s session (user %s) ---\n", assistant, userID)
	fmt.Println("Type 'quit' to end the session.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if q := strings.ToLower(query); q == "quit" || q == "exit" {
			fmt.Println("Ending session. Goodbye!")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		reply, err := r.Ask(ctx, userID, sessionID, query)
		cancel()
		if err != nil {
			fmt.Printf("!!! %v\n", err)
			continue
		}
		fmt.Printf("<<< %s\n", reply)
	}
}
