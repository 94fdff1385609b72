// Package mailbox exposes the email assistant tool set over the categorized
// memory store. Emails are structured records with a generated id, serialized
// to JSON and stored as entries in the per-user "emails" category; by-id
// lookup scans that category so a single addressing model serves both
// retrieval paths.
package mailbox

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/estio-ai/estio/core"
	"github.com/estio-ai/estio/memstore"
	"github.com/estio-ai/estio/tool"
)

// Category is the memory category holding a user's emails.
const Category = "emails"

// Email is one stored message.
type Email struct {
	ID      string `json:"id"`
	From    string `json:"from"`
	To      string `json:"to"`
	Date    string `json:"date"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	CC      string `json:"cc,omitempty"`
}

// requiredFields lists the mandatory email fields in the order they are
// reported when storage is rejected.
var requiredFields = []string{"date", "from", "to", "subject", "body"}

// missingFieldsMessage is the rejection message for incomplete emails.
var missingFieldsMessage = "Missing required fields: " + strings.Join(requiredFields, ", ")

// Toolkit bundles the mailbox tools around one memory store handle.
type Toolkit struct {
	store *memstore.Store
	now   func() time.Time
}

// Options configure the Toolkit.
type Options struct {
	// Now supplies timestamps for generated email ids. Defaults to time.Now.
	Now func() time.Time
}

// New creates a Toolkit over the given memory store.
func New(store *memstore.Store, optFns ...func(o *Options)) *Toolkit {
	opts := Options{Now: time.Now}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Toolkit{store: store, now: opts.Now}
}

// Tools returns the full mailbox tool set for agent registration.
func (k *Toolkit) Tools() []tool.Tool {
	return []tool.Tool{k.StoreEmailTool(), k.RetrieveEmailsTool(), k.GetEmailByIDTool()}
}

// StoreEmailTool persists an email after validating that all required fields
// are present. Validation failures never reach the backend.
func (k *Toolkit) StoreEmailTool() tool.Tool {
	return tool.NewFunctionTool(
		"store_email",
		"Save an email or chat message with metadata (date, from, to, subject, body, optional cc)",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"from":    map[string]any{"type": "string", "description": "Sender, e.g. 'John Doe <john.doe@example.com>'"},
				"to":      map[string]any{"type": "string", "description": "Recipient"},
				"date":    map[string]any{"type": "string", "description": "Date of the email, e.g. 'YYYY-MM-DD'"},
				"subject": map[string]any{"type": "string", "description": "Subject line"},
				"body":    map[string]any{"type": "string", "description": "Email content"},
				"cc":      map[string]any{"type": "string", "description": "CC recipients (optional)"},
			},
		},
		func(tc *core.ToolContext, args map[string]any) (any, error) {
			email := Email{
				From:    stringArg(args, "from"),
				To:      stringArg(args, "to"),
				Date:    stringArg(args, "date"),
				Subject: stringArg(args, "subject"),
				Body:    stringArg(args, "body"),
				CC:      stringArg(args, "cc"),
			}

			if email.Date == "" || email.From == "" || email.To == "" || email.Subject == "" || email.Body == "" {
				return tool.ErrorResult(missingFieldsMessage), nil
			}

			email.ID = fmt.Sprintf("email_%d", k.now().UnixNano())

			entry, err := json.Marshal(email)
			if err != nil {
				return tool.ErrorResult(err.Error()), nil
			}

			if err := k.store.Add(tc.Context(), tc.UserID(), Category, string(entry)); err != nil {
				return tool.ErrorResult(err.Error()), nil
			}
			return map[string]any{
				"status":  "success",
				"message": "Email stored successfully.",
			}, nil
		},
	)
}

// RetrieveEmailsTool returns stored emails, optionally filtered by a
// case-insensitive substring match against the stored entry.
func (k *Toolkit) RetrieveEmailsTool() tool.Tool {
	return tool.NewFunctionTool(
		"retrieve_emails",
		"Retrieve stored emails, optionally filtered by a search term across all content",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{"type": "string", "description": "Search term; omit to get all emails"},
			},
		},
		func(tc *core.ToolContext, args map[string]any) (any, error) {
			entries, err := k.store.Search(tc.Context(), tc.UserID(), Category)
			if err != nil {
				return tool.ErrorResult(err.Error()), nil
			}

			query := stringArg(args, "query")
			matches := FilterEmails(entries, query)

			if query != "" {
				tc.Logger().Info("mailbox.retrieve_emails.filtered", "query", query, "count", len(matches))
			}

			return map[string]any{
				"status": "success",
				"emails": matches,
				"count":  len(matches),
			}, nil
		},
	)
}

// GetEmailByIDTool looks up a single stored email by its generated id.
func (k *Toolkit) GetEmailByIDTool() tool.Tool {
	return tool.NewFunctionTool(
		"get_email_by_id",
		"Retrieve a specific stored email by its id",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"email_id": map[string]any{"type": "string", "description": "Id of the email to fetch"},
			},
			"required": []string{"email_id"},
		},
		func(tc *core.ToolContext, args map[string]any) (any, error) {
			emailID, _ := args["email_id"].(string)

			entries, err := k.store.Search(tc.Context(), tc.UserID(), Category)
			if err != nil {
				return tool.ErrorResult(err.Error()), nil
			}

			for _, entry := range entries {
				var email Email
				if err := json.Unmarshal([]byte(entry), &email); err != nil {
					continue // legacy free-text entries have no id
				}
				if email.ID == emailID {
					return map[string]any{"status": "success", "email": email}, nil
				}
			}
			return tool.ErrorResult(fmt.Sprintf("Email with ID '%s' not found.", emailID)), nil
		},
	)
}

// FilterEmails returns the entries containing query as a case-insensitive
// substring. An empty query matches everything.
func FilterEmails(entries []string, query string) []string {
	if query == "" {
		matches := make([]string, len(entries))
		copy(matches, entries)
		return matches
	}
	q := strings.ToLower(query)
	matches := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry), q) {
			matches = append(matches, entry)
		}
	}
	return matches
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}
