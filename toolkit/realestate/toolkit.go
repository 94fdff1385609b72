// Package realestate exposes the real-estate advisor tool set: saving and
// recalling client preferences through the categorized memory store, and
// generating synthetic property suggestions from them.
package realestate

import (
	"math/rand"
	"time"

	"github.com/estio-ai/estio/core"
	"github.com/estio-ai/estio/memstore"
	"github.com/estio-ai/estio/tool"
)

// PreferenceCategory is the memory category used for property preferences.
const PreferenceCategory = "property_preferences"

// Toolkit bundles the advisor tools around one memory store handle. The
// store is passed in explicitly; the toolkit keeps no ambient state.
type Toolkit struct {
	store  *memstore.Store
	finder *Finder
}

// Options configure the Toolkit.
type Options struct {
	// Rand is the random source for listing generation. Defaults to a
	// time-seeded source.
	Rand *rand.Rand
}

// New creates a Toolkit over the given memory store.
func New(store *memstore.Store, optFns ...func(o *Options)) *Toolkit {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Toolkit{store: store, finder: NewFinder(opts.Rand)}
}

// Tools returns the full advisor tool set for agent registration.
func (k *Toolkit) Tools() []tool.Tool {
	return []tool.Tool{k.SavePreferenceTool(), k.RetrievePreferencesTool(), k.FindPropertiesTool()}
}

// SavePreferenceTool stores a free-text preference under a caller-supplied category.
func (k *Toolkit) SavePreferenceTool() tool.Tool {
	return tool.NewFunctionTool(
		"save_preference",
		"Save a client preference to persistent memory under a category (e.g. 'property_preferences')",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"category":   map[string]any{"type": "string", "description": "Category for the preference"},
				"preference": map[string]any{"type": "string", "description": "The preference to save"},
			},
			"required": []string{"category", "preference"},
		},
		func(tc *core.ToolContext, args map[string]any) (any, error) {
			category, _ := args["category"].(string)
			preference, _ := args["preference"].(string)

			if err := k.store.Add(tc.Context(), tc.UserID(), category, preference); err != nil {
				return tool.ErrorResult(err.Error()), nil
			}
			return map[string]any{
				"status":  "success",
				"message": "Preference saved in category '" + category + "'.",
			}, nil
		},
	)
}

// RetrievePreferencesTool recalls the preferences stored under a category.
func (k *Toolkit) RetrievePreferencesTool() tool.Tool {
	return tool.NewFunctionTool(
		"retrieve_preferences",
		"Retrieve the client preferences stored under a category",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"category": map[string]any{"type": "string", "description": "Category to retrieve preferences from"},
			},
			"required": []string{"category"},
		},
		func(tc *core.ToolContext, args map[string]any) (any, error) {
			category, _ := args["category"].(string)

			results, err := k.store.Search(tc.Context(), tc.UserID(), category)
			if err != nil {
				return tool.ErrorResult(err.Error()), nil
			}
			return map[string]any{
				"status":      "success",
				"preferences": results,
				"count":       len(results),
			}, nil
		},
	)
}

// FindPropertiesTool suggests properties for a location and budget, shaped
// by the client's saved property preferences.
func (k *Toolkit) FindPropertiesTool() tool.Tool {
	return tool.NewFunctionTool(
		"find_properties",
		"Find suitable properties for a location and budget based on the client's saved preferences",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"location": map[string]any{"type": "string", "description": "Location to search in"},
				"budget":   map[string]any{"type": "string", "description": "Budget in EUR, e.g. '250000 EUR'"},
			},
			"required": []string{"location", "budget"},
		},
		func(tc *core.ToolContext, args map[string]any) (any, error) {
			location, _ := args["location"].(string)
			budget, _ := args["budget"].(string)

			amount, err := ParseBudget(budget)
			if err != nil {
				return tool.ErrorResult(err.Error()), nil
			}

			prefs, err := k.store.Search(tc.Context(), tc.UserID(), PreferenceCategory)
			if err != nil {
				return tool.ErrorResult(err.Error()), nil
			}

			profile := ExtractProfile(prefs)
			listings := k.finder.Suggest(location, amount, profile, 3)

			tc.Logger().Info("realestate.find_properties.done", "location", location, "count", len(listings))

			return map[string]any{
				"status":         "success",
				"properties":     listings,
				"recommendation": Recommendation(budget, profile),
			}, nil
		},
	)
}
