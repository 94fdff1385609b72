package realestate

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// InvestmentType classifies the client's intent derived from saved preferences.
type InvestmentType string

const (
	// InvestmentResidential is the default intent when no preference says otherwise.
	InvestmentResidential InvestmentType = "residential"
	// InvestmentBuyToLet marks an investment purchase.
	InvestmentBuyToLet InvestmentType = "investment"
	// InvestmentRental marks a rental search.
	InvestmentRental InvestmentType = "rental"
)

// Listing is one synthetic property suggestion.
type Listing struct {
	Type           string         `json:"type"`
	Location       string         `json:"location"`
	Price          string         `json:"price"`
	Area           string         `json:"area"`
	Rooms          int            `json:"rooms"`
	Bathrooms      int            `json:"bathrooms"`
	Features       []string       `json:"features"`
	InvestmentType InvestmentType `json:"investment_type"`
	Notes          string         `json:"notes"`
}

// Profile is the preference data extracted from a client's saved free-text
// preferences. Zero value means no constraints.
type Profile struct {
	PropertyType   string // "apartment", "house" or "" when unconstrained
	Features       []string
	InvestmentType InvestmentType
}

// ExtractProfile derives a Profile from free-text preference entries by
// keyword matching, mirroring how clients phrase preferences in chat.
func ExtractProfile(preferences []string) Profile {
	profile := Profile{InvestmentType: InvestmentResidential}
	for _, pref := range preferences {
		p := strings.ToLower(pref)
		switch {
		case strings.Contains(p, "investment"):
			profile.InvestmentType = InvestmentBuyToLet
		case strings.Contains(p, "rental"):
			profile.InvestmentType = InvestmentRental
		case strings.Contains(p, "apartment") || strings.Contains(p, "flat"):
			profile.PropertyType = "apartment"
		case strings.Contains(p, "house") || strings.Contains(p, "villa"):
			profile.PropertyType = "house"
		case strings.Contains(p, "pool"):
			profile.Features = append(profile.Features, "pool")
		case strings.Contains(p, "garden"):
			profile.Features = append(profile.Features, "garden")
		case strings.Contains(p, "garage"):
			profile.Features = append(profile.Features, "garage")
		}
	}
	return profile
}

// ParseBudget extracts the numeric EUR amount from a budget string such as
// "250000 EUR", "EUR 250000" or "250000".
func ParseBudget(budget string) (int, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(strings.ToUpper(budget), "EUR", ""))
	n, err := strconv.Atoi(strings.TrimSpace(cleaned))
	if err != nil {
		return 0, fmt.Errorf("unparseable budget %q", budget)
	}
	return n, nil
}

// Finder generates synthetic property suggestions from explicit preference
// data and an injected random source, keeping the randomness out of the
// storage layer so listings are independently testable.
type Finder struct {
	rng *rand.Rand
}

// NewFinder creates a Finder over the provided random source.
func NewFinder(rng *rand.Rand) *Finder {
	return &Finder{rng: rng}
}

// Suggest produces count listings in location within [budget, budget+100000]
// EUR, honoring the profile's property type and feature wishes. Each wished
// feature appears in a listing with 70% probability.
func (f *Finder) Suggest(location string, budget int, profile Profile, count int) []Listing {
	listings := make([]Listing, 0, count)
	for i := 0; i < count; i++ {
		propertyType := profile.PropertyType
		if propertyType == "" {
			propertyType = []string{"apartment", "house"}[f.rng.Intn(2)]
		}

		features := make([]string, 0, len(profile.Features))
		for _, feat := range profile.Features {
			if f.rng.Float64() > 0.3 {
				features = append(features, feat)
			}
		}

		listing := Listing{
			Type:           propertyType,
			Location:       location,
			Price:          fmt.Sprintf("%d EUR", budget+f.rng.Intn(100001)),
			Area:           fmt.Sprintf("%d m²", 80+f.rng.Intn(121)),
			Rooms:          2 + f.rng.Intn(4),
			Bathrooms:      1 + f.rng.Intn(3),
			Features:       features,
			InvestmentType: profile.InvestmentType,
		}

		switch profile.InvestmentType {
		case InvestmentBuyToLet:
			listing.Notes = fmt.Sprintf("Estimated rental yield: %d%%", 4+f.rng.Intn(4))
		case InvestmentRental:
			listing.Notes = fmt.Sprintf("Current market rent: %d EUR/month", 500+f.rng.Intn(1001))
		}

		listings = append(listings, listing)
	}
	return listings
}

// Recommendation phrases the investment-type advice attached to suggestions.
func Recommendation(budget string, profile Profile) string {
	return fmt.Sprintf(
		"Based on your preferences and budget of %s, we recommend focusing on %s properties.",
		budget, profile.InvestmentType,
	)
}
