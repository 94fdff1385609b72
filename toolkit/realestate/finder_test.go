package realestate

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractProfile(t *testing.T) {
	tests := []struct {
		name  string
		prefs []string
		want  Profile
	}{
		{
			name:  "empty defaults to residential",
			prefs: nil,
			want:  Profile{InvestmentType: InvestmentResidential},
		},
		{
			name:  "apartment with features",
			prefs: []string{"Looking for an apartment", "must have a pool", "and a garage"},
			want:  Profile{PropertyType: "apartment", Features: []string{"pool", "garage"}, InvestmentType: InvestmentResidential},
		},
		{
			name:  "villa counts as house",
			prefs: []string{"a villa with garden"},
			want:  Profile{PropertyType: "house", InvestmentType: InvestmentResidential},
		},
		{
			name:  "investment intent",
			prefs: []string{"buying as an investment"},
			want:  Profile{InvestmentType: InvestmentBuyToLet},
		},
		{
			name:  "rental intent",
			prefs: []string{"rental income", "flat"},
			want:  Profile{PropertyType: "apartment", InvestmentType: InvestmentRental},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractProfile(tt.prefs))
		})
	}
}

func TestParseBudget(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "250000 EUR", want: 250000},
		{in: "EUR 250000", want: 250000},
		{in: " 250000 ", want: 250000},
		{in: "cheap", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseBudget(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFinder_Suggest(t *testing.T) {
	finder := NewFinder(rand.New(rand.NewSource(42)))
	profile := Profile{PropertyType: "apartment", Features: []string{"pool"}, InvestmentType: InvestmentBuyToLet}

	listings := finder.Suggest("Lisbon", 250000, profile, 3)
	require.Len(t, listings, 3)

	for _, l := range listings {
		assert.Equal(t, "apartment", l.Type)
		assert.Equal(t, "Lisbon", l.Location)
		assert.Equal(t, InvestmentBuyToLet, l.InvestmentType)
		assert.Contains(t, l.Notes, "rental yield")

		price, err := strconv.Atoi(strings.TrimSuffix(l.Price, " EUR"))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, price, 250000)
		assert.LessOrEqual(t, price, 350000)

		assert.GreaterOrEqual(t, l.Rooms, 2)
		assert.LessOrEqual(t, l.Rooms, 5)
		assert.GreaterOrEqual(t, l.Bathrooms, 1)
		assert.LessOrEqual(t, l.Bathrooms, 3)
	}
}

func TestFinder_SuggestRentalNotes(t *testing.T) {
	finder := NewFinder(rand.New(rand.NewSource(7)))
	listings := finder.Suggest("Porto", 150000, Profile{InvestmentType: InvestmentRental}, 3)

	for _, l := range listings {
		assert.Contains(t, l.Notes, "EUR/month")
		assert.Contains(t, []string{"apartment", "house"}, l.Type, "type randomized when unconstrained")
	}
}

func TestRecommendation(t *testing.T) {
	got := Recommendation("250000 EUR", Profile{InvestmentType: InvestmentBuyToLet})
	assert.Equal(t, "Based on your preferences and budget of 250000 EUR, we recommend focusing on investment properties.", got)
}
