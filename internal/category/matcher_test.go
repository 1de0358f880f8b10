package category

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
)

func testCategories() []domain.Category {
	return []domain.Category{
		{Name: "Food", Keywords: "starbucks, restaurant, cafe"},
		{Name: "Transport", Keywords: "uber, metro, fuel"},
		{Name: "Shopping", Keywords: "amazon, flipkart"},
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name        string
		merchant    string
		description string
		want        string
	}{
		{"merchant keyword", "Starbucks Coffee", "", "Food"},
		{"description keyword", "", "monthly metro pass", "Transport"},
		{"case insensitive", "AMAZON.IN", "", "Shopping"},
		{"keyword inside word", "", "refuelling stop", "Transport"},
		{"no match", "ACME Corp", "salary", domain.Uncategorized},
		{"empty input", "", "", domain.Uncategorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.merchant, tt.description, testCategories())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatch_LongestKeywordWins(t *testing.T) {
	categories := []domain.Category{
		{Name: "Coffee", Keywords: "star"},
		{Name: "Food", Keywords: "starbucks"},
	}

	// Both keywords match; "starbucks" is longer so Food wins even
	// though Coffee sorts first.
	got := Match("Starbucks 1234", "", categories)
	assert.Equal(t, "Food", got)
}

func TestMatch_TieBrokenByName(t *testing.T) {
	categories := []domain.Category{
		{Name: "Zeta", Keywords: "uber"},
		{Name: "Alpha", Keywords: "uber"},
	}

	got := Match("UBER TRIP", "", categories)
	assert.Equal(t, "Alpha", got)
}

func TestMatch_Deterministic(t *testing.T) {
	first := Match("Starbucks", "latte", testCategories())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Match("Starbucks", "latte", testCategories()))
	}
}

func TestMatch_IgnoresEmptyKeywordTokens(t *testing.T) {
	categories := []domain.Category{
		{Name: "Food", Keywords: " , ,starbucks,"},
	}

	assert.Equal(t, "Food", Match("starbucks", "", categories))
	assert.Equal(t, domain.Uncategorized, Match("acme", "", categories))
}

func TestMatch_NoCategories(t *testing.T) {
	assert.Equal(t, domain.Uncategorized, Match("starbucks", "", nil))
}
