// Package category assigns a category to a transaction by keyword
// matching against its merchant and description text.
package category

import (
	"sort"
	"strings"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
)

// Match returns the category whose keyword best matches the transaction
// text, or domain.Uncategorized when nothing matches.
//
// Matching is case-insensitive substring containment against
// merchant + " " + description. The longest matching keyword wins; equal
// lengths are broken by category name so the result does not depend on
// the order categories were loaded in.
func Match(merchant, description string, categories []domain.Category) string {
	text := strings.ToLower(strings.TrimSpace(merchant + " " + description))
	if text == "" || len(categories) == 0 {
		return domain.Uncategorized
	}

	sorted := make([]domain.Category, len(categories))
	copy(sorted, categories)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	best := ""
	bestLen := 0
	for _, c := range sorted {
		for _, kw := range c.Tokens() {
			if len(kw) <= bestLen {
				continue
			}
			if strings.Contains(text, strings.ToLower(kw)) {
				best = c.Name
				bestLen = len(kw)
			}
		}
	}
	if best == "" {
		return domain.Uncategorized
	}
	return best
}
