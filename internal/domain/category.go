package domain

import "strings"

// Uncategorized is the sentinel returned when no keyword matches.
const Uncategorized = "Uncategorized"

// Category is reference data for the keyword matcher. Keywords is a
// comma-separated list; Tokens splits it for matching.
type Category struct {
	ID       string
	Name     string
	Keywords string
}

// Tokens returns the trimmed non-empty keyword tokens.
func (c Category) Tokens() []string {
	parts := strings.Split(c.Keywords, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
