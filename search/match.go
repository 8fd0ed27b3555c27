package search

import (
	"strings"

	"github.com/poiesic/pubcat/core"
	"golang.org/x/text/cases"
)

// MaxSuggestions is the number of suggestions returned for a query.
const MaxSuggestions = 5

// fold returns the case-folded form of s.
// A new Caser is created per call because Casers keep state.
func fold(s string) string {
	return cases.Fold().String(s)
}

// matcher holds a folded query so a catalog scan folds it only once.
type matcher struct {
	folded string
}

func newMatcher(query string) matcher {
	return matcher{folded: fold(query)}
}

func (m matcher) match(title string) bool {
	return strings.Contains(fold(title), m.folded)
}

// Matches reports whether query occurs in title, ignoring case.
// The empty query matches every title.
func Matches(title, query string) bool {
	return newMatcher(query).match(title)
}

// IsBlank reports whether query is empty or whitespace only.
func IsBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// Suggest returns up to MaxSuggestions publications whose title contains
// query, in catalog order. A blank query returns an empty slice.
func Suggest(c *core.Catalog, query string) []core.Publication {
	return suggest(c, query, MaxSuggestions)
}

// Filter returns every publication whose title contains query, in catalog
// order. An empty query returns the whole catalog.
func Filter(c *core.Catalog, query string) []core.Publication {
	return collect(c, query, -1)
}

func suggest(c *core.Catalog, query string, limit int) []core.Publication {
	if IsBlank(query) {
		return []core.Publication{}
	}
	return collect(c, query, limit)
}

// collect scans c in order and gathers matches, stopping after limit
// matches when limit is non-negative.
func collect(c *core.Catalog, query string, limit int) []core.Publication {
	results := make([]core.Publication, 0)
	if limit == 0 {
		return results
	}
	m := newMatcher(query)
	for _, pub := range c.All() {
		if !m.match(pub.Title) {
			continue
		}
		results = append(results, pub)
		if limit > 0 && len(results) == limit {
			break
		}
	}
	return results
}
