// Package routing maps report categories to suggested departments. The
// mapping is advisory only: the lifecycle engine never applies it on
// its own, an admin actor confirms or overrides at approval.
package routing

import "strings"

// Affinity is one row of the category -> department table, loaded from
// the store at startup.
type Affinity struct {
	Category     string
	DepartmentID string
}

type Advisor struct {
	byCategory map[string]string
}

func NewAdvisor(affinities []Affinity) *Advisor {
	a := &Advisor{byCategory: make(map[string]string, len(affinities))}
	for _, af := range affinities {
		key := normalize(af.Category)
		if key == "" {
			continue
		}
		// First mapping wins, duplicates in the table are ignored.
		if _, ok := a.byCategory[key]; !ok {
			a.byCategory[key] = af.DepartmentID
		}
	}
	return a
}

// Suggest returns the department for a category, matching
// case-insensitively with surrounding whitespace trimmed. Unmatched
// categories return ok=false and the caller must require an explicit
// department at approval.
func (a *Advisor) Suggest(category string) (string, bool) {
	dept, ok := a.byCategory[normalize(category)]
	return dept, ok
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
