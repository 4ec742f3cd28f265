package schedule

import (
	"strings"

	"deadliner/pkg/database"
)

// ScopeKind selects how the business scope filter interprets its ID set
type ScopeKind int

const (
	ScopeAll      ScopeKind = iota // every deadline regardless of business
	ScopeNone                      // only organization-wide deadlines
	ScopeSelected                  // only deadlines of the listed businesses
)

// BusinessScope narrows deadlines to a business, to none, or keeps all
type BusinessScope struct {
	Kind ScopeKind
	IDs  map[int]bool // consulted only when Kind is ScopeSelected
}

// Filters is the shared filter state applied identically by the month, week
// and list views. The views never re-derive filtering on their own; that is
// what keeps them in sync.
type Filters struct {
	Type             database.DeadlineType // empty means all types
	Scope            BusinessScope
	IncludeCompleted bool
	Search           string
}

// DefaultFilters returns the initial filter state: all types, all
// businesses, completed hidden, no search
func DefaultFilters() Filters {
	return Filters{Scope: BusinessScope{Kind: ScopeAll}}
}

// ApplyFilters narrows the deadline collection through the type, completion,
// business-scope and search stages, in that order. Each stage is an
// independent predicate, so the operation is idempotent.
func ApplyFilters(items []database.Deadline, f Filters) []database.Deadline {
	out := make([]database.Deadline, 0, len(items))

	for _, item := range items {
		if f.Type != "" && item.Type != f.Type {
			continue
		}
		// Completed records are dropped before classification so that
		// completed-hidden mode never renders a completed bucket.
		if !f.IncludeCompleted && item.IsCompleted {
			continue
		}
		if !inScope(item, f.Scope) {
			continue
		}
		if !matchesSearch(item, f.Search) {
			continue
		}
		out = append(out, item)
	}

	return out
}

func inScope(item database.Deadline, scope BusinessScope) bool {
	switch scope.Kind {
	case ScopeNone:
		return item.BusinessID == nil
	case ScopeSelected:
		return item.BusinessID != nil && scope.IDs[*item.BusinessID]
	}
	return true
}

// matchesSearch is a case-insensitive substring match against title or
// description; an empty search term passes everything through
func matchesSearch(item database.Deadline, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(item.Title), needle) ||
		strings.Contains(strings.ToLower(item.Description), needle)
}
