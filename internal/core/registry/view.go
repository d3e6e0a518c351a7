package registry

import "strings"

// FacetAll is the sentinel filter value meaning "do not filter on this facet".
const FacetAll = "all"

// View describes how a record type exposes itself to filtering:
// which fields the free-text query probes and which categorical
// facets (status, date, ...) support equality filtering.
type View[T Record] struct {
	SearchFields func(T) []string
	Facets       func(T) map[string]string
}

// Apply derives a filtered view: categorical facets are applied first as
// equality predicates (skipped when empty or FacetAll), then the free-text
// query as a case-insensitive substring match over the search fields.
// Collection order is preserved; applying the same arguments to the result
// yields the result again.
func (v View[T]) Apply(records []T, query string, facets map[string]string) []T {
	out := make([]T, 0, len(records))
	needle := strings.ToLower(strings.TrimSpace(query))

	for _, rec := range records {
		if !v.matchFacets(rec, facets) {
			continue
		}
		if needle != "" && !v.matchQuery(rec, needle) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func (v View[T]) matchFacets(rec T, facets map[string]string) bool {
	if len(facets) == 0 || v.Facets == nil {
		return true
	}
	have := v.Facets(rec)
	for key, want := range facets {
		if want == "" || want == FacetAll {
			continue
		}
		if have[key] != want {
			return false
		}
	}
	return true
}

func (v View[T]) matchQuery(rec T, needle string) bool {
	if v.SearchFields == nil {
		return false
	}
	for _, field := range v.SearchFields(rec) {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
