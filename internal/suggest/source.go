// Package suggest turns the country dataset into currency suggestions and
// answers lookup requests from the widget.
package suggest

import (
	"context"
	"sort"
	"strings"

	"fxpick/internal/domain"
)

// DatasetFetcher is the slice of the dataset client the source needs.
type DatasetFetcher interface {
	FetchAll(ctx context.Context) ([]domain.Country, error)
}

// Source produces an ordered list of suggestions for a query.
type Source interface {
	Fetch(ctx context.Context, query string) ([]domain.Suggestion, error)
}

// countrySource fetches the full dataset per lookup and filters client-side
type countrySource struct {
	fetcher DatasetFetcher
}

// NewCountrySource creates a Source backed by the country dataset.
func NewCountrySource(fetcher DatasetFetcher) Source {
	return &countrySource{fetcher: fetcher}
}

// Fetch returns the suggestions matching query, in dataset record order.
func (s *countrySource) Fetch(ctx context.Context, query string) ([]domain.Suggestion, error) {
	records, err := s.fetcher.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(Expand(records), query), nil
}

// Expand flattens country records into one suggestion per currency, keeping
// record order. A country with no currency data contributes nothing; within
// a country, currencies come out in code order since the dataset exposes
// them as a map.
func Expand(records []domain.Country) []domain.Suggestion {
	suggestions := make([]domain.Suggestion, 0, len(records))
	for _, c := range records {
		codes := make([]string, 0, len(c.Currencies))
		for code := range c.Currencies {
			codes = append(codes, code)
		}
		sort.Strings(codes)

		for _, code := range codes {
			suggestions = append(suggestions, domain.Suggestion{
				ID:    c.Name.Common + "/" + code,
				Label: domain.SuggestionLabel(c, c.Currencies[code]),
			})
		}
	}
	return suggestions
}

// Filter keeps suggestions whose label contains query, case-insensitively.
// An empty query matches everything.
func Filter(suggestions []domain.Suggestion, query string) []domain.Suggestion {
	if query == "" {
		return suggestions
	}

	q := strings.ToLower(query)
	matched := make([]domain.Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if strings.Contains(strings.ToLower(s.Label), q) {
			matched = append(matched, s)
		}
	}
	return matched
}
