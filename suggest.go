package emojifish

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type Suggestion struct {
	Name     string // primary name
	Matched  string // the name or alias that matched
	Distance int
}

// Suggester proposes names for terms that are misspelled rather than substrings,
// e.g. "thmbsup" -> thumbs_up. It never takes part in Search.
type Suggester struct {
	candidates []string
	primaryOf  []string
}

func NewSuggester(catalog *Catalog, resolver *AliasResolver) *Suggester {
	s := &Suggester{}
	for _, name := range catalog.Names() {
		s.candidates = append(s.candidates, name)
		s.primaryOf = append(s.primaryOf, resolver.GetPrimaryName(name))
	}
	for _, entry := range catalog.AliasEntries() {
		for _, alias := range entry.Aliases {
			s.candidates = append(s.candidates, alias)
			s.primaryOf = append(s.primaryOf, entry.Primary)
		}
	}
	return s
}

// Suggest returns at most limit suggestions, closest first, one per primary name.
// A limit of zero or less means no limit.
func (s *Suggester) Suggest(term string, limit int) []Suggestion {
	suggestions := []Suggestion{}
	if term == "" {
		return suggestions
	}
	ranks := fuzzy.RankFindFold(term, s.candidates)
	sort.Stable(ranks)

	seen := make(map[string]struct{})
	for _, rank := range ranks {
		primary := s.primaryOf[rank.OriginalIndex]
		if _, ok := seen[primary]; ok {
			continue
		}
		seen[primary] = struct{}{}
		suggestions = append(suggestions, Suggestion{
			Name:     primary,
			Matched:  rank.Target,
			Distance: rank.Distance,
		})
		if limit > 0 && len(suggestions) == limit {
			break
		}
	}
	return suggestions
}
