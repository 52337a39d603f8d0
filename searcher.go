package emojifish

// Scores by match kind. A name is reported once, with the highest kind it matched.
const (
	NameScore    = 1.0
	KeywordScore = 0.8
	AliasScore   = 0.6
)

const defaultCategory = "other"

type SearchResult struct {
	Name      string   `json:"name"`
	Character string   `json:"emoji"`
	Keywords  []string `json:"keywords"`
	Category  string   `json:"category"`
	Score     float64  `json:"score,omitempty"`
}

type Searcher struct {
	Index   Index
	Catalog *Catalog
	Sorter  Sorter
}

func NewSearcher(index Index, catalog *Catalog, sorter Sorter) *Searcher {
	return &Searcher{
		Index:   index,
		Catalog: catalog,
		Sorter:  sorter,
	}
}

// Search returns every emoji whose name, keywords or aliases contain term.
// An unknown term yields an empty slice.
func (s *Searcher) Search(term string) []SearchResult {
	return s.SearchQuery(NewTermQuery(term))
}

// SearchQuery matches each term of q and keeps the best score per name.
func (s *Searcher) SearchQuery(q Query) []SearchResult {
	best := make(map[string]float64)
	order := make([]string, 0)
	for _, term := range q.Terms() {
		for _, m := range s.match(term) {
			score, ok := best[m.name]
			if !ok {
				order = append(order, m.name)
			}
			if !ok || m.score > score {
				best[m.name] = m.score
			}
		}
	}

	results := make([]SearchResult, len(order))
	for i, name := range order {
		results[i] = s.result(name, best[name])
	}
	return s.Sorter.Sort(results)
}

type match struct {
	name  string
	score float64
}

// 名前、キーワード、エイリアスの順に引き、先に見つかった種類のスコアを採用する
func (s *Searcher) match(term string) []match {
	seen := make(map[string]struct{})
	var matches []match
	for _, tier := range []struct {
		index InvertedIndex
		score float64
	}{
		{s.Index.ByName, NameScore},
		{s.Index.ByKeyword, KeywordScore},
		{s.Index.ByAlias, AliasScore},
	} {
		for _, name := range tier.index.Lookup(term) {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			matches = append(matches, match{name: name, score: tier.score})
		}
	}
	return matches
}

func (s *Searcher) result(name string, score float64) SearchResult {
	r := SearchResult{
		Name:     name,
		Keywords: []string{},
		Category: defaultCategory,
		Score:    score,
	}
	if e, ok := s.Catalog.Emoji(name); ok {
		r.Character = e.Character
		if e.Keywords != nil {
			r.Keywords = append([]string{}, e.Keywords...)
		}
		if e.Category != "" {
			r.Category = e.Category
		}
	}
	return r
}

// GetByCategory is an exact category filter in dataset order.
func (s *Searcher) GetByCategory(category string) []SearchResult {
	results := []SearchResult{}
	if category == "" {
		return results
	}
	for _, e := range s.Catalog.Emojis() {
		if e.Category == category {
			results = append(results, s.result(e.Name, 0))
		}
	}
	return results
}

func (s *Searcher) GetCategories() []string {
	return s.Catalog.Categories()
}
