package emojifish

import "sort"

type Sorter interface {
	Sort([]SearchResult) []SearchResult
}

// ScoreSorter orders results by descending score. Equal scores keep dataset order.
type ScoreSorter struct {
	Catalog *Catalog
}

func NewScoreSorter(catalog *Catalog) *ScoreSorter {
	return &ScoreSorter{
		Catalog: catalog,
	}
}

func (s *ScoreSorter) Sort(results []SearchResult) []SearchResult {
	rs := searchResults{results: results, positions: make([]int, len(results))}
	for i, r := range results {
		pos, ok := s.Catalog.Position(r.Name)
		if !ok {
			pos = s.Catalog.Len() + i
		}
		rs.positions[i] = pos
	}
	sort.Stable(rs)
	return rs.results
}

type searchResults struct {
	results   []SearchResult
	positions []int
}

func (rs searchResults) Len() int { return len(rs.results) }
func (rs searchResults) Less(i, j int) bool {
	if rs.results[i].Score != rs.results[j].Score {
		return rs.results[i].Score > rs.results[j].Score
	}
	return rs.positions[i] < rs.positions[j]
}
func (rs searchResults) Swap(i, j int) {
	rs.results[i], rs.results[j] = rs.results[j], rs.results[i]
	rs.positions[i], rs.positions[j] = rs.positions[j], rs.positions[i]
}
