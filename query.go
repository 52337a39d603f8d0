package emojifish

import "strings"

// Query turns user input into the terms looked up in the index.
type Query interface {
	Terms() []string
}

// TermQuery is a single term matched as a substring, case-insensitively.
type TermQuery struct {
	term string
}

func NewTermQuery(term string) *TermQuery {
	return &TermQuery{
		term: term,
	}
}

func (q *TermQuery) Terms() []string {
	return []string{strings.ToLower(q.term)}
}

// MatchQuery analyzes free text and matches each resulting term.
type MatchQuery struct {
	text     string
	analyzer Analyzer
}

func NewMatchQuery(text string, analyzer Analyzer) *MatchQuery {
	return &MatchQuery{
		text:     text,
		analyzer: analyzer,
	}
}

func (q *MatchQuery) Terms() []string {
	return q.analyzer.Analyze(q.text).Terms()
}
