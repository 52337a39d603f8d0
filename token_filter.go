package emojifish

import (
	"strings"

	"github.com/kljensen/snowball/english"
	"github.com/kotaroooo0/gojaconv/jaconv"
)

type TokenFilter interface {
	Filter(TokenStream) TokenStream
}

type LowercaseFilter struct{}

func NewLowercaseFilter() LowercaseFilter {
	return LowercaseFilter{}
}

func (f LowercaseFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		r[i] = NewToken(strings.ToLower(token.Term), SetKana(token.Kana))
	}
	return NewTokenStream(r)
}

// DefaultStopWords are dropped from free-text queries.
var DefaultStopWords = []string{
	"a", "an", "and", "be", "have", "i", "in", "of", "that", "the", "to", "with",
}

type StopWordFilter struct {
	stopWords map[string]struct{}
}

func NewStopWordFilter(stopWords []string) StopWordFilter {
	m := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		m[w] = struct{}{}
	}
	return StopWordFilter{
		stopWords: m,
	}
}

func (f StopWordFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if _, ok := f.stopWords[token.Term]; !ok {
			r = append(r, token)
		}
	}
	return NewTokenStream(r)
}

type StemmerFilter struct {
	prefixOnly bool
}

func NewStemmerFilter() StemmerFilter {
	return StemmerFilter{}
}

// NewPrefixStemmerFilter keeps a stem only when it is a prefix of the term,
// so "pens" becomes "pen" while "happy" does not become "happi".
func NewPrefixStemmerFilter() StemmerFilter {
	return StemmerFilter{prefixOnly: true}
}

func (f StemmerFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		stemmed := english.Stem(token.Term, false)
		if f.prefixOnly && !strings.HasPrefix(token.Term, stemmed) {
			stemmed = token.Term
		}
		r[i] = NewToken(stemmed, SetKana(token.Kana))
	}
	return NewTokenStream(r)
}

// RomajiReadingformFilter replaces each term with the Hepburn romanization of its kana reading.
// Tokens without a reading are kept as they are.
type RomajiReadingformFilter struct{}

func NewRomajiReadingformFilter() RomajiReadingformFilter {
	return RomajiReadingformFilter{}
}

func (f RomajiReadingformFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		if token.Kana == "" {
			r[i] = token
			continue
		}
		r[i] = NewToken(jaconv.ToHebon(jaconv.KatakanaToHiragana(token.Kana)), SetKana(token.Kana))
	}
	return NewTokenStream(r)
}

// UniqueFilter drops repeated terms, keeping the first occurrence.
type UniqueFilter struct{}

func NewUniqueFilter() UniqueFilter {
	return UniqueFilter{}
}

func (f UniqueFilter) Filter(tokenStream TokenStream) TokenStream {
	seen := make(map[string]struct{}, tokenStream.Size())
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if _, ok := seen[token.Term]; ok {
			continue
		}
		seen[token.Term] = struct{}{}
		r = append(r, token)
	}
	return NewTokenStream(r)
}
