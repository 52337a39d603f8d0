package emojifish

import "github.com/kotaroooo0/emojifish/morphology"

type Analyzer struct {
	charFilters  []CharFilter
	tokenizer    Tokenizer
	tokenFilters []TokenFilter
}

func NewAnalyzer(charFilters []CharFilter, tokenizer Tokenizer, tokenFilters []TokenFilter) Analyzer {
	return Analyzer{
		charFilters:  charFilters,
		tokenizer:    tokenizer,
		tokenFilters: tokenFilters,
	}
}

func (a Analyzer) Analyze(s string) TokenStream {
	for _, c := range a.charFilters {
		s = c.Filter(s)
	}
	tokenStream := a.tokenizer.Tokenize(s)
	for _, f := range a.tokenFilters {
		tokenStream = f.Filter(tokenStream)
	}
	return tokenStream
}

// NewSubstringAnalyzer lowercases the whole string and emits each distinct substring once.
// It is the analyzer every index is built with.
func NewSubstringAnalyzer() Analyzer {
	return NewAnalyzer(
		[]CharFilter{NewLowercaseCharFilter()},
		NewSubstringTokenizer(),
		[]TokenFilter{NewUniqueFilter()},
	)
}

func NewEnglishAnalyzer() Analyzer {
	return NewAnalyzer(
		[]CharFilter{NewEmoticonCharFilter()},
		NewStandardTokenizer(),
		[]TokenFilter{
			NewLowercaseFilter(),
			NewStopWordFilter(DefaultStopWords),
			NewPrefixStemmerFilter(),
			NewUniqueFilter(),
		},
	)
}

// NewJapaneseAnalyzer turns Japanese text into romaji terms, so "寿司" can find "sushi".
func NewJapaneseAnalyzer(m morphology.Morphology) Analyzer {
	return NewAnalyzer(
		[]CharFilter{},
		NewMorphologicalTokenizer(m),
		[]TokenFilter{
			NewRomajiReadingformFilter(),
			NewLowercaseFilter(),
			NewUniqueFilter(),
		},
	)
}
