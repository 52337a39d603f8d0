package emojifish

import (
	"strings"
	"unicode"

	"github.com/kotaroooo0/emojifish/morphology"
)

type Tokenizer interface {
	Tokenize(string) TokenStream
}

type StandardTokenizer struct{}

func NewStandardTokenizer() StandardTokenizer {
	return StandardTokenizer{}
}

func (t StandardTokenizer) Tokenize(s string) TokenStream {
	terms := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	tokens := make([]Token, len(terms))
	for i, term := range terms {
		tokens[i] = NewToken(term)
	}
	return NewTokenStream(tokens)
}

// SubstringTokenizer emits every contiguous substring of its input, counted in runes.
// A string of L runes yields L*(L+1)/2 tokens, ordered by start offset then length.
type SubstringTokenizer struct{}

func NewSubstringTokenizer() SubstringTokenizer {
	return SubstringTokenizer{}
}

func (t SubstringTokenizer) Tokenize(s string) TokenStream {
	// 文字境界のバイトオフセット
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s))

	n := len(offsets) - 1
	tokens := make([]Token, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j <= n; j++ {
			tokens = append(tokens, NewToken(s[offsets[i]:offsets[j]]))
		}
	}
	return NewTokenStream(tokens)
}

type MorphologicalTokenizer struct {
	morphology morphology.Morphology
}

func NewMorphologicalTokenizer(morphology morphology.Morphology) MorphologicalTokenizer {
	return MorphologicalTokenizer{
		morphology: morphology,
	}
}

func (t MorphologicalTokenizer) Tokenize(s string) TokenStream {
	mTokens := t.morphology.Analyze(s)
	tokens := make([]Token, len(mTokens))
	for i, m := range mTokens {
		tokens[i] = NewToken(m.Term, SetKana(m.Kana))
	}
	return NewTokenStream(tokens)
}
