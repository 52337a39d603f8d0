package morphology

import (
	ipaneologd "github.com/ikawaha/kagome-dict-ipa-neologd"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// 品詞のうち検索語にならないもの
var skippedPOS = map[string]struct{}{
	"空白": {},
	"記号": {},
}

// github.com/ikawaha/kagomeに直接依存しないようにラップする
type Kagome struct {
	kagome *tokenizer.Tokenizer
	mode   tokenizer.TokenizeMode
}

type KagomeOption func(*Kagome)

// WithMode switches the segmentation mode. The default is tokenizer.Search.
func WithMode(mode tokenizer.TokenizeMode) KagomeOption {
	return func(k *Kagome) {
		k.mode = mode
	}
}

func NewKagome(options ...KagomeOption) (*Kagome, error) {
	t, err := tokenizer.New(ipaneologd.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	k := &Kagome{
		kagome: t,
		mode:   tokenizer.Search,
	}
	for _, option := range options {
		option(k)
	}
	return k, nil
}

func (k *Kagome) Analyze(text string) []MorphologyToken {
	tokens := k.kagome.Analyze(text, k.mode)
	kagomeTokens := make([]MorphologyToken, 0)
	for _, token := range tokens {
		features := token.Features()
		if skip(features) {
			continue
		}
		kana := token.Surface
		if len(features) >= 8 && features[7] != "*" {
			kana = features[7]
		}
		kagomeTokens = append(kagomeTokens, NewMorphologyToken(token.Surface, kana))
	}
	return kagomeTokens
}

func skip(features []string) bool {
	for _, f := range features[:min(2, len(features))] {
		if _, ok := skippedPOS[f]; ok {
			return true
		}
	}
	return false
}
