package morphology

//go:generate mockgen -source=morphology.go -destination=../mock_morphology.go -package=emojifish

// Morphology splits Japanese text into words with their katakana readings.
type Morphology interface {
	Analyze(string) []MorphologyToken
}

type MorphologyToken struct {
	Term string
	Kana string // 読み(カタカナ)。辞書にない語は表層形のまま
}

func NewMorphologyToken(term, kana string) MorphologyToken {
	return MorphologyToken{
		Term: term,
		Kana: kana,
	}
}
