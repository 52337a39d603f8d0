package emojifish

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

type SkinTone string

const (
	Light       SkinTone = "light"
	MediumLight SkinTone = "medium-light"
	Medium      SkinTone = "medium"
	MediumDark  SkinTone = "medium-dark"
	Dark        SkinTone = "dark"
)

// SkinTones is ordered so that the numeric alias "n" is SkinTones[n-1].
var SkinTones = [...]SkinTone{Light, MediumLight, Medium, MediumDark, Dark}

// SkinToneVariations maps DefaultVariation and each tone name to a character.
type SkinToneVariations map[string]string

// DefaultVariation is the key of the unmodified character in GetAllSkinToneVariations.
const DefaultVariation = "default"

var ErrInvalidTone = errors.New("invalid skin tone")

const (
	variationSelector16 = '\uFE0F'
	zeroWidthJoiner     = '\u200D'
)

var defaultSkinToneModifiers = [...]SkinToneModifier{
	{Tone: Light, Modifier: "\U0001F3FB"},
	{Tone: MediumLight, Modifier: "\U0001F3FC"},
	{Tone: Medium, Modifier: "\U0001F3FD"},
	{Tone: MediumDark, Modifier: "\U0001F3FE"},
	{Tone: Dark, Modifier: "\U0001F3FF"},
}

// DefaultSkinToneModifiers returns the Fitzpatrick modifier table every dataset must carry.
func DefaultSkinToneModifiers() []SkinToneModifier {
	return append([]SkinToneModifier(nil), defaultSkinToneModifiers[:]...)
}

// ParseSkinTone accepts a tone name or its numeric alias "1".."5".
func ParseSkinTone(s string) (SkinTone, error) {
	for i, tone := range SkinTones {
		if s == string(tone) || s == strconv.Itoa(i+1) {
			return tone, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTone, s)
}

func IsSkinToneModifier(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF
}

func isSkinToneComponent(r rune) bool {
	return IsSkinToneModifier(r) || r == variationSelector16 || r == zeroWidthJoiner
}

// RemoveSkinTone strips every modifier, U+FE0F and U+200D from the whole string.
// Joined multi-person sequences lose their joiners as well.
func RemoveSkinTone(character string) string {
	s, _, err := transform.String(runes.Remove(runes.Predicate(isSkinToneComponent)), character)
	if err != nil {
		return character
	}
	return s
}

// RefKind tells whether a Ref carries a name or a character.
type RefKind int

const (
	NameRef RefKind = iota
	CharacterRef
)

// Ref names an emoji either by name (or alias) or by its character.
type Ref struct {
	Kind  RefKind
	Value string
}

func ByName(name string) Ref {
	return Ref{Kind: NameRef, Value: name}
}

func ByCharacter(character string) Ref {
	return Ref{Kind: CharacterRef, Value: character}
}

type SkinToneTransformer struct {
	catalog   *Catalog
	resolver  *AliasResolver
	reverse   *ReverseMapping
	modifiers map[SkinTone]string
}

func NewSkinToneTransformer(catalog *Catalog, resolver *AliasResolver, reverse *ReverseMapping) *SkinToneTransformer {
	modifiers := make(map[SkinTone]string, len(SkinTones))
	for _, m := range catalog.SkinToneModifiers() {
		modifiers[m.Tone] = m.Modifier
	}
	return &SkinToneTransformer{
		catalog:   catalog,
		resolver:  resolver,
		reverse:   reverse,
		modifiers: modifiers,
	}
}

// ApplySkinTone replaces any tone already on character with tone.
func (t *SkinToneTransformer) ApplySkinTone(character, tone string) (string, error) {
	parsed, err := ParseSkinTone(tone)
	if err != nil {
		return "", err
	}
	return RemoveSkinTone(character) + t.modifiers[parsed], nil
}

func (t *SkinToneTransformer) RemoveSkinTone(character string) string {
	return RemoveSkinTone(character)
}

// GetAllSkinToneVariations maps DefaultVariation and every tone name to a variant of character.
func (t *SkinToneTransformer) GetAllSkinToneVariations(character string) SkinToneVariations {
	base := RemoveSkinTone(character)
	variations := SkinToneVariations{DefaultVariation: base}
	for _, tone := range SkinTones {
		variations[string(tone)] = base + t.modifiers[tone]
	}
	return variations
}

// Resolve returns the canonical emoji name ref points at.
// Names fall back to alias resolution, characters to the reverse mapping.
func (t *SkinToneTransformer) Resolve(ref Ref) (string, bool) {
	switch ref.Kind {
	case NameRef:
		if _, ok := t.catalog.Emoji(ref.Value); ok {
			return ref.Value, true
		}
		primary := t.resolver.GetPrimaryName(ref.Value)
		if _, ok := t.catalog.Emoji(primary); ok {
			return primary, true
		}
	case CharacterRef:
		return t.reverse.GetNameFromEmoji(ref.Value)
	}
	return "", false
}

func (t *SkinToneTransformer) SupportsSkinTone(ref Ref) bool {
	name, ok := t.Resolve(ref)
	if !ok {
		return false
	}
	if t.catalog.IsSkinToneCapable(name) {
		return true
	}
	return t.catalog.IsSkinToneCapable(t.resolver.GetPrimaryName(name))
}
