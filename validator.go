package emojifish

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var (
	emojiNameRegexp    = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	unsanitizedRegexp  = regexp.MustCompile(`[^a-z0-9_]`)
	variationSelectors = runes.Predicate(func(r rune) bool { return r == variationSelector16 })
)

// emojiRanges covers the pictographic blocks, regional indicators, modifiers, VS16 and ZWJ.
var emojiRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x200D, Hi: 0x200D, Stride: 1},
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1},
		{Lo: 0xFE0F, Hi: 0xFE0F, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1},
		{Lo: 0x1F300, Hi: 0x1F64F, Stride: 1},
		{Lo: 0x1F680, Hi: 0x1F9FF, Stride: 1},
		{Lo: 0x1FA00, Hi: 0x1FAFF, Stride: 1},
	},
}

// LooksLikeEmoji is the range heuristic used for characters outside the dataset.
// ASCII letters, digits and any whitespace reject the whole string, as does a
// grapheme cluster made only of modifiers, VS16 or ZWJ.
func LooksLikeEmoji(str string) bool {
	if str == "" {
		return false
	}
	for _, r := range str {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) || unicode.IsSpace(r) {
			return false
		}
	}
	state := -1
	rest := str
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if !isEmojiCluster(cluster) {
			return false
		}
	}
	return true
}

// isEmojiCluster needs a base rune; modifiers, VS16 and ZWJ only count attached to one.
func isEmojiCluster(cluster string) bool {
	base := false
	for _, r := range cluster {
		if !unicode.Is(emojiRanges, r) {
			return false
		}
		if !isSkinToneComponent(r) {
			base = true
		}
	}
	return base
}

// IsValidEmojiName accepts non-empty names made of ASCII letters, digits, '_' and '-'.
func IsValidEmojiName(name string) bool {
	return emojiNameRegexp.MatchString(name)
}

func IsValidSkinTone(tone string) bool {
	_, err := ParseSkinTone(tone)
	return err == nil
}

// SanitizeEmojiName lowercases name and replaces everything outside [a-z0-9_] with '_'.
func SanitizeEmojiName(name string) string {
	return unsanitizedRegexp.ReplaceAllString(strings.ToLower(name), "_")
}

func HasVariationSelector(str string) bool {
	return strings.ContainsRune(str, variationSelector16)
}

func StripVariationSelectors(str string) string {
	s, _, err := transform.String(runes.Remove(variationSelectors), str)
	if err != nil {
		return str
	}
	return s
}
