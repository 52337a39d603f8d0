package emojifish

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransformer(t *testing.T) *SkinToneTransformer {
	t.Helper()
	catalog := newTestCatalog(t)
	return NewSkinToneTransformer(catalog, NewAliasResolver(catalog), NewReverseMapping(catalog))
}

func TestParseSkinTone(t *testing.T) {
	cases := []struct {
		s        string
		expected SkinTone
		err      error
	}{
		{s: "light", expected: Light},
		{s: "1", expected: Light},
		{s: "medium-light", expected: MediumLight},
		{s: "3", expected: Medium},
		{s: "medium-dark", expected: MediumDark},
		{s: "5", expected: Dark},
		{s: "dark", expected: Dark},
		{s: "6", err: ErrInvalidTone},
		{s: "0", err: ErrInvalidTone},
		{s: "Dark", err: ErrInvalidTone},
		{s: "invalid-tone", err: ErrInvalidTone},
		{s: "", err: ErrInvalidTone},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("s = %v", tt.s), func(t *testing.T) {
			tone, err := ParseSkinTone(tt.s)
			if !errors.Is(err, tt.err) {
				t.Errorf("err = %v, want %v", err, tt.err)
			}
			if diff := cmp.Diff(tone, tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestApplySkinTone(t *testing.T) {
	tr := newTestTransformer(t)

	cases := []struct {
		character string
		tone      string
		expected  string
		err       error
	}{
		{character: "👋", tone: "dark", expected: "👋🏿"},
		{character: "👋", tone: "5", expected: "👋🏿"},
		{character: "👋", tone: "light", expected: "👋🏻"},
		{character: "👋🏻", tone: "dark", expected: "👋🏿"},
		{character: "👍", tone: "medium", expected: "👍🏽"},
		{character: "🖐️", tone: "2", expected: "🖐🏼"},
		{character: "👋", tone: "invalid-tone", err: ErrInvalidTone},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("character = %v, tone = %v", tt.character, tt.tone), func(t *testing.T) {
			got, err := tr.ApplySkinTone(tt.character, tt.tone)
			if !errors.Is(err, tt.err) {
				t.Errorf("err = %v, want %v", err, tt.err)
			}
			if diff := cmp.Diff(got, tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestRemoveSkinTone(t *testing.T) {
	cases := []struct {
		character string
		expected  string
	}{
		{character: "👋🏿", expected: "👋"},
		{character: "👋", expected: "👋"},
		{character: "", expected: ""},
		{character: "🖐️", expected: "🖐"},
		// 肌色の異なる二人の連結シーケンス
		{character: "🧑🏻‍🤝‍🧑🏿", expected: "🧑🤝🧑"},
		{character: "👨🏽‍💻", expected: "👨💻"},
		{character: "abc", expected: "abc"},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("character = %+q", tt.character), func(t *testing.T) {
			if diff := cmp.Diff(RemoveSkinTone(tt.character), tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestSkinToneProperties(t *testing.T) {
	tr := newTestTransformer(t)
	bases := []string{"👋", "👍", "🔥", "🐈", "🧑"}

	for _, c := range bases {
		for i, tone := range SkinTones {
			applied, err := tr.ApplySkinTone(c, string(tone))
			require.NoError(t, err)
			assert.Equal(t, c, tr.RemoveSkinTone(applied), "round trip %s %s", c, tone)

			numeric, err := tr.ApplySkinTone(c, fmt.Sprint(i+1))
			require.NoError(t, err)
			assert.Equal(t, applied, numeric)

			again, err := tr.ApplySkinTone(applied, string(tone))
			require.NoError(t, err)
			assert.Equal(t, applied, again, "idempotent")
		}

		light, err := tr.ApplySkinTone(c, "light")
		require.NoError(t, err)
		dark, err := tr.ApplySkinTone(light, "dark")
		require.NoError(t, err)
		assert.Equal(t, 0, strings.Count(dark, "\U0001F3FB"))
		assert.Equal(t, 1, strings.Count(dark, "\U0001F3FF"))
	}
}

func TestGetAllSkinToneVariations(t *testing.T) {
	tr := newTestTransformer(t)

	expected := SkinToneVariations{
		"default":      "👋",
		"light":        "👋🏻",
		"medium-light": "👋🏼",
		"medium":       "👋🏽",
		"medium-dark":  "👋🏾",
		"dark":         "👋🏿",
	}
	if diff := cmp.Diff(tr.GetAllSkinToneVariations("👋🏾"), expected); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestSupportsSkinTone(t *testing.T) {
	tr := newTestTransformer(t)

	cases := []struct {
		ref      Ref
		expected bool
	}{
		{ref: ByName("fire"), expected: false},
		{ref: ByName("wave"), expected: true},
		{ref: ByName("waving_hand"), expected: true},
		{ref: ByName("+1"), expected: true},
		{ref: ByName("unknown"), expected: false},
		{ref: ByCharacter("👋"), expected: true},
		{ref: ByCharacter("👍"), expected: true},
		{ref: ByCharacter("🔥"), expected: false},
		{ref: ByCharacter("🦖"), expected: false},
		{ref: ByCharacter("wave"), expected: false},
		{ref: ByName("👋"), expected: false},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("ref = %+v", tt.ref), func(t *testing.T) {
			assert.Equal(t, tt.expected, tr.SupportsSkinTone(tt.ref))
		})
	}
}

func TestResolve(t *testing.T) {
	tr := newTestTransformer(t)

	cases := []struct {
		ref      Ref
		expected string
		ok       bool
	}{
		{ref: ByName("ant"), expected: "ant", ok: true},
		{ref: ByName("feline"), expected: "cat", ok: true},
		{ref: ByCharacter("🐜"), expected: "ant", ok: true},
		{ref: ByCharacter("❤️"), expected: "red_heart", ok: true},
		{ref: ByName("dragon"), expected: "", ok: false},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("ref = %+v", tt.ref), func(t *testing.T) {
			name, ok := tr.Resolve(tt.ref)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, name)
		})
	}
}
