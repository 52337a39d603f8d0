package emojifish

// Emoji is one record of the dataset.
type Emoji struct {
	Name           string   `json:"name" db:"name"`
	Character      string   `json:"emoji" db:"emoji"`
	Category       string   `json:"category" db:"category"`
	Keywords       []string `json:"keywords" db:"-"`
	UnicodeVersion string   `json:"unicodeVersion" db:"unicode_version"`
}

func NewEmoji(name, character, category, unicodeVersion string, keywords ...string) Emoji {
	return Emoji{
		Name:           name,
		Character:      character,
		Category:       category,
		Keywords:       keywords,
		UnicodeVersion: unicodeVersion,
	}
}

// Metadata is the per-name part of a record that is not the character itself.
type Metadata struct {
	Keywords       []string
	Category       string
	UnicodeVersion string
}

func (e Emoji) Metadata() Metadata {
	return Metadata{
		Keywords:       append([]string(nil), e.Keywords...),
		Category:       e.Category,
		UnicodeVersion: e.UnicodeVersion,
	}
}

// AliasEntry lists the aliases registered under one primary name.
type AliasEntry struct {
	Primary string   `json:"name"`
	Aliases []string `json:"aliases"`
}

func NewAliasEntry(primary string, aliases ...string) AliasEntry {
	return AliasEntry{
		Primary: primary,
		Aliases: aliases,
	}
}

// SkinToneModifier binds a named tone to its modifier code point.
type SkinToneModifier struct {
	Tone     SkinTone `json:"tone" db:"tone"`
	Modifier string   `json:"modifier" db:"modifier"`
}

// SkinToneData is the skin-tone part of the dataset.
type SkinToneData struct {
	Modifiers []SkinToneModifier `json:"modifiers"`
	Capable   []string           `json:"capable"`
}
