package emojifish

// ReverseMapping maps a character back to a name.
// When several names share a character, the one that comes last in dataset order wins.
type ReverseMapping struct {
	names map[string]string
}

func NewReverseMapping(catalog *Catalog) *ReverseMapping {
	return &ReverseMapping{names: CreateReverseMapping(catalog.Emojis())}
}

// CreateReverseMapping builds a character -> name map from any list of records.
func CreateReverseMapping(emojis []Emoji) map[string]string {
	m := make(map[string]string, len(emojis))
	for _, e := range emojis {
		m[e.Character] = e.Name
	}
	return m
}

func (m *ReverseMapping) GetNameFromEmoji(character string) (string, bool) {
	name, ok := m.names[character]
	return name, ok
}

func (m *ReverseMapping) IsKnownEmoji(str string) bool {
	_, ok := m.names[str]
	return ok
}

// Mapping returns a copy; the mapping itself is never mutated.
func (m *ReverseMapping) Mapping() map[string]string {
	cp := make(map[string]string, len(m.names))
	for k, v := range m.names {
		cp[k] = v
	}
	return cp
}

// IsValidEmoji reports whether str is a dataset character or, failing that, made only of
// emoji code points. Validity is a property of the whole string.
func (m *ReverseMapping) IsValidEmoji(str string) bool {
	if str == "" {
		return false
	}
	if m.IsKnownEmoji(str) {
		return true
	}
	return LooksLikeEmoji(str)
}
