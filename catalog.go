package emojifish

import (
	"errors"
	"fmt"
	"sort"
)

var ErrMalformedDataset = errors.New("malformed emoji dataset")

// Catalog is an immutable snapshot of a Storage. Every other component reads from it.
type Catalog struct {
	emojis     []Emoji
	positions  map[string]int
	categories map[string][]string

	aliases          []AliasEntry
	aliasesByPrimary map[string][]string

	capable   []string
	capableOf map[string]struct{}
	modifiers []SkinToneModifier
}

// NewCatalog reads the whole dataset from storage and validates it.
// A nil Catalog is returned together with any error; there is no partial result.
func NewCatalog(storage Storage) (*Catalog, error) {
	emojis, err := storage.GetAllEmojis()
	if err != nil {
		return nil, fmt.Errorf("%w: load emojis: %v", ErrMalformedDataset, err)
	}
	aliases, err := storage.GetAliases()
	if err != nil {
		return nil, fmt.Errorf("%w: load aliases: %v", ErrMalformedDataset, err)
	}
	skinTones, err := storage.GetSkinTones()
	if err != nil {
		return nil, fmt.Errorf("%w: load skin tones: %v", ErrMalformedDataset, err)
	}

	c := &Catalog{
		emojis:           make([]Emoji, 0, len(emojis)),
		positions:        make(map[string]int, len(emojis)),
		categories:       make(map[string][]string),
		aliases:          make([]AliasEntry, 0, len(aliases)),
		aliasesByPrimary: make(map[string][]string, len(aliases)),
		capableOf:        make(map[string]struct{}, len(skinTones.Capable)),
	}
	if err := c.addEmojis(emojis); err != nil {
		return nil, err
	}
	if err := c.addAliases(aliases); err != nil {
		return nil, err
	}
	if err := c.addSkinTones(skinTones); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) addEmojis(emojis []Emoji) error {
	for _, e := range emojis {
		if e.Name == "" {
			return fmt.Errorf("%w: empty emoji name", ErrMalformedDataset)
		}
		if e.Character == "" {
			return fmt.Errorf("%w: emoji %q has no character", ErrMalformedDataset, e.Name)
		}
		if _, ok := c.positions[e.Name]; ok {
			return fmt.Errorf("%w: duplicate emoji name %q", ErrMalformedDataset, e.Name)
		}
		e.Keywords = append([]string(nil), e.Keywords...)
		c.positions[e.Name] = len(c.emojis)
		c.emojis = append(c.emojis, e)
		if e.Category != "" {
			c.categories[e.Category] = append(c.categories[e.Category], e.Name)
		}
	}
	return nil
}

func (c *Catalog) addAliases(entries []AliasEntry) error {
	owner := make(map[string]string)
	for _, entry := range entries {
		if _, ok := c.positions[entry.Primary]; !ok {
			return fmt.Errorf("%w: alias primary %q is not an emoji name", ErrMalformedDataset, entry.Primary)
		}
		if _, ok := c.aliasesByPrimary[entry.Primary]; ok {
			return fmt.Errorf("%w: alias primary %q listed twice", ErrMalformedDataset, entry.Primary)
		}
		for _, alias := range entry.Aliases {
			if alias == "" {
				return fmt.Errorf("%w: empty alias of %q", ErrMalformedDataset, entry.Primary)
			}
			if alias == entry.Primary {
				return fmt.Errorf("%w: %q is listed as its own alias", ErrMalformedDataset, alias)
			}
			if p, ok := owner[alias]; ok && p != entry.Primary {
				return fmt.Errorf("%w: alias %q belongs to both %q and %q", ErrMalformedDataset, alias, p, entry.Primary)
			}
			owner[alias] = entry.Primary
		}
		aliases := append([]string(nil), entry.Aliases...)
		c.aliasesByPrimary[entry.Primary] = aliases
		c.aliases = append(c.aliases, NewAliasEntry(entry.Primary, aliases...))
	}
	// プライマリ名が他のエイリアスとして登録されていると同値類が壊れる
	for alias, primary := range owner {
		if _, ok := c.aliasesByPrimary[alias]; ok {
			return fmt.Errorf("%w: %q is both a primary name and an alias of %q", ErrMalformedDataset, alias, primary)
		}
	}
	return nil
}

func (c *Catalog) addSkinTones(data SkinToneData) error {
	if len(data.Modifiers) != len(defaultSkinToneModifiers) {
		return fmt.Errorf("%w: want %d skin tone modifiers, got %d", ErrMalformedDataset, len(defaultSkinToneModifiers), len(data.Modifiers))
	}
	for i, m := range data.Modifiers {
		if m != defaultSkinToneModifiers[i] {
			return fmt.Errorf("%w: unexpected skin tone modifier %q => %q", ErrMalformedDataset, m.Tone, m.Modifier)
		}
	}
	c.modifiers = append([]SkinToneModifier(nil), data.Modifiers...)

	for _, name := range data.Capable {
		if _, ok := c.capableOf[name]; ok {
			continue
		}
		c.capableOf[name] = struct{}{}
		c.capable = append(c.capable, name)
	}
	return nil
}

// Names returns every emoji name in dataset order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.emojis))
	for i, e := range c.emojis {
		names[i] = e.Name
	}
	return names
}

func (c *Catalog) Emojis() []Emoji {
	emojis := make([]Emoji, len(c.emojis))
	for i, e := range c.emojis {
		e.Keywords = append([]string(nil), e.Keywords...)
		emojis[i] = e
	}
	return emojis
}

func (c *Catalog) Len() int {
	return len(c.emojis)
}

func (c *Catalog) Emoji(name string) (Emoji, bool) {
	i, ok := c.positions[name]
	if !ok {
		return Emoji{}, false
	}
	e := c.emojis[i]
	e.Keywords = append([]string(nil), e.Keywords...)
	return e, true
}

// Position is the index of name in dataset order, used as the stable tie-break.
func (c *Catalog) Position(name string) (int, bool) {
	i, ok := c.positions[name]
	return i, ok
}

func (c *Catalog) Character(name string) (string, bool) {
	e, ok := c.Emoji(name)
	return e.Character, ok
}

func (c *Catalog) Metadata(name string) (Metadata, bool) {
	e, ok := c.Emoji(name)
	if !ok {
		return Metadata{}, false
	}
	return e.Metadata(), true
}

func (c *Catalog) CategoryMembers(category string) []string {
	return append([]string{}, c.categories[category]...)
}

// Categories returns the distinct categories in ascending order.
func (c *Catalog) Categories() []string {
	categories := make([]string, 0, len(c.categories))
	for category := range c.categories {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// AliasEntries returns the alias table in its stored order.
func (c *Catalog) AliasEntries() []AliasEntry {
	return append([]AliasEntry(nil), c.aliases...)
}

func (c *Catalog) AliasesOf(primary string) []string {
	return append([]string{}, c.aliasesByPrimary[primary]...)
}

func (c *Catalog) IsPrimary(name string) bool {
	_, ok := c.aliasesByPrimary[name]
	return ok
}

func (c *Catalog) SkinToneCapable() []string {
	return append([]string{}, c.capable...)
}

func (c *Catalog) IsSkinToneCapable(name string) bool {
	_, ok := c.capableOf[name]
	return ok
}

func (c *Catalog) SkinToneModifiers() []SkinToneModifier {
	return append([]SkinToneModifier(nil), c.modifiers...)
}
