package emojifish

// AliasResolver answers primary-name and alias questions over the alias table.
// Every name absent from the table is its own singleton class.
type AliasResolver struct {
	catalog   *Catalog
	primaryOf map[string]string // alias -> primary
}

func NewAliasResolver(catalog *Catalog) *AliasResolver {
	primaryOf := make(map[string]string)
	for _, entry := range catalog.AliasEntries() {
		for _, alias := range entry.Aliases {
			primaryOf[alias] = entry.Primary
		}
	}
	return &AliasResolver{
		catalog:   catalog,
		primaryOf: primaryOf,
	}
}

// GetAliases returns the aliases of a primary name as stored.
// For an alias it returns the primary name followed by the sibling aliases.
func (r *AliasResolver) GetAliases(name string) []string {
	if r.catalog.IsPrimary(name) {
		return r.catalog.AliasesOf(name)
	}
	primary, ok := r.primaryOf[name]
	if !ok {
		return []string{}
	}
	siblings := r.catalog.AliasesOf(primary)
	aliases := make([]string, 0, len(siblings))
	aliases = append(aliases, primary)
	for _, a := range siblings {
		if a != name {
			aliases = append(aliases, a)
		}
	}
	return aliases
}

// GetPrimaryName never fails: unknown names resolve to themselves.
func (r *AliasResolver) GetPrimaryName(name string) string {
	if r.catalog.IsPrimary(name) {
		return name
	}
	if primary, ok := r.primaryOf[name]; ok {
		return primary
	}
	return name
}

func (r *AliasResolver) IsSameEmoji(name1, name2 string) bool {
	return r.GetPrimaryName(name1) == r.GetPrimaryName(name2)
}

// GetAllNames returns the primary name first, then its aliases.
func (r *AliasResolver) GetAllNames(name string) []string {
	primary := r.GetPrimaryName(name)
	return append([]string{primary}, r.GetAliases(primary)...)
}

// ResolveEmoji looks name up directly and then through its primary name.
func (r *AliasResolver) ResolveEmoji(nameOrAlias string) (string, bool) {
	if c, ok := r.catalog.Character(nameOrAlias); ok {
		return c, true
	}
	return r.catalog.Character(r.GetPrimaryName(nameOrAlias))
}

// AliasMap returns a fresh alias -> primary map.
func (r *AliasResolver) AliasMap() map[string]string {
	m := make(map[string]string, len(r.primaryOf))
	for alias, primary := range r.primaryOf {
		m[alias] = primary
	}
	return m
}
