package emojifish

import (
	"github.com/rs/zerolog"
)

// Engine wires every lookup component over one Catalog.
// It is built once and is safe for concurrent use; nothing mutates after NewEngine returns.
type Engine struct {
	logger        zerolog.Logger
	queryAnalyzer Analyzer

	catalog     *Catalog
	resolver    *AliasResolver
	index       Index
	searcher    *Searcher
	reverse     *ReverseMapping
	transformer *SkinToneTransformer
	filter      *Filter
	suggester   *Suggester
}

type Option func(*Engine)

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithQueryAnalyzer sets the analyzer SearchText uses. The index analyzer is fixed.
func WithQueryAnalyzer(analyzer Analyzer) Option {
	return func(e *Engine) {
		e.queryAnalyzer = analyzer
	}
}

func NewEngine(storage Storage, opts ...Option) (*Engine, error) {
	e := &Engine{
		logger:        zerolog.Nop(),
		queryAnalyzer: NewEnglishAnalyzer(),
	}
	for _, opt := range opts {
		opt(e)
	}

	catalog, err := NewCatalog(storage)
	if err != nil {
		e.logger.Error().Err(err).Msg("failed to load emoji dataset")
		return nil, err
	}
	e.catalog = catalog
	e.resolver = NewAliasResolver(catalog)
	e.index = NewIndexer(NewSubstringAnalyzer()).Build(catalog)
	e.searcher = NewSearcher(e.index, catalog, NewScoreSorter(catalog))
	e.reverse = NewReverseMapping(catalog)
	e.transformer = NewSkinToneTransformer(catalog, e.resolver, e.reverse)
	e.filter = NewFilter(catalog)
	e.suggester = NewSuggester(catalog, e.resolver)

	e.logger.Debug().
		Int("emojis", catalog.Len()).
		Int("aliasEntries", len(catalog.AliasEntries())).
		Int("skinToneCapable", len(catalog.SkinToneCapable())).
		Int("nameTerms", len(e.index.ByName)).
		Int("keywordTerms", len(e.index.ByKeyword)).
		Int("aliasTerms", len(e.index.ByAlias)).
		Msg("emoji index built")
	return e, nil
}

func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Search

func (e *Engine) Search(term string) []SearchResult {
	results := e.searcher.Search(term)
	e.logger.Debug().Str("term", term).Int("hits", len(results)).Msg("search")
	return results
}

// SearchText analyzes text with the query analyzer and searches every resulting term.
func (e *Engine) SearchText(text string) []SearchResult {
	results := e.searcher.SearchQuery(NewMatchQuery(text, e.queryAnalyzer))
	e.logger.Debug().Str("text", text).Int("hits", len(results)).Msg("search text")
	return results
}

func (e *Engine) GetByCategory(category string) []SearchResult {
	return e.searcher.GetByCategory(category)
}

func (e *Engine) GetCategories() []string {
	return e.searcher.GetCategories()
}

func (e *Engine) Suggest(term string, limit int) []Suggestion {
	return e.suggester.Suggest(term, limit)
}

// Aliases

func (e *Engine) GetAliases(name string) []string {
	return e.resolver.GetAliases(name)
}

func (e *Engine) GetPrimaryName(name string) string {
	return e.resolver.GetPrimaryName(name)
}

func (e *Engine) IsSameEmoji(name1, name2 string) bool {
	return e.resolver.IsSameEmoji(name1, name2)
}

func (e *Engine) GetAllNames(name string) []string {
	return e.resolver.GetAllNames(name)
}

func (e *Engine) AliasMap() map[string]string {
	return e.resolver.AliasMap()
}

// Character returns the character for a name or an alias.
func (e *Engine) Character(nameOrAlias string) (string, bool) {
	return e.resolver.ResolveEmoji(nameOrAlias)
}

func (e *Engine) Metadata(name string) (Metadata, bool) {
	return e.catalog.Metadata(e.resolver.GetPrimaryName(name))
}

// Skin tones

func (e *Engine) ApplySkinTone(character, tone string) (string, error) {
	return e.transformer.ApplySkinTone(character, tone)
}

func (e *Engine) RemoveSkinTone(character string) string {
	return e.transformer.RemoveSkinTone(character)
}

func (e *Engine) GetAllSkinToneVariations(character string) SkinToneVariations {
	return e.transformer.GetAllSkinToneVariations(character)
}

func (e *Engine) SupportsSkinTone(ref Ref) bool {
	return e.transformer.SupportsSkinTone(ref)
}

// Reverse mapping

func (e *Engine) GetNameFromEmoji(character string) (string, bool) {
	return e.reverse.GetNameFromEmoji(character)
}

func (e *Engine) IsKnownEmoji(str string) bool {
	return e.reverse.IsKnownEmoji(str)
}

func (e *Engine) IsValidEmoji(str string) bool {
	return e.reverse.IsValidEmoji(str)
}

func (e *Engine) ReverseMapping() map[string]string {
	return e.reverse.Mapping()
}

// Filters

func (e *Engine) FilterByVersion(version string, comparison VersionComparison) []Emoji {
	return e.filter.FilterByVersion(version, comparison)
}

func (e *Engine) FilterByKeyword(keyword string, exact bool) []Emoji {
	return e.filter.FilterByKeyword(keyword, exact)
}

func (e *Engine) GetUnicodeVersions() []string {
	return e.filter.GetUnicodeVersions()
}
