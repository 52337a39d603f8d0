package emojifish

// Indexer builds the substring indexes. Every contiguous substring of every name, keyword and
// alias is stored, which costs O(L^2) entries per string in exchange for a single map
// lookup per query. The vocabulary is a few thousand short strings, so this stays small.
type Indexer struct {
	Analyzer Analyzer
}

func NewIndexer(analyzer Analyzer) *Indexer {
	return &Indexer{
		Analyzer: analyzer,
	}
}

// 1.名前の部分文字列を名前に対応付ける
// 2.キーワードの部分文字列をそのキーワードを持つ名前に対応付ける
// 3.エイリアスの部分文字列をプライマリ名に対応付ける
func (i *Indexer) Build(catalog *Catalog) Index {
	idx := Index{
		ByName:    make(InvertedIndex),
		ByKeyword: make(InvertedIndex),
		ByAlias:   make(InvertedIndex),
	}
	for _, e := range catalog.Emojis() {
		i.addText(idx.ByName, e.Name, e.Name)
		for _, keyword := range e.Keywords {
			i.addText(idx.ByKeyword, keyword, e.Name)
		}
	}
	for _, entry := range catalog.AliasEntries() {
		for _, alias := range entry.Aliases {
			i.addText(idx.ByAlias, alias, entry.Primary)
		}
	}
	return idx
}

func (i *Indexer) addText(idx InvertedIndex, text, name string) {
	for _, token := range i.Analyzer.Analyze(text).Tokens {
		idx.add(token.Term, name)
	}
}
