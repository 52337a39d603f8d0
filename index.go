package emojifish

// PostingList holds the names associated with one term, in the order they were first added.
type PostingList []string

// InvertedIndex maps every indexed substring to its postings.
type InvertedIndex map[string]PostingList

// add appends name unless it is already the last posting.
// All terms of one owner are added before the next owner's, so this is enough to keep postings unique.
func (idx InvertedIndex) add(term, name string) {
	names := idx[term]
	if len(names) > 0 && names[len(names)-1] == name {
		// Don't add same name twice.
		return
	}
	idx[term] = append(names, name)
}

func (idx InvertedIndex) Lookup(term string) PostingList {
	return idx[term]
}

// Terms is the number of distinct indexed substrings.
func (idx InvertedIndex) Terms() int {
	return len(idx)
}

// Postings is the total number of term -> name associations.
func (idx InvertedIndex) Postings() int {
	n := 0
	for _, names := range idx {
		n += len(names)
	}
	return n
}

// Index is the set of substring indexes built over a Catalog.
// It is never modified after Indexer.Build returns.
type Index struct {
	ByName    InvertedIndex
	ByKeyword InvertedIndex
	ByAlias   InvertedIndex // postings hold primary names, not alias strings
}
