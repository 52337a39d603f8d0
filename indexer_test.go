package emojifish

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIndexerBuild(t *testing.T) {
	idx := NewIndexer(NewSubstringAnalyzer()).Build(newTestCatalog(t))

	cases := []struct {
		index    InvertedIndex
		term     string
		expected PostingList
	}{
		{index: idx.ByName, term: "fire", expected: PostingList{"fire", "fire_engine"}},
		{index: idx.ByName, term: "an", expected: PostingList{"ant"}},
		{index: idx.ByName, term: "_", expected: PostingList{"fire_engine", "thumbs_up", "red_heart"}},
		{index: idx.ByName, term: "flame", expected: nil},
		{index: idx.ByKeyword, term: "fire", expected: PostingList{"fire", "fire_engine"}},
		{index: idx.ByKeyword, term: "hand", expected: PostingList{"wave", "thumbs_up"}},
		{index: idx.ByKeyword, term: "e", expected: PostingList{"fire", "fire_engine", "cat", "ant", "wave", "thumbs_up", "heart", "red_heart"}},
		{index: idx.ByAlias, term: "flame", expected: PostingList{"fire"}},
		{index: idx.ByAlias, term: "+1", expected: PostingList{"thumbs_up"}},
		{index: idx.ByAlias, term: "h", expected: PostingList{"fire", "cat", "thumbs_up", "wave", "heart"}},
		{index: idx.ByAlias, term: "", expected: nil},
	}

	for _, tt := range cases {
		t.Run(fmt.Sprintf("term = %v, expected = %v", tt.term, tt.expected), func(t *testing.T) {
			if diff := cmp.Diff(tt.index.Lookup(tt.term), tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestIndexerBuildLowercases(t *testing.T) {
	storage := NewStorageMemoryImpl(
		[]Emoji{NewEmoji("OK_Hand", "👌", "people", "6.0", "Perfect")},
		[]AliasEntry{NewAliasEntry("OK_Hand", "OkHand")},
		testSkinTones(),
	)
	catalog, err := NewCatalog(storage)
	if err != nil {
		t.Fatal(err)
	}
	idx := NewIndexer(NewSubstringAnalyzer()).Build(catalog)

	if diff := cmp.Diff(idx.ByName.Lookup("ok_h"), PostingList{"OK_Hand"}); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
	if diff := cmp.Diff(idx.ByKeyword.Lookup("perf"), PostingList{"OK_Hand"}); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
	if diff := cmp.Diff(idx.ByAlias.Lookup("okh"), PostingList{"OK_Hand"}); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
	if idx.ByName.Lookup("OK") != nil {
		t.Error("upper case terms should not be indexed")
	}
}
