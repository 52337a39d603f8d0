package emojifish

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSuggest(t *testing.T) {
	catalog := newTestCatalog(t)
	s := NewSuggester(catalog, NewAliasResolver(catalog))

	cases := []struct {
		term     string
		limit    int
		expected []Suggestion
	}{
		{
			term:     "thmbsup",
			limit:    5,
			expected: []Suggestion{{Name: "thumbs_up", Matched: "thumbsup", Distance: 1}},
		},
		{
			term:  "fre",
			limit: 0,
			expected: []Suggestion{
				{Name: "fire", Matched: "fire", Distance: 1},
				{Name: "fire_engine", Matched: "fire_engine", Distance: 8},
			},
		},
		{
			term:  "ht",
			limit: 2,
			expected: []Suggestion{
				{Name: "fire", Matched: "hot", Distance: 1},
				{Name: "heart", Matched: "heart", Distance: 3},
			},
		},
		{
			term:     "zzz",
			limit:    5,
			expected: []Suggestion{},
		},
		{
			term:     "",
			limit:    5,
			expected: []Suggestion{},
		},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("term = %v, limit = %v", tt.term, tt.limit), func(t *testing.T) {
			if diff := cmp.Diff(s.Suggest(tt.term, tt.limit), tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}
