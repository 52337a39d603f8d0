package emojifish

import (
	"sort"
	"strings"
)

type CharFilter interface {
	Filter(string) string
}

// MappingCharFilter replaces every key with its value. Longer keys are applied first
// so that ":-)" is not consumed by ":)".
type MappingCharFilter struct {
	replacer *strings.Replacer
}

func NewMappingCharFilter(mapper map[string]string) MappingCharFilter {
	keys := make([]string, 0, len(mapper))
	for k := range mapper {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	oldnew := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		oldnew = append(oldnew, k, mapper[k])
	}
	return MappingCharFilter{replacer: strings.NewReplacer(oldnew...)}
}

func (c MappingCharFilter) Filter(s string) string {
	if c.replacer == nil {
		return s
	}
	return c.replacer.Replace(s)
}

// 顔文字を検索語に置き換える
var emoticons = map[string]string{
	":)":  " smile ",
	":-)": " smile ",
	":(":  " sad ",
	":-(": " sad ",
	":D":  " grin ",
	";)":  " wink ",
	":P":  " tongue ",
	":'(": " cry ",
	"<3":  " heart ",
	"</3": " broken heart ",
}

func NewEmoticonCharFilter() MappingCharFilter {
	return NewMappingCharFilter(emoticons)
}

type LowercaseCharFilter struct{}

func NewLowercaseCharFilter() LowercaseCharFilter {
	return LowercaseCharFilter{}
}

func (c LowercaseCharFilter) Filter(s string) string {
	return strings.ToLower(s)
}
