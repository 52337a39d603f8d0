package emojifish

import (
	"sort"
	"strconv"
	"strings"
)

const defaultUnicodeVersion = "1.0"

type VersionComparison int

const (
	VersionMin VersionComparison = iota // this version or newer
	VersionExact
	VersionMax // this version or older
)

// Filter selects records by Unicode version or keyword.
// Returned records have "other", "1.0" and an empty keyword list filled in where missing.
type Filter struct {
	catalog *Catalog
}

func NewFilter(catalog *Catalog) *Filter {
	return &Filter{catalog: catalog}
}

func (f *Filter) FilterByVersion(version string, comparison VersionComparison) []Emoji {
	results := []Emoji{}
	for _, e := range f.catalog.Emojis() {
		e = withDefaults(e)
		c := CompareVersions(e.UnicodeVersion, version)
		var include bool
		switch comparison {
		case VersionExact:
			include = e.UnicodeVersion == version
		case VersionMin:
			include = c >= 0
		case VersionMax:
			include = c <= 0
		}
		if include {
			results = append(results, e)
		}
	}
	return results
}

// FilterByKeyword matches keywords case-insensitively, either exactly or as a substring.
func (f *Filter) FilterByKeyword(keyword string, exact bool) []Emoji {
	term := strings.ToLower(keyword)
	results := []Emoji{}
	for _, e := range f.catalog.Emojis() {
		for _, k := range e.Keywords {
			k = strings.ToLower(k)
			if (exact && k == term) || (!exact && strings.Contains(k, term)) {
				results = append(results, withDefaults(e))
				break
			}
		}
	}
	return results
}

// GetUnicodeVersions returns the distinct versions present in the catalog, oldest first.
func (f *Filter) GetUnicodeVersions() []string {
	seen := make(map[string]struct{})
	versions := []string{}
	for _, e := range f.catalog.Emojis() {
		v := e.UnicodeVersion
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		versions = append(versions, v)
	}
	sort.SliceStable(versions, func(i, j int) bool {
		return CompareVersions(versions[i], versions[j]) < 0
	})
	return versions
}

// CompareVersions compares dotted versions part by part. Missing parts count as 0.
func CompareVersions(a, b string) int {
	pa, pb := strings.Split(a, "."), strings.Split(b, ".")
	n := len(pa)
	if len(pb) > n {
		n = len(pb)
	}
	for i := 0; i < n; i++ {
		x, y := versionPart(pa, i), versionPart(pb, i)
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}
	return 0
}

func versionPart(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(parts[i])
	if err != nil {
		return 0
	}
	return n
}

func withDefaults(e Emoji) Emoji {
	if e.Category == "" {
		e.Category = defaultCategory
	}
	if e.UnicodeVersion == "" {
		e.UnicodeVersion = defaultUnicodeVersion
	}
	if e.Keywords == nil {
		e.Keywords = []string{}
	} else {
		e.Keywords = append([]string{}, e.Keywords...)
	}
	return e
}
