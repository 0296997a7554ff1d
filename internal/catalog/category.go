package catalog

import "strings"

// categorySynonyms maps each canonical category key to the free-text product
// tags that count as a match. Keys outside this table match nothing, so an
// unrecognized category always filters to an empty result.
var categorySynonyms = map[string][]string{
	"luxury":     {"luxury", "luxury lawn", "premium"},
	"summer":     {"summer", "lawn", "summer collection"},
	"winter":     {"winter", "khaddar", "winter collection"},
	"mens":       {"mens", "men", "menswear"},
	"kids":       {"kids", "kid", "children"},
	"deals":      {"deals", "deal", "sale"},
	"stitched":   {"stitched", "ready to wear"},
	"unstitched": {"unstitched", "unstitch"},
}

// MatchesCategory reports whether any product tag equals (case-insensitively)
// one of the category key's synonyms. Matching is exact string equality, not
// substring or fuzzy.
func MatchesCategory(tags []string, key string) bool {
	syns := categorySynonyms[strings.ToLower(key)]
	for _, tag := range tags {
		for _, syn := range syns {
			if strings.EqualFold(tag, syn) {
				return true
			}
		}
	}
	return false
}

// FilterByCategory returns the subsequence of products with at least one tag
// matching the category key. An empty key is the identity filter.
func FilterByCategory(products []Product, key string) []Product {
	if key == "" {
		return products
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if MatchesCategory(p.Tags, key) {
			out = append(out, p)
		}
	}
	return out
}
