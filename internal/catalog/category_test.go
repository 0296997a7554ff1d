package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func taggedProduct(id string, tags ...string) Product {
	return Product{ID: id, Title: id, Tags: tags}
}

func TestMatchesCategory_CaseInsensitive(t *testing.T) {
	assert.True(t, MatchesCategory([]string{"Luxury Lawn"}, "luxury"))
	assert.True(t, MatchesCategory([]string{"SALE"}, "deals"))
	assert.True(t, MatchesCategory([]string{"Ready To Wear"}, "STITCHED"))
}

func TestMatchesCategory_ExactNotSubstring(t *testing.T) {
	// "summery" contains "summer" but is not an exact synonym.
	assert.False(t, MatchesCategory([]string{"summery"}, "summer"))
}

func TestMatchesCategory_UnknownKeyFailsClosed(t *testing.T) {
	assert.False(t, MatchesCategory([]string{"luxury", "sale", "mens"}, "electronics"))
}

func TestFilterByCategory_UnknownKeyEmpty(t *testing.T) {
	products := []Product{
		taggedProduct("p1", "luxury"),
		taggedProduct("p2", "sale"),
	}
	assert.Empty(t, FilterByCategory(products, "gadgets"))
}

func TestFilterByCategory_ZeroTags(t *testing.T) {
	products := []Product{
		taggedProduct("p1"),
		taggedProduct("p2", "winter"),
	}

	filtered := FilterByCategory(products, "winter")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "p2", filtered[0].ID)

	// No category key: identity, untagged products included.
	assert.Len(t, FilterByCategory(products, ""), 2)
}

func TestFilterByCategory_Subsequence(t *testing.T) {
	products := []Product{
		taggedProduct("p1", "kids"),
		taggedProduct("p2", "mens"),
		taggedProduct("p3", "children"),
	}
	filtered := FilterByCategory(products, "kids")
	assert.Equal(t, []string{"p1", "p3"}, []string{filtered[0].ID, filtered[1].ID})
}
