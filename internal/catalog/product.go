package catalog

// Product is a normalized catalog item. Products are rebuilt on every fetch
// from the upstream platform and are never persisted locally.
type Product struct {
	ID          string
	Handle      string
	Title       string
	Description string
	Price       Money
	Tags        []string
	Media       []Media
	Variants    []Variant
}

// Variant is one purchasable configuration of a product with its own price
// and availability.
type Variant struct {
	ID        string
	Title     string
	Price     Money
	Available bool
	Options   []SelectedOption
}

// SelectedOption is a (name, value) pair such as ("Size", "M").
type SelectedOption struct {
	Name  string
	Value string
}

// Collection is an ordered group of products. A product may appear in more
// than one collection.
type Collection struct {
	ID          string
	Handle      string
	Title       string
	Description string
	Products    []Product
}

// Page is one cursor-paginated slice of the catalog. EndCursor is an opaque
// upstream token, valid for exactly one follow-up request.
type Page struct {
	Products    []Product
	EndCursor   string
	HasNextPage bool
}

// PricePolicy selects the canonical display price for a product.
type PricePolicy func(Product) Money

// FirstVariantPrice treats the first variant as representative of the whole
// product. Multi-variant price deltas (size/color) are dropped; callers that
// need them should supply their own policy.
func FirstVariantPrice(p Product) Money {
	if len(p.Variants) > 0 {
		return p.Variants[0].Price
	}
	return p.Price
}
