package storefront

import (
	"github.com/reelmart/storefront/internal/catalog"
)

// toProduct normalizes one raw product node. Malformed prices are a hard
// failure for the whole request; malformed media degrades to placeholders
// inside catalog.NormalizeMedia.
func toProduct(n productNode) (catalog.Product, error) {
	price, err := catalog.ParseMoney(n.PriceRange.MinVariantPrice.Amount, n.PriceRange.MinVariantPrice.CurrencyCode)
	if err != nil {
		return catalog.Product{}, &DecodeError{Field: "product " + n.ID + " price", Err: err}
	}

	media := make([]catalog.Media, 0, len(n.Media.Edges))
	for _, e := range n.Media.Edges {
		media = append(media, catalog.NormalizeMedia(toUpstreamMedia(e.Node)))
	}

	variants := make([]catalog.Variant, 0, len(n.Variants.Edges))
	for _, e := range n.Variants.Edges {
		v, err := toVariant(e.Node)
		if err != nil {
			return catalog.Product{}, err
		}
		variants = append(variants, v)
	}

	return catalog.Product{
		ID:          n.ID,
		Handle:      n.Handle,
		Title:       n.Title,
		Description: n.Description,
		Price:       price,
		Tags:        n.Tags,
		Media:       media,
		Variants:    variants,
	}, nil
}

func toVariant(n variantNode) (catalog.Variant, error) {
	price, err := catalog.ParseMoney(n.Price.Amount, n.Price.CurrencyCode)
	if err != nil {
		return catalog.Variant{}, &DecodeError{Field: "variant " + n.ID + " price", Err: err}
	}
	opts := make([]catalog.SelectedOption, len(n.SelectedOptions))
	for i, o := range n.SelectedOptions {
		opts[i] = catalog.SelectedOption{Name: o.Name, Value: o.Value}
	}
	return catalog.Variant{
		ID:        n.ID,
		Title:     n.Title,
		Price:     price,
		Available: n.AvailableForSale,
		Options:   opts,
	}, nil
}

func toUpstreamMedia(n mediaNode) catalog.UpstreamMedia {
	m := catalog.UpstreamMedia{
		TypeName:   n.TypeName,
		Alt:        n.Alt,
		ImageURL:   n.Image.URL,
		Width:      n.Image.Width,
		Height:     n.Image.Height,
		PreviewURL: n.PreviewImage.URL,
		Host:       n.Host,
		OriginURL:  n.OriginURL,
		EmbedURL:   n.EmbedURL,
	}
	if n.Image.Alt != "" {
		m.Alt = n.Image.Alt
	}
	for _, s := range n.Sources {
		m.Sources = append(m.Sources, catalog.UpstreamVideoSource{
			URL:      s.URL,
			MimeType: s.MimeType,
			Width:    s.Width,
			Height:   s.Height,
		})
	}
	return m
}

func toPage(conn connection[productNode]) (catalog.Page, error) {
	products := make([]catalog.Product, 0, len(conn.Edges))
	for _, e := range conn.Edges {
		p, err := toProduct(e.Node)
		if err != nil {
			return catalog.Page{}, err
		}
		products = append(products, p)
	}
	return catalog.Page{
		Products:    products,
		EndCursor:   conn.PageInfo.EndCursor,
		HasNextPage: conn.PageInfo.HasNextPage,
	}, nil
}
