package handler

import (
	"github.com/go-faster/jx"

	"github.com/reelmart/storefront/internal/catalog"
)

// encodeMoney writes {"amount":"250","currency":"PKR"}.
func encodeMoney(e *jx.Encoder, m catalog.Money) {
	e.ObjStart()
	e.FieldStart("amount")
	e.Str(m.Amount.String())
	e.FieldStart("currency")
	e.Str(m.Currency)
	e.ObjEnd()
}

// encodeMedia writes one media record. YouTube embeds are re-synthesized per
// context: the feed wants muted looping autoplay, the viewer wants plain
// playback.
func encodeMedia(e *jx.Encoder, m catalog.Media, mode catalog.EmbedMode) {
	e.ObjStart()
	e.FieldStart("kind")
	e.Str(string(m.Kind))
	switch m.Kind {
	case catalog.KindImage:
		e.FieldStart("url")
		e.Str(m.Image.URL)
		e.FieldStart("alt")
		e.Str(m.Image.Alt)
		if m.Image.Width > 0 {
			e.FieldStart("width")
			e.Int(m.Image.Width)
			e.FieldStart("height")
			e.Int(m.Image.Height)
		}
	case catalog.KindVideo:
		e.FieldStart("url")
		e.Str(m.Video.URL)
		e.FieldStart("mimeType")
		e.Str(m.Video.MimeType)
		e.FieldStart("posterUrl")
		e.Str(m.Video.PosterURL)
		if m.Video.Width > 0 {
			e.FieldStart("width")
			e.Int(m.Video.Width)
			e.FieldStart("height")
			e.Int(m.Video.Height)
		}
	case catalog.KindExternalVideo:
		embed := m.External.EmbedURL
		if m.External.VideoID != "" {
			embed = catalog.EmbedURL(m.External.VideoID, mode)
		}
		e.FieldStart("host")
		e.Str(m.External.Host)
		e.FieldStart("embedUrl")
		e.Str(embed)
		e.FieldStart("thumbnailUrl")
		e.Str(m.External.ThumbnailURL)
	}
	e.ObjEnd()
}

func encodeProduct(e *jx.Encoder, p catalog.Product, mode catalog.EmbedMode, price catalog.PricePolicy) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(p.ID)
	e.FieldStart("handle")
	e.Str(p.Handle)
	e.FieldStart("title")
	e.Str(p.Title)
	e.FieldStart("description")
	e.Str(p.Description)
	e.FieldStart("price")
	encodeMoney(e, price(p))
	e.FieldStart("tags")
	e.ArrStart()
	for _, t := range p.Tags {
		e.Str(t)
	}
	e.ArrEnd()
	e.FieldStart("media")
	e.ArrStart()
	for _, m := range p.Media {
		encodeMedia(e, m, mode)
	}
	e.ArrEnd()
	e.FieldStart("variants")
	e.ArrStart()
	for _, v := range p.Variants {
		encodeVariant(e, v)
	}
	e.ArrEnd()
	e.ObjEnd()
}

func encodeVariant(e *jx.Encoder, v catalog.Variant) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(v.ID)
	e.FieldStart("title")
	e.Str(v.Title)
	e.FieldStart("price")
	encodeMoney(e, v.Price)
	e.FieldStart("available")
	e.Bool(v.Available)
	if len(v.Options) > 0 {
		e.FieldStart("options")
		e.ArrStart()
		for _, o := range v.Options {
			e.ObjStart()
			e.FieldStart("name")
			e.Str(o.Name)
			e.FieldStart("value")
			e.Str(o.Value)
			e.ObjEnd()
		}
		e.ArrEnd()
	}
	e.ObjEnd()
}

func encodePage(e *jx.Encoder, page catalog.Page, mode catalog.EmbedMode, price catalog.PricePolicy) {
	e.ObjStart()
	e.FieldStart("products")
	e.ArrStart()
	for _, p := range page.Products {
		encodeProduct(e, p, mode, price)
	}
	e.ArrEnd()
	e.FieldStart("pageInfo")
	e.ObjStart()
	e.FieldStart("endCursor")
	e.Str(page.EndCursor)
	e.FieldStart("hasNextPage")
	e.Bool(page.HasNextPage)
	e.ObjEnd()
	e.ObjEnd()
}

func encodeCollections(e *jx.Encoder, cols []catalog.Collection, price catalog.PricePolicy) {
	e.ObjStart()
	e.FieldStart("collections")
	e.ArrStart()
	for _, c := range cols {
		e.ObjStart()
		e.FieldStart("id")
		e.Str(c.ID)
		e.FieldStart("handle")
		e.Str(c.Handle)
		e.FieldStart("title")
		e.Str(c.Title)
		e.FieldStart("description")
		e.Str(c.Description)
		e.FieldStart("products")
		e.ArrStart()
		for _, p := range c.Products {
			encodeProduct(e, p, catalog.EmbedFeed, price)
		}
		e.ArrEnd()
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
}
