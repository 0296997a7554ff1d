// Command catalog-export walks the full paginated catalog and the collection
// list and writes them as gzipped JSON snapshots, for offline feeds and
// backups.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	pgzip "github.com/klauspost/pgzip"
	"golang.org/x/sync/errgroup"

	"github.com/reelmart/storefront/internal/catalog"
	"github.com/reelmart/storefront/internal/storefront"
)

const maxCollections = 50

func main() {
	var (
		endpoint string
		token    string
		outDir   string
		pageSize int
	)

	flag.StringVar(&endpoint, "endpoint", "", "storefront GraphQL endpoint URL (or STORE_UPSTREAM_ENDPOINT env)")
	flag.StringVar(&token, "token", "", "storefront access token (or STORE_UPSTREAM_ACCESS_TOKEN env)")
	flag.StringVar(&outDir, "out", "export", "output directory for snapshot files")
	flag.IntVar(&pageSize, "page-size", 50, "products per upstream page")
	flag.Parse()

	if endpoint == "" {
		endpoint = os.Getenv("STORE_UPSTREAM_ENDPOINT")
	}
	if token == "" {
		token = os.Getenv("STORE_UPSTREAM_ACCESS_TOKEN")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, endpoint, token, outDir, pageSize); err != nil {
		slog.Error("catalog export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("catalog export completed successfully")
}

func run(ctx context.Context, endpoint, token, outDir string, pageSize int) error {
	client, err := storefront.NewClient(storefront.Config{
		Endpoint:    endpoint,
		AccessToken: token,
		MaxAttempts: 3,
	})
	if err != nil {
		return errors.Wrap(err, "create storefront client")
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return exportProducts(ctx, client, filepath.Join(outDir, "products.json.gz"), pageSize)
	})
	g.Go(func() error {
		return exportCollections(ctx, client, filepath.Join(outDir, "collections.json.gz"))
	})
	return g.Wait()
}

// exportProducts drains the paginated catalog through a feed and writes the
// accumulated products as one gzipped JSON array.
func exportProducts(ctx context.Context, client *storefront.Client, path string, pageSize int) error {
	feed := catalog.NewFeed(client, pageSize)
	pages := 0
	for feed.HasMore() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := feed.LoadMore(ctx); err != nil {
			return errors.Wrapf(err, "load page %d", pages+1)
		}
		pages++
		slog.Info("products progress",
			slog.Int("pages", pages),
			slog.Int("products", len(feed.Products())),
		)
	}

	products := feed.Products()
	e := &jx.Encoder{}
	e.ArrStart()
	for _, p := range products {
		encodeProduct(e, p)
	}
	e.ArrEnd()

	if err := writeGzip(path, e.Bytes()); err != nil {
		return err
	}
	slog.Info("products written", slog.String("path", path), slog.Int("count", len(products)))
	return nil
}

func exportCollections(ctx context.Context, client *storefront.Client, path string) error {
	cols, err := client.Collections(ctx, maxCollections)
	if err != nil {
		return errors.Wrap(err, "fetch collections")
	}

	e := &jx.Encoder{}
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
			encodeProduct(e, p)
		}
		e.ArrEnd()
		e.ObjEnd()
	}
	e.ArrEnd()

	if err := writeGzip(path, e.Bytes()); err != nil {
		return err
	}
	slog.Info("collections written", slog.String("path", path), slog.Int("count", len(cols)))
	return nil
}

func encodeProduct(e *jx.Encoder, p catalog.Product) {
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
	e.ObjStart()
	e.FieldStart("amount")
	e.Str(p.Price.Amount.String())
	e.FieldStart("currency")
	e.Str(p.Price.Currency)
	e.ObjEnd()
	e.FieldStart("tags")
	e.ArrStart()
	for _, t := range p.Tags {
		e.Str(t)
	}
	e.ArrEnd()
	e.FieldStart("variants")
	e.ArrStart()
	for _, v := range p.Variants {
		e.ObjStart()
		e.FieldStart("id")
		e.Str(v.ID)
		e.FieldStart("title")
		e.Str(v.Title)
		e.FieldStart("available")
		e.Bool(v.Available)
		e.FieldStart("price")
		e.ObjStart()
		e.FieldStart("amount")
		e.Str(v.Price.Amount.String())
		e.FieldStart("currency")
		e.Str(v.Price.Currency)
		e.ObjEnd()
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
}

func writeGzip(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() { _ = f.Close() }()

	gz := pgzip.NewWriter(f)
	if _, err := gz.Write(data); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	if err := gz.Close(); err != nil {
		return errors.Wrapf(err, "flush %s", path)
	}
	return f.Close()
}
