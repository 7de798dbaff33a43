package published

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/errgroup"

	"portfolio-go-app/internal/content"
)

// Cache keys for the raw published files.
const (
	cacheKeyQuotes   = "published:quotes"
	cacheKeyArticles = "published:articles"
	cacheKeyBooks    = "published:library"
)

// Cache puts a Redis layer in front of the Client so every page load
// doesn't refetch the static files. Redis being down just means a fetch.
type Cache struct {
	client *Client
	rdb    *redis.Client
	ttl    time.Duration
}

func NewCache(client *Client, rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, rdb: rdb, ttl: ttl}
}

func (c *Cache) Quotes(ctx context.Context) ([]content.Quote, error) {
	raw, err := c.raw(ctx, cacheKeyQuotes, QuotesFile)
	if err != nil {
		return nil, err
	}
	return parseQuotes(raw)
}

func (c *Cache) Articles(ctx context.Context) ([]content.Article, error) {
	raw, err := c.raw(ctx, cacheKeyArticles, ArticlesFile)
	if err != nil {
		return nil, err
	}
	return parseArticles(raw)
}

func (c *Cache) Books(ctx context.Context) ([]content.Book, error) {
	raw, err := c.raw(ctx, cacheKeyBooks, LibraryFile)
	if err != nil {
		return nil, err
	}
	return parseBooks(raw)
}

// RefreshAll refetches the three published files and re-primes the cache.
// main runs this on a timer.
func (c *Cache) RefreshAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	refresh := func(cacheKey, file string) func() error {
		return func() error {
			raw, err := c.client.fetch(ctx, file)
			if err != nil {
				return err
			}
			c.store(ctx, cacheKey, raw)
			return nil
		}
	}
	g.Go(refresh(cacheKeyQuotes, QuotesFile))
	g.Go(refresh(cacheKeyArticles, ArticlesFile))
	g.Go(refresh(cacheKeyBooks, LibraryFile))
	return g.Wait()
}

func (c *Cache) raw(ctx context.Context, cacheKey, file string) ([]byte, error) {
	if c.rdb != nil {
		cached, err := c.rdb.Get(ctx, cacheKey).Bytes()
		if err == nil {
			return cached, nil
		}
		if err != redis.Nil {
			log.Println("Error reading published cache:", err)
		}
	}
	raw, err := c.client.fetch(ctx, file)
	if err != nil {
		return nil, err
	}
	c.store(ctx, cacheKey, raw)
	return raw, nil
}

func (c *Cache) store(ctx context.Context, key string, raw []byte) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Println("Error writing published cache:", err)
	}
}
