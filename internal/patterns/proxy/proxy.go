// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     proxy
// Description: Caching proxy in front of a book information source
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package proxy puts a caching proxy in front of a slow book database. The
// real subject is either the in-process RealBookDatabase or the SQLite backed
// SQLiteBookDatabase; the proxy treats both the same way.
package proxy

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/Tom7834/Bookstore-Patterns/pkg/core/cache"
)

// BookDatabase returns descriptive information about a title
type BookDatabase interface {
	BookInfo(ctx context.Context, title string) (string, error)
}

// RealBookDatabase is the expensive subject behind the proxy
type RealBookDatabase struct {
	Out io.Writer
}

// BookInfo implements BookDatabase
func (db *RealBookDatabase) BookInfo(ctx context.Context, title string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprintf(db.Out, "Fetching real info for: %s\n", title)
	return generatedInfo(title), nil
}

func generatedInfo(title string) string {
	return "Real info about " + title
}

// CachingProxy remembers every successful lookup of the wrapped database
type CachingProxy struct {
	db    BookDatabase
	out   io.Writer
	mu    sync.Mutex
	cache *cache.Cache[string]
}

// Option configures a CachingProxy
type Option func(*CachingProxy)

// WithCacheConfig bounds the proxy cache by size and entry lifetime
func WithCacheConfig(cfg cache.Config) Option {
	return func(p *CachingProxy) {
		p.cache = cache.New[string](cfg)
	}
}

// NewCachingProxy wraps db; cache hits are announced on w. Without options
// entries never expire.
func NewCachingProxy(db BookDatabase, w io.Writer, opts ...Option) *CachingProxy {
	p := &CachingProxy{
		db:    db,
		out:   w,
		cache: cache.New[string](cache.Config{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// BookInfo implements BookDatabase. Failed lookups are not cached.
func (p *CachingProxy) BookInfo(ctx context.Context, title string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if info, ok := p.cache.Get(title); ok {
		fmt.Fprintf(p.out, "Cache hit for: %s\n", title)
		return info, nil
	}

	info, err := p.db.BookInfo(ctx, title)
	if err != nil {
		return "", err
	}
	p.cache.Set(title, info)
	return info, nil
}

// Hits returns the number of lookups served from the cache
func (p *CachingProxy) Hits() int {
	hits, _, _ := p.cache.Stats()
	return int(hits)
}

// Len returns the number of cached titles
func (p *CachingProxy) Len() int {
	return p.cache.Size()
}
