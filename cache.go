package testpattern

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/gogpu/testpattern/internal/cache"
	"github.com/gogpu/testpattern/internal/image"
)

// Cache memoizes test patterns by Descriptor.
//
// Each Descriptor is built at most once for the lifetime of the Cache and
// the published image is never modified afterwards. Every caller receives
// its own copy, which it may mutate freely.
//
// Cache is safe for concurrent use. Create one with NewCache.
type Cache struct {
	producer      Producer
	serialized    bool
	defaultFormat Format
	logger        *slog.Logger

	entries *cache.Cache[Descriptor, *Image]
	flights singleflight.Group
	pool    *image.Pool

	builds atomic.Uint64
}

// CacheStats contains cache statistics.
type CacheStats struct {
	// Entries is the number of published patterns.
	Entries int
	// Hits is the number of requests served from a published pattern.
	Hits uint64
	// Misses is the number of requests that found no published pattern.
	Misses uint64
	// Builds is the number of successful pattern constructions.
	Builds uint64
}

// NewCache creates an empty pattern cache.
func NewCache(opts ...CacheOption) *Cache {
	o := defaultCacheOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Cache{
		producer:      o.producer,
		serialized:    o.serialized,
		defaultFormat: o.defaultFormat,
		logger:        o.logger,
		entries:       cache.New[Descriptor, *Image](),
		pool:          image.NewPool(o.poolSize),
	}
}

// GetOrCreate returns a copy of the pattern of the given size in the
// cache's default format, building it on first use.
//
// Negative dimensions, or a size whose byte count overflows int, fail with
// ErrInvalidDimension. Zero dimensions yield an empty image.
func (c *Cache) GetOrCreate(width, height int) (*Image, error) {
	return c.Get(Descriptor{Width: width, Height: height, Format: c.defaultFormat})
}

// GetOrCreateFormat is like GetOrCreate with an explicit pixel format.
func (c *Cache) GetOrCreateFormat(width, height int, format Format) (*Image, error) {
	return c.Get(Descriptor{Width: width, Height: height, Format: format})
}

// Get returns a copy of the pattern described by d, building it on first
// use.
func (c *Cache) Get(d Descriptor) (*Image, error) {
	entry, err := c.entry(d)
	if err != nil {
		return nil, err
	}
	return c.pool.Clone(entry), nil
}

// Lookup returns a copy of the pattern described by d if it has already
// been built. It never builds.
func (c *Cache) Lookup(d Descriptor) (*Image, bool) {
	entry, ok := c.entries.Peek(d)
	if !ok {
		return nil, false
	}
	return c.pool.Clone(entry), true
}

// Recycle hands a copy obtained from this Cache back for reuse. The caller
// must not use img afterwards. Recycling the same copy again is a no-op.
func (c *Cache) Recycle(img *Image) {
	if img == nil {
		return
	}
	c.log().Debug("testpattern: copy recycled",
		"width", img.Width(), "height", img.Height(), "format", img.Format().String())
	c.pool.Put(img)
}

// Len returns the number of published patterns.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Stats returns cache statistics.
func (c *Cache) Stats() CacheStats {
	s := c.entries.Stats()
	return CacheStats{
		Entries: s.Len,
		Hits:    s.Hits,
		Misses:  s.Misses,
		Builds:  c.builds.Load(),
	}
}

// entry returns the published pattern for d, building it if necessary.
func (c *Cache) entry(d Descriptor) (*Image, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	if c.serialized {
		img, _, err := c.entries.GetOrCreate(d, func() (*Image, error) {
			return c.build(d)
		})
		return img, err
	}

	if img, ok := c.entries.Get(d); ok {
		return img, nil
	}

	v, err, _ := c.flights.Do(d.Key(), func() (any, error) {
		// A flight for d may have published between Get and Do.
		if img, ok := c.entries.Peek(d); ok {
			return img, nil
		}
		img, err := c.build(d)
		if err != nil {
			return nil, err
		}
		img, _ = c.entries.Add(d, img)
		return img, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Image), nil
}

// build produces and freezes the pattern for d. Nothing is published on
// failure.
func (c *Cache) build(d Descriptor) (*Image, error) {
	start := time.Now()

	img, err := c.producer.Produce(d)
	if err == nil && !d.matches(img) {
		err = fmt.Errorf("%w: want %s", ErrProducerMismatch, d)
	}
	if err != nil {
		c.log().Warn("testpattern: build failed", "key", d.Key(), "err", err)
		return nil, err
	}

	img.Freeze()
	c.builds.Add(1)
	c.log().Debug("testpattern: pattern built",
		"key", d.Key(), "duration", time.Since(start))
	return img, nil
}

func (c *Cache) log() *slog.Logger {
	return cacheLogger(c.logger)
}
