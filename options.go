package testpattern

import "log/slog"

// CacheOption configures a Cache during creation.
// Use functional options to customize Cache behavior.
//
// Example:
//
//	// Default: RGBA8 patterns, single-flight construction per size
//	patterns := testpattern.NewCache()
//
//	// One lock around all construction, BGRA8 by default
//	patterns := testpattern.NewCache(
//	    testpattern.WithSerializedBuilds(),
//	    testpattern.WithDefaultFormat(testpattern.FormatBGRA8),
//	)
type CacheOption func(*cacheOptions)

// cacheOptions holds optional configuration for Cache creation.
type cacheOptions struct {
	producer      Producer
	serialized    bool
	defaultFormat Format
	logger        *slog.Logger
	poolSize      int
}

// defaultCacheOptions returns the default cache options.
func defaultCacheOptions() cacheOptions {
	return cacheOptions{
		producer:      Composer{},
		defaultFormat: FormatRGBA8,
		logger:        nil, // falls back to the package Logger
		poolSize:      4,
	}
}

// WithProducer replaces the Composer with a custom Producer.
// A nil producer is ignored.
func WithProducer(p Producer) CacheOption {
	return func(o *cacheOptions) {
		if p != nil {
			o.producer = p
		}
	}
}

// WithSerializedBuilds makes the Cache hold a single lock across the whole
// check→build→publish sequence for every key. A caller building a new size
// then blocks callers of all other sizes until it finishes.
func WithSerializedBuilds() CacheOption {
	return func(o *cacheOptions) {
		o.serialized = true
	}
}

// WithDefaultFormat sets the pixel format used by Cache.GetOrCreate.
func WithDefaultFormat(f Format) CacheOption {
	return func(o *cacheOptions) {
		o.defaultFormat = f
	}
}

// WithLogger sets the logger of this Cache, overriding the package logger.
func WithLogger(l *slog.Logger) CacheOption {
	return func(o *cacheOptions) {
		o.logger = l
	}
}

// WithPoolSize sets how many recycled copies per size and format the Cache
// retains for reuse. Zero disables the limit; negative values are treated
// as zero.
func WithPoolSize(n int) CacheOption {
	return func(o *cacheOptions) {
		o.poolSize = max(n, 0)
	}
}
