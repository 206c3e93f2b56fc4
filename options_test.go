package testpattern

import (
	"log/slog"
	"testing"
)

func TestDefaultCacheOptions(t *testing.T) {
	o := defaultCacheOptions()
	if _, ok := o.producer.(Composer); !ok {
		t.Errorf("default producer = %T, want Composer", o.producer)
	}
	if o.serialized {
		t.Error("default cache should not serialize builds")
	}
	if o.defaultFormat != FormatRGBA8 {
		t.Errorf("default format = %v, want RGBA8", o.defaultFormat)
	}
	if o.logger != nil {
		t.Error("default logger should be nil")
	}
	if o.poolSize != 4 {
		t.Errorf("default pool size = %d, want 4", o.poolSize)
	}
}

func TestCacheOptions(t *testing.T) {
	l := slog.Default()
	p := newCountingProducer(0)

	tests := []struct {
		name  string
		opt   CacheOption
		check func(t *testing.T, o cacheOptions)
	}{
		{
			name: "WithProducer",
			opt:  WithProducer(p),
			check: func(t *testing.T, o cacheOptions) {
				if o.producer != Producer(p) {
					t.Errorf("producer = %T, want countingProducer", o.producer)
				}
			},
		},
		{
			name: "WithProducer nil",
			opt:  WithProducer(nil),
			check: func(t *testing.T, o cacheOptions) {
				if _, ok := o.producer.(Composer); !ok {
					t.Errorf("nil producer replaced default: %T", o.producer)
				}
			},
		},
		{
			name: "WithSerializedBuilds",
			opt:  WithSerializedBuilds(),
			check: func(t *testing.T, o cacheOptions) {
				if !o.serialized {
					t.Error("serialized = false, want true")
				}
			},
		},
		{
			name: "WithDefaultFormat",
			opt:  WithDefaultFormat(FormatRGB565),
			check: func(t *testing.T, o cacheOptions) {
				if o.defaultFormat != FormatRGB565 {
					t.Errorf("defaultFormat = %v, want RGB565", o.defaultFormat)
				}
			},
		},
		{
			name: "WithLogger",
			opt:  WithLogger(l),
			check: func(t *testing.T, o cacheOptions) {
				if o.logger != l {
					t.Error("logger was not set")
				}
			},
		},
		{
			name: "WithPoolSize",
			opt:  WithPoolSize(9),
			check: func(t *testing.T, o cacheOptions) {
				if o.poolSize != 9 {
					t.Errorf("poolSize = %d, want 9", o.poolSize)
				}
			},
		},
		{
			name: "WithPoolSize negative",
			opt:  WithPoolSize(-2),
			check: func(t *testing.T, o cacheOptions) {
				if o.poolSize != 0 {
					t.Errorf("poolSize = %d, want 0", o.poolSize)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultCacheOptions()
			tt.opt(&o)
			tt.check(t, o)
		})
	}
}
