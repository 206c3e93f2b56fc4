package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	c := New[string, int]()
	if c == nil {
		t.Fatal("New returned nil")
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
}

func TestCacheGetAdd(t *testing.T) {
	c := New[string, int]()

	v, added := c.Add("key1", 42)
	if !added || v != 42 {
		t.Errorf("Add = (%d, %v), want (42, true)", v, added)
	}

	val, ok := c.Get("key1")
	if !ok {
		t.Error("expected key1 to exist")
	}
	if val != 42 {
		t.Errorf("expected 42, got %d", val)
	}

	_, ok = c.Get("nonexistent")
	if ok {
		t.Error("expected nonexistent key to not exist")
	}
}

func TestCacheAddIsAppendOnly(t *testing.T) {
	c := New[string, int]()

	c.Add("key1", 1)
	v, added := c.Add("key1", 2)
	if added {
		t.Error("second Add reported success")
	}
	if v != 1 {
		t.Errorf("second Add returned %d, want existing value 1", v)
	}
	if got, _ := c.Get("key1"); got != 1 {
		t.Errorf("entry was replaced: got %d, want 1", got)
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int]()
	createCalled := 0

	val, created, err := c.GetOrCreate("key1", func() (int, error) {
		createCalled++
		return 100, nil
	})
	if err != nil || !created || val != 100 {
		t.Errorf("GetOrCreate = (%d, %v, %v), want (100, true, nil)", val, created, err)
	}

	val, created, err = c.GetOrCreate("key1", func() (int, error) {
		createCalled++
		return 200, nil
	})
	if err != nil || created || val != 100 {
		t.Errorf("GetOrCreate = (%d, %v, %v), want (100, false, nil)", val, created, err)
	}
	if createCalled != 1 {
		t.Errorf("expected create called once, got %d", createCalled)
	}
}

func TestCacheGetOrCreateError(t *testing.T) {
	c := New[string, int]()
	errBoom := errors.New("boom")

	_, _, err := c.GetOrCreate("key1", func() (int, error) {
		return 0, errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected errBoom, got %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("failed create published an entry: Len=%d", c.Len())
	}

	// A later call retries.
	val, created, err := c.GetOrCreate("key1", func() (int, error) {
		return 7, nil
	})
	if err != nil || !created || val != 7 {
		t.Errorf("retry = (%d, %v, %v), want (7, true, nil)", val, created, err)
	}
}

func TestCacheStats(t *testing.T) {
	c := New[string, int]()

	c.Add("key1", 1)
	c.Add("key2", 2)
	c.Get("key1")
	c.Get("key1")
	c.Get("key3")
	_, _, _ = c.GetOrCreate("key4", func() (int, error) { return 4, nil })

	stats := c.Stats()
	if stats.Len != 3 {
		t.Errorf("expected Len=3, got %d", stats.Len)
	}
	if stats.Hits != 2 {
		t.Errorf("expected Hits=2, got %d", stats.Hits)
	}
	if stats.Misses != 2 {
		t.Errorf("expected Misses=2, got %d", stats.Misses)
	}
	if stats.HitRate != 0.5 {
		t.Errorf("expected HitRate=0.5, got %v", stats.HitRate)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int]()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Add(n*100+j, n*100+j)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if v, ok := c.Get(n*100 + j); !ok || v != n*100+j {
					t.Errorf("Get(%d) = (%d, %v)", n*100+j, v, ok)
				}
			}
		}(i)
	}
	wg.Wait()

	if c.Len() != 10000 {
		t.Errorf("expected 10000 entries, got %d", c.Len())
	}
}

func TestCacheGetOrCreateConcurrentSingleCreate(t *testing.T) {
	c := New[string, int]()
	var calls atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, _, err := c.GetOrCreate("shared", func() (int, error) {
				calls.Add(1)
				return 9, nil
			})
			if err != nil || v != 9 {
				t.Errorf("GetOrCreate = (%d, %v)", v, err)
			}
		}()
	}
	wg.Wait()

	if calls.Load() != 1 {
		t.Errorf("create called %d times, want 1", calls.Load())
	}
}
