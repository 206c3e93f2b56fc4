package image

import "sync"

// Pool is a thread-safe pool for reusing ImageBuf instances.
//
// Pool groups buffers by their dimensions and format, allowing efficient
// reuse of identically-sized buffers. Fixture-heavy test suites request the
// same few sizes over and over, so copies handed back through Put are
// recycled by the next Clone of that size.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*ImageBuf
	maxSize int // max buffers per bucket
}

// poolKey identifies a bucket of identical image specifications.
type poolKey struct {
	width  int
	height int
	format Format
}

// NewPool creates a new image buffer pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*ImageBuf),
		maxSize: maxPerBucket,
	}
}

// Get retrieves an image buffer from the pool or creates a new one.
// The returned buffer is zeroed, unfrozen and has the requested dimensions
// and format. Returns nil for invalid parameters.
func (p *Pool) Get(width, height int, format Format) *ImageBuf {
	key := poolKey{width: width, height: height, format: format}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		buf.pooled.Store(false)
		return buf
	}
	p.mu.Unlock()

	buf, err := NewImageBuf(width, height, format)
	if err != nil {
		return nil
	}
	return buf
}

// Clone returns a deep, unfrozen copy of src, reusing pooled storage when
// a buffer of the same size and format is available.
func (p *Pool) Clone(src *ImageBuf) *ImageBuf {
	dst := p.Get(src.width, src.height, src.format)
	if dst == nil {
		return src.Clone()
	}
	copy(dst.data, src.data)
	return dst
}

// Put returns an image buffer to the pool for reuse.
// Frozen buffers are never pooled and a buffer already in the pool is
// ignored. The buffer is cleared before being stored; if the bucket is at
// capacity the buffer is discarded.
func (p *Pool) Put(buf *ImageBuf) {
	if buf == nil || buf.IsFrozen() || !buf.pooled.CompareAndSwap(false, true) {
		return
	}

	clear(buf.data)

	key := poolKey{
		width:  buf.width,
		height: buf.height,
		format: buf.format,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of pooled buffers across all buckets.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}
