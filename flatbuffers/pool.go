package flatbuffers

import (
	"sync"
)

// BuilderPool recycles Builders and their buffers across serializations.
// A Builder taken from the pool is owned by the caller until Put; it must
// not be used after Put, and bytes obtained from it must be copied first if
// they outlive it.
type BuilderPool struct {
	pool sync.Pool
}

// NewBuilderPool returns a pool whose fresh builders start with
// initialSize bytes and the given options.
func NewBuilderPool(initialSize int, opts ...BuilderOption) *BuilderPool {
	p := &BuilderPool{}
	p.pool.New = func() interface{} {
		return NewBuilder(initialSize, opts...)
	}
	return p
}

// Get retrieves a reset Builder. If buf is provided and has capacity, it
// becomes the underlying buffer.
func (p *BuilderPool) Get(buf []byte) *Builder {
	b := p.pool.Get().(*Builder)
	if buf != nil && cap(buf) > 0 {
		b.Bytes = buf
	}
	b.Reset()
	return b
}

// Put returns b to the pool. A caller-provided buffer is detached first so
// the pool never hands it to someone else.
func (p *BuilderPool) Put(b *Builder, callerOwned bool) {
	if callerOwned {
		b.Bytes = nil
	}
	p.pool.Put(b)
}
