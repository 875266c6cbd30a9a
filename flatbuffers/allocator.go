package flatbuffers

import (
	"unsafe"
)

const alignment = 64

// Allocator supplies the backing memory of a Builder.
type Allocator interface {
	Allocate(size int) []byte
	Reallocate(size int, b []byte) []byte
	Free(b []byte)
}

// GoAllocator allocates from the Go heap.
//
// Allocate 分配的内存首地址按 64 字节对齐：Builder 保证 buffer 内的标量按其宽度对齐，
// 只有 buffer 自身的首地址也对齐时，这些标量在内存中才是真正对齐的。
type GoAllocator struct{}

// NewGoAllocator returns the default allocator.
func NewGoAllocator() *GoAllocator { return &GoAllocator{} }

// Allocate returns a zeroed slice of size bytes whose first byte is 64-byte aligned.
func (a *GoAllocator) Allocate(size int) []byte {
	if size == 0 {
		return []byte{}
	}
	buf := make([]byte, size+alignment)
	addr := int(uintptr(unsafe.Pointer(&buf[0])))
	next := roundUpToMultipleOf64(addr)
	if addr != next {
		shift := next - addr
		return buf[shift : size+shift : size+shift]
	}
	return buf[:size:size]
}

// Reallocate returns a slice of size bytes holding the prefix of b.
func (a *GoAllocator) Reallocate(size int, b []byte) []byte {
	if size == len(b) {
		return b
	}
	newBuf := a.Allocate(size)
	copy(newBuf, b)
	return newBuf
}

// Free is a no-op; the garbage collector owns the memory.
func (a *GoAllocator) Free(b []byte) {}

func roundUpToMultipleOf64(v int) int {
	return (v + alignment - 1) &^ (alignment - 1)
}

var (
	_ Allocator = (*GoAllocator)(nil)
)
