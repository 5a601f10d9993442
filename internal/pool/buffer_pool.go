package pool

import "sync"

// maxRetained caps the capacity of buffers handed back to a pool so that a
// single huge input does not pin memory for the life of the process.
const maxRetained = 64 * 1024

// BufferPool hands out byte slices the normalizers build their output in
type BufferPool struct {
	pool sync.Pool
}

// NewBufferPool creates a pool whose fresh buffers start with the given capacity
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, 0, size)
				return &buffer
			},
		},
	}
}

// Get returns an empty buffer
func (bp *BufferPool) Get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

// Put returns a buffer for reuse; oversized buffers are dropped.
func (bp *BufferPool) Put(buffer *[]byte) {
	if cap(*buffer) > maxRetained {
		return
	}
	*buffer = (*buffer)[:0]
	bp.pool.Put(buffer)
}

// RuneBufferPool hands out rune slices used for code-point comparison
type RuneBufferPool struct {
	pool sync.Pool
}

// NewRuneBufferPool creates a pool whose fresh buffers start with the given capacity
func NewRuneBufferPool(size int) *RuneBufferPool {
	return &RuneBufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]rune, 0, size)
				return &buffer
			},
		},
	}
}

// Get returns an empty rune buffer
func (rbp *RuneBufferPool) Get() *[]rune {
	return rbp.pool.Get().(*[]rune)
}

// Put returns a rune buffer for reuse; oversized buffers are dropped.
func (rbp *RuneBufferPool) Put(buffer *[]rune) {
	if cap(*buffer) > maxRetained {
		return
	}
	*buffer = (*buffer)[:0]
	rbp.pool.Put(buffer)
}
