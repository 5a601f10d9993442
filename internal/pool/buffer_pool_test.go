package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPoolPutKeepsCapacity(t *testing.T) {
	bp := NewBufferPool(16)

	buffer := bp.Get()
	assert.Empty(t, *buffer)
	*buffer = append(*buffer, make([]byte, 1000)...)
	grown := cap(*buffer)

	bp.Put(buffer)
	assert.Empty(t, *buffer)
	assert.Equal(t, grown, cap(*buffer), "a reused buffer must keep its backing array")
}

func TestBufferPoolDropsOversizedBuffers(t *testing.T) {
	bp := NewBufferPool(16)

	buffer := bp.Get()
	*buffer = append(*buffer, make([]byte, maxRetained+1)...)
	bp.Put(buffer)

	// Dropped buffers are left untouched rather than reset for reuse.
	assert.Len(t, *buffer, maxRetained+1)
	assert.Empty(t, *bp.Get())
}

func TestRuneBufferPoolPutKeepsCapacity(t *testing.T) {
	rbp := NewRuneBufferPool(4)

	buffer := rbp.Get()
	*buffer = append(*buffer, []rune("a fairly long rune buffer")...)
	grown := cap(*buffer)

	rbp.Put(buffer)
	assert.Empty(t, *buffer)
	assert.Equal(t, grown, cap(*buffer))
}
