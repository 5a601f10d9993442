package normalizer

import (
	"github.com/baditaflorin/go_palindrome/internal/pool"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

const (
	asciiDrop byte = iota
	asciiKeep
	asciiLower
)

// ASCIINormalizer keeps only [a-z0-9] after lower-casing. Every byte outside
// the ASCII range is dropped, so accented and non-Latin letters never take
// part in the comparison.
type ASCIINormalizer struct {
	// Pre-computed decision table for ASCII bytes (0-127)
	table [128]byte

	bytePool *pool.BufferPool
}

// NewASCIINormalizer creates a new ASCII-only normalizer
func NewASCIINormalizer() ports.Normalizer {
	n := &ASCIINormalizer{
		bytePool: pool.NewBufferPool(256),
	}
	for i := 0; i < 128; i++ {
		b := byte(i)
		switch {
		case b >= 'a' && b <= 'z', b >= '0' && b <= '9':
			n.table[i] = asciiKeep
		case b >= 'A' && b <= 'Z':
			n.table[i] = asciiLower
		default:
			n.table[i] = asciiDrop
		}
	}
	return n
}

// Normalize filters text byte by byte using the lookup table.
func (n *ASCIINormalizer) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)

	for i := 0; i < len(text); i++ {
		b := text[i]
		if b >= 128 {
			continue
		}
		switch n.table[b] {
		case asciiKeep:
			*buffer = append(*buffer, b)
		case asciiLower:
			*buffer = append(*buffer, b+('a'-'A'))
		}
	}

	return string(*buffer)
}
