package normalizer

import (
	"fmt"
	"strings"

	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// NormalizerType selects a normalization strategy
type NormalizerType int

const (
	// DefaultNormalizerType uses Unicode letter/digit categories and simple lower-casing
	DefaultNormalizerType NormalizerType = iota
	// ASCIINormalizerType keeps only [a-z0-9]
	ASCIINormalizerType
	// FoldingNormalizerType uses NFC composition and full case folding
	FoldingNormalizerType
)

var typeNames = map[NormalizerType]string{
	DefaultNormalizerType: "default",
	ASCIINormalizerType:   "ascii",
	FoldingNormalizerType: "folding",
}

// String returns the configuration name of the type.
func (t NormalizerType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("NormalizerType(%d)", int(t))
}

// ParseNormalizerType maps a configuration name to a NormalizerType.
// The empty string selects the default normalizer.
func ParseNormalizerType(name string) (NormalizerType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultNormalizerType, nil
	}
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return DefaultNormalizerType, fmt.Errorf("unknown normalizer %q (want default, ascii or folding)", name)
}

// NormalizerFactory creates normalizers by type
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// CreateNormalizer creates a normalizer of the specified type
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	switch normalizerType {
	case ASCIINormalizerType:
		return NewASCIINormalizer()
	case FoldingNormalizerType:
		return NewFoldingNormalizer()
	default:
		return NewDefaultNormalizer()
	}
}
