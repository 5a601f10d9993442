package ports

// Normalizer defines the interface for turning raw input into the
// canonical comparison form.
type Normalizer interface {
	Normalize(text string) string
}
