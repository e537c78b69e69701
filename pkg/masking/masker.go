// Package masking scrubs credentials from sandbox execution output before
// it is persisted or returned to callers.
package masking

// Masker is a code-based masker with structural awareness beyond regex
// matching, such as parsing env-dump lines.
type Masker interface {
	// Name returns the unique identifier for this masker.
	Name() string

	// AppliesTo is a cheap pre-check on whether this masker should
	// process the data. String containment, not parsing.
	AppliesTo(data string) bool

	// Mask applies the masking logic. On any processing problem it
	// returns the original data unchanged.
	Mask(data string) string
}
