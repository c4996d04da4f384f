package dawg

import "errors"

// Sentinel errors returned by Builder and Graph operations. Wrap these
// with fmt.Errorf("%w: ...", ErrX) for additional context; callers should
// compare with errors.Is, not string matching.
var (
	// ErrOrderViolation is returned by Insert when a word is not strictly
	// greater than the previously inserted word.
	ErrOrderViolation = errors.New("dawg: word out of order")

	// ErrPostFinalizeMutation is returned by Insert once the Builder has
	// been finalized.
	ErrPostFinalizeMutation = errors.New("dawg: insert after finalize")

	// ErrDecode is returned by Deserialize, Load, and LoadCompressed when
	// the input is truncated, has an inconsistent node id, or references
	// an out-of-range child index.
	ErrDecode = errors.New("dawg: decode error")

	// ErrInvalidArgument is returned for malformed arguments: an empty
	// word, a non-positive anagram word length, or a fixed position
	// outside [0, wordLength).
	ErrInvalidArgument = errors.New("dawg: invalid argument")
)
