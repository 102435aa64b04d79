package recognition

import (
	"errors"
	"fmt"
)

// ErrModelNotFound marks an unknown model or preset tier. The request
// shell maps it to a client error instead of an internal one.
var ErrModelNotFound = errors.New("recognition model not found")

// DefaultModelSize is the preset used when a request names none.
const DefaultModelSize = "tiny"

// modelSizes are the recognized preset tiers, ordered by resource cost.
var modelSizes = map[string]bool{
	"tiny":   true,
	"base":   true,
	"small":  true,
	"medium": true,
	"large":  true,
}

// ValidSize reports whether size names a known preset tier.
func ValidSize(size string) bool {
	return modelSizes[size]
}

func checkSize(size string) error {
	if !ValidSize(size) {
		return fmt.Errorf("%w: unknown whisper model size %q", ErrModelNotFound, size)
	}
	return nil
}
