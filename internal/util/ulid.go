package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string.
// ulid.Make draws monotonic entropy per millisecond and is safe for concurrent use,
// so it can back per-request ids.
func NewULID() string {
	return ulid.Make().String()
}
