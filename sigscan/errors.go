package sigscan

import (
	"fmt"
	"strings"
)

// NotFoundError indicates that end of input was reached before every
// requested signature matched.
type NotFoundError struct {
	// Missing lists the names of the signatures that never matched.
	Missing []string

	// BytesScanned is the total number of input bytes examined.
	BytesScanned int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("signature(s) not found after %d bytes: %s",
		e.BytesScanned, strings.Join(e.Missing, ", "))
}
