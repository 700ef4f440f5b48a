package video

import (
	"errors"
	"fmt"
)

// ErrVideoNotFound covers both a genuinely unknown record and a record owned
// by someone else; callers cannot tell the two apart.
var ErrVideoNotFound = errors.New("video: not found")

// RejectionError is a pre-flight validation failure the client can fix.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("video: upload rejected: %s", e.Reason)
}
