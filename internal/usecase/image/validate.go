package image

import (
	"errors"
	"fmt"
)

// MaxImageSize is the hard cap on accepted image payloads, inclusive.
const MaxImageSize = 50 << 20 // 50 MiB

// ErrImageNotFound is returned when the provider has no asset for the id.
var ErrImageNotFound = errors.New("image: not found")

// RejectionError is a pre-flight validation failure the client can fix.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("image: upload rejected: %s", e.Reason)
}

var allowedMimeTypes = map[string]struct{}{
	"image/jpeg":    {},
	"image/jpg":     {},
	"image/png":     {},
	"image/webp":    {},
	"image/gif":     {},
	"image/svg+xml": {},
	"image/tiff":    {},
}

func validateUpload(data []byte, mimeType string) error {
	if len(data) == 0 {
		return &RejectionError{Reason: "no file provided"}
	}
	if _, ok := allowedMimeTypes[mimeType]; !ok {
		return &RejectionError{Reason: fmt.Sprintf("unsupported file type %q", mimeType)}
	}
	if int64(len(data)) > MaxImageSize {
		return &RejectionError{Reason: fmt.Sprintf("file exceeds the %d MiB limit", MaxImageSize>>20)}
	}
	return nil
}
