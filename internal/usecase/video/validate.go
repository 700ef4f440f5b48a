package video

import (
	"fmt"
	"strings"

	"github.com/reelvault/reelvault-go/internal/model"
	"github.com/reelvault/reelvault-go/internal/port"
)

// MaxVideoSize is the hard cap on accepted video payloads.
const MaxVideoSize = 500 << 20 // 500 MiB

func validQuality(q string) bool {
	switch q {
	case model.QualityAuto, model.QualityHigh, model.QualityMedium, model.QualityLow:
		return true
	}
	return false
}

// validateUpload rejects anything the provider should never see. Every
// failure is a *RejectionError so handlers can map it to a 400.
func validateUpload(in port.UploadVideoInput) error {
	if len(in.Data) == 0 {
		return &RejectionError{Reason: "no file provided"}
	}
	if !strings.HasPrefix(in.MimeType, "video/") {
		return &RejectionError{Reason: fmt.Sprintf("unsupported file type %q, expected a video", in.MimeType)}
	}
	if int64(len(in.Data)) > MaxVideoSize {
		return &RejectionError{Reason: fmt.Sprintf("file exceeds the %d MiB limit", MaxVideoSize>>20)}
	}
	if strings.TrimSpace(in.Title) == "" {
		return &RejectionError{Reason: "title is required"}
	}
	if in.Options.Quality != "" && !validQuality(in.Options.Quality) {
		return &RejectionError{Reason: fmt.Sprintf("unknown quality %q", in.Options.Quality)}
	}
	return nil
}
