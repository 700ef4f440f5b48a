package cloudmedia

import (
	"encoding/json"
	"fmt"

	"github.com/reelvault/reelvault-go/internal/port"
)

// uploadResponse is the provider's wire format for a finished upload.
type uploadResponse struct {
	PublicID       string            `json:"public_id"`
	SecureURL      string            `json:"secure_url"`
	Bytes          int64             `json:"bytes"`
	Duration       float64           `json:"duration"`
	Width          int               `json:"width"`
	Height         int               `json:"height"`
	Format         string            `json:"format"`
	Transformation json.RawMessage   `json:"transformation,omitempty"`
	Eager          []port.EagerResult `json:"eager,omitempty"`
	Done           bool              `json:"done"`
	Error          *apiError         `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
}

// resourceResponse is the admin API's wire format for asset metadata.
type resourceResponse struct {
	PublicID  string                 `json:"public_id"`
	Width     int                    `json:"width"`
	Height    int                    `json:"height"`
	Format    string                 `json:"format"`
	Bytes     int64                  `json:"bytes"`
	CreatedAt string                 `json:"created_at"`
	Colors    json.RawMessage        `json:"colors,omitempty"`
	Context   map[string]any         `json:"context,omitempty"`
	Derived   []port.DerivedResource `json:"derived,omitempty"`
	Error     *apiError              `json:"error,omitempty"`
}

// UploadError is a terminal provider failure. It carries the provider's own
// message when one was reported.
type UploadError struct {
	StatusCode int
	Message    string
}

func (e *UploadError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("provider upload failed: %s", e.Message)
	}
	return fmt.Sprintf("provider upload failed with status %d", e.StatusCode)
}

func (r *uploadResponse) toResult() *port.UploadResult {
	return &port.UploadResult{
		PublicID:        r.PublicID,
		SecureURL:       r.SecureURL,
		Bytes:           r.Bytes,
		Duration:        r.Duration,
		Width:           r.Width,
		Height:          r.Height,
		Format:          r.Format,
		Transformations: r.Transformation,
		Eager:           r.Eager,
	}
}
