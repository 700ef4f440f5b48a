package port

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrResourceNotFound is returned by MediaProcessor.Resource when the
// provider has no asset for the content id.
var ErrResourceNotFound = errors.New("provider: resource not found")

// Transformation is one provider-side transformation step applied to the
// delivered asset.
type Transformation struct {
	Quality     string
	FetchFormat string
	BitRate     string
	Flags       string
}

// EagerTransformation is a derived variant the provider pre-generates at
// upload time instead of on first request.
type EagerTransformation struct {
	Format  string
	Quality string
	BitRate string
}

// UploadOptions parameterize a provider ingest request.
type UploadOptions struct {
	Folder         string
	PublicID       string
	ResourceType   string // "auto", "image" or "video"
	Transformation []Transformation
	Eager          []EagerTransformation
	EagerAsync     bool
	Context        map[string]string
	Overwrite      bool
	UniqueFilename bool
}

// UploadResult is what the provider reports after successful processing.
type UploadResult struct {
	PublicID        string
	SecureURL       string
	Bytes           int64
	Duration        float64
	Width           int
	Height          int
	Format          string
	Transformations json.RawMessage
	Eager           []EagerResult
}

// EagerResult is one already-generated derived variant in an upload response.
type EagerResult struct {
	Format    string `json:"format"`
	Bytes     int64  `json:"bytes"`
	SecureURL string `json:"secure_url"`
}

// DerivedResource is a provider-side derived rendition reported by the
// resource endpoint.
type DerivedResource struct {
	Transformation string `json:"transformation"`
	Format         string `json:"format"`
	Bytes          int64  `json:"bytes"`
	SecureURL      string `json:"secure_url"`
}

// ResourceResult is provider-side metadata for an existing asset.
type ResourceResult struct {
	PublicID  string            `json:"public_id"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Format    string            `json:"format"`
	Bytes     int64             `json:"bytes"`
	CreatedAt string            `json:"created_at"`
	Colors    json.RawMessage   `json:"colors,omitempty"`
	Context   map[string]string `json:"context,omitempty"`
	Derived   []DerivedResource `json:"derived,omitempty"`
}

// ImageURLSet is the derived delivery URL set for an image content id.
type ImageURLSet struct {
	Original   string   `json:"original"`
	Optimized  string   `json:"optimized"`
	Thumbnail  string   `json:"thumbnail"`
	Responsive []string `json:"responsive"`
}

// VideoURLSet is the derived delivery URL set for a video content id.
type VideoURLSet struct {
	Full      string `json:"full"`
	Preview   string `json:"preview"`
	Thumbnail string `json:"thumbnail"`
}

// MediaProcessor is the hosted media provider: it stores the bytes, performs
// all transcoding and analysis, and owns every delivery URL.
type MediaProcessor interface {
	Upload(ctx context.Context, data []byte, opts UploadOptions) (*UploadResult, error)
	Resource(ctx context.Context, publicID, resourceType string) (*ResourceResult, error)
	Destroy(ctx context.Context, publicID, resourceType string) error
	ImageURLs(publicID string) ImageURLSet
	VideoURLs(publicID string) VideoURLSet
}
