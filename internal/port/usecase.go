package port

import (
	"context"
	"encoding/json"

	"github.com/reelvault/reelvault-go/internal/model"
	"github.com/reelvault/reelvault-go/internal/uuid"
)

type UUIDGen func() uuid.UUID

// Principal is the identity asserted by the authentication provider for the
// current request, with provider-reported profile defaults already applied.
type Principal struct {
	ExternalID string
	Email      string
	Name       string
}

// IdentityResolver finds or lazily creates the local user for an external
// principal.
type IdentityResolver interface {
	Resolve(ctx context.Context, p Principal) (*model.User, error)
}

// VideoUploader runs the full intake pipeline for one video upload.
type VideoUploader interface {
	UploadVideo(ctx context.Context, in UploadVideoInput) (*UploadVideoOutput, error)
}
type UploadVideoInput struct {
	Principal    Principal
	Data         []byte
	MimeType     string
	Title        string
	Description  string
	OriginalSize int64 // client-declared; falls back to len(Data) when 0
	Options      model.ProcessingOptions
}
type ProcessingSummary struct {
	AIEnhanced         bool   `json:"aiEnhanced"`
	Quality            string `json:"quality"`
	ThumbnailGenerated bool   `json:"thumbnailGenerated"`
	ContentAnalyzed    bool   `json:"contentAnalyzed"`
	CompressionApplied bool   `json:"compressionApplied"`
	SizeReduction      string `json:"sizeReduction"`
}
type UploadVideoOutput struct {
	Video      *model.Video      `json:"data"`
	Processing ProcessingSummary `json:"processing"`
	URLs       VideoURLSet       `json:"urls"`
}

// VideoLister returns the principal's records, newest first.
type VideoLister interface {
	ListVideos(ctx context.Context, p Principal) ([]model.Video, error)
}

// VideoDeleter removes one record owned by the principal.
type VideoDeleter interface {
	DeleteVideo(ctx context.Context, in DeleteVideoInput) error
}
type DeleteVideoInput struct {
	ID        uuid.UUID
	Principal Principal
}

// ImageUploader preprocesses and ingests one image upload.
type ImageUploader interface {
	UploadImage(ctx context.Context, in UploadImageInput) (*UploadImageOutput, error)
}
type ImageOptions struct {
	Quality            int  `json:"quality"`
	MaxWidth           int  `json:"maxWidth"`
	MaxHeight          int  `json:"maxHeight"`
	EnableOptimization bool `json:"enableOptimization"`
	GenerateThumbnail  bool `json:"generateThumbnail"`
}
type UploadImageInput struct {
	Principal Principal
	Data      []byte
	MimeType  string
	FileName  string
	Options   ImageOptions
}
type ImageMetadataOutput struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Format        string `json:"format"`
	Size          int64  `json:"size"`
	ProcessedSize int64  `json:"processedSize,omitempty"`
}
type UploadImageOutput struct {
	PublicID        string              `json:"publicId"`
	SecureURL       string              `json:"secureUrl"`
	OptimizedURL    string              `json:"optimizedUrl"`
	ThumbnailURL    string              `json:"thumbnailUrl,omitempty"`
	ResponsiveURLs  []string            `json:"responsiveUrls"`
	Metadata        ImageMetadataOutput `json:"metadata"`
	Transformations []string            `json:"transformations"`
}

// ImageGetter fetches provider-side metadata for an uploaded image.
type ImageGetter interface {
	GetImage(ctx context.Context, publicID string) (*GetImageOutput, error)
}
type GetImageMetadata struct {
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	Format     string          `json:"format"`
	Size       int64           `json:"size"`
	Colors     json.RawMessage `json:"colors,omitempty"`
	UploadedAt string          `json:"uploadedAt"`
}
type GetImageOutput struct {
	PublicID string            `json:"publicId"`
	Metadata GetImageMetadata  `json:"metadata"`
	URLs     ImageURLSet       `json:"urls"`
	Context  map[string]string `json:"context,omitempty"`
}

// EagerSyncer reconciles provider-side eager variants into the stored record.
type EagerSyncer interface {
	SyncEager(ctx context.Context, id uuid.UUID) error
}

// WebhookProcessor handles asynchronous provider notifications.
type WebhookProcessor interface {
	ProcessNotification(ctx context.Context, notificationType string, payload map[string]any) error
}
