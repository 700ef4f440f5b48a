package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// MetadataVersion is bumped whenever the shape of Metadata changes, so old
// blobs remain detectable.
const MetadataVersion = 1

// Quality levels accepted for video processing requests.
const (
	QualityAuto   = "auto"
	QualityHigh   = "high"
	QualityMedium = "medium"
	QualityLow    = "low"
)

// ProcessingOptions are the flags the uploader requested.
type ProcessingOptions struct {
	EnableEnhancement bool   `json:"enable_enhancement"`
	Quality           string `json:"quality"`
	GenerateThumbnail bool   `json:"generate_thumbnail"`
	AnalyzeContent    bool   `json:"analyze_content"`
}

// ProviderMetadata echoes what the provider reported about the processed
// asset.
type ProviderMetadata struct {
	Quality            string   `json:"quality"`
	HasEnhancement     bool     `json:"has_enhancement"`
	HasThumbnail       bool     `json:"has_thumbnail"`
	HasContentAnalysis bool     `json:"has_content_analysis"`
	Tags               []string `json:"tags"`
}

// EagerVariant is one provider-side derived rendition, generated at upload
// time rather than on first request.
type EagerVariant struct {
	Format    string `json:"format"`
	SecureURL string `json:"secure_url"`
	Bytes     int64  `json:"bytes,omitempty"`
}

// Metadata is the structured blob persisted alongside each video record.
// Transformations keeps the provider's applied-transformation echo verbatim;
// its shape is vendor-owned so it stays opaque JSON.
type Metadata struct {
	Version            int               `json:"version"`
	ProcessingOptions  ProcessingOptions `json:"processing_options"`
	Provider           ProviderMetadata  `json:"provider"`
	Transformations    datatypes.JSON    `json:"transformations,omitempty"`
	EagerVariants      []EagerVariant    `json:"eager_variants,omitempty"`
	CompressionApplied bool              `json:"compression_applied"`
}

func (m Metadata) Value() (driver.Value, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal Metadata: %w", err)
	}
	return b, nil
}

func (m *Metadata) Scan(src interface{}) error {
	if src == nil {
		*m = Metadata{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("Metadata.Scan: expected []byte or string, got %T", src)
	}
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("unmarshal Metadata: %w", err)
	}
	return nil
}

// GormDataType maps the blob onto a jsonb column.
func (Metadata) GormDataType() string {
	return "jsonb"
}
