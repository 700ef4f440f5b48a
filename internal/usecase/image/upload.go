package image

import (
	"context"
	"fmt"
	"log"

	"github.com/reelvault/reelvault-go/internal/port"
	"github.com/reelvault/reelvault-go/internal/preprocess"
)

// Preprocessor is the local image pipeline run before the provider sees the
// bytes.
type Preprocessor interface {
	Process(data []byte, mimeType string, opts preprocess.Options) (*preprocess.Result, error)
}

type uploadSrv struct {
	resolver  port.IdentityResolver
	processor port.MediaProcessor
	pre       Preprocessor
	genUUID   port.UUIDGen
}

// compile-time check
var _ port.ImageUploader = (*uploadSrv)(nil)

// NewUploader constructs a port.ImageUploader implementation.
func NewUploader(resolver port.IdentityResolver, processor port.MediaProcessor, pre Preprocessor, genUUID port.UUIDGen) port.ImageUploader {
	return &uploadSrv{resolver: resolver, processor: processor, pre: pre, genUUID: genUUID}
}

// UploadImage validates, optionally preprocesses locally, and hands the
// bytes to the provider. Unlike videos, image uploads leave no database
// record: the provider is the system of record and everything needed later
// can be re-derived from the content id.
func (s *uploadSrv) UploadImage(ctx context.Context, in port.UploadImageInput) (*port.UploadImageOutput, error) {
	if err := validateUpload(in.Data, in.MimeType); err != nil {
		return nil, err
	}

	user, err := s.resolver.Resolve(ctx, in.Principal)
	if err != nil {
		return nil, err
	}

	originalSize := int64(len(in.Data))
	data := in.Data
	var pre *preprocess.Result

	if in.Options.EnableOptimization {
		pre, err = s.pre.Process(in.Data, in.MimeType, preprocess.Options{
			Quality:   in.Options.Quality,
			MaxWidth:  in.Options.MaxWidth,
			MaxHeight: in.Options.MaxHeight,
		})
		if err != nil {
			return nil, fmt.Errorf("preprocessing failed: %w", err)
		}
		data = pre.Data
	}

	publicID := fmt.Sprintf("users/%s/%s", user.ExternalID, s.genUUID())
	log.Printf("uploading image %q for user #%s as %q...", in.FileName, user.ID, publicID)

	result, err := s.processor.Upload(ctx, data, port.UploadOptions{
		PublicID:     publicID,
		ResourceType: "image",
		Transformation: []port.Transformation{
			{Quality: "auto:good", FetchFormat: "auto", Flags: "progressive"},
		},
		Context: map[string]string{
			"caption": in.FileName,
			"owner":   user.ExternalID,
		},
		Overwrite: true,
	})
	if err != nil {
		return nil, err
	}

	urls := s.processor.ImageURLs(result.PublicID)

	out := &port.UploadImageOutput{
		PublicID:       result.PublicID,
		SecureURL:      result.SecureURL,
		OptimizedURL:   urls.Optimized,
		ResponsiveURLs: urls.Responsive,
		Metadata: port.ImageMetadataOutput{
			Width:  result.Width,
			Height: result.Height,
			Format: result.Format,
			Size:   originalSize,
		},
		Transformations: []string{
			"Auto-quality optimization",
			"Progressive loading",
			"Format auto-detection",
			"Responsive sizing",
		},
	}
	if in.Options.GenerateThumbnail {
		out.ThumbnailURL = urls.Thumbnail
	}
	if pre != nil && pre.Reencoded {
		out.Metadata.ProcessedSize = int64(len(data))
		out.Transformations = append(out.Transformations, "Smart compression", "EXIF rotation")
	}
	return out, nil
}
