package image

import (
	"context"
	"errors"

	"github.com/reelvault/reelvault-go/internal/port"
)

type getSrv struct {
	processor port.MediaProcessor
}

var _ port.ImageGetter = (*getSrv)(nil)

// NewGetter constructs a port.ImageGetter implementation.
func NewGetter(processor port.MediaProcessor) port.ImageGetter {
	return &getSrv{processor: processor}
}

// GetImage fetches provider-side metadata for an uploaded image and derives
// the delivery URL set. There is no local state to consult; the content id
// is the only key.
func (s *getSrv) GetImage(ctx context.Context, publicID string) (*port.GetImageOutput, error) {
	res, err := s.processor.Resource(ctx, publicID, "image")
	if err != nil {
		if errors.Is(err, port.ErrResourceNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}

	return &port.GetImageOutput{
		PublicID: res.PublicID,
		Metadata: port.GetImageMetadata{
			Width:      res.Width,
			Height:     res.Height,
			Format:     res.Format,
			Size:       res.Bytes,
			Colors:     res.Colors,
			UploadedAt: res.CreatedAt,
		},
		URLs:    s.processor.ImageURLs(res.PublicID),
		Context: res.Context,
	}, nil
}
