package video

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/reelvault/reelvault-go/internal/model"
	"github.com/reelvault/reelvault-go/internal/port"
	"gorm.io/datatypes"
)

// UploadFolder is the provider-side folder every video lands in.
const UploadFolder = "reelvault-uploads"

type uploadSrv struct {
	resolver   port.IdentityResolver
	videos     port.VideoRepository
	processor  port.MediaProcessor
	cache      port.Cache
	dispatcher port.TaskDispatcher
	genUUID    port.UUIDGen
}

// compile-time check
var _ port.VideoUploader = (*uploadSrv)(nil)

// NewUploader constructs a port.VideoUploader implementation.
func NewUploader(
	resolver port.IdentityResolver,
	videos port.VideoRepository,
	processor port.MediaProcessor,
	cache port.Cache,
	dispatcher port.TaskDispatcher,
	genUUID port.UUIDGen,
) port.VideoUploader {
	return &uploadSrv{
		resolver:   resolver,
		videos:     videos,
		processor:  processor,
		cache:      cache,
		dispatcher: dispatcher,
		genUUID:    genUUID,
	}
}

// UploadVideo runs the full intake pipeline: validate, resolve the principal,
// pick a transcoding tier, hand the bytes to the provider, persist the
// confirmed record. Nothing is written unless the provider reported success.
func (s *uploadSrv) UploadVideo(ctx context.Context, in port.UploadVideoInput) (*port.UploadVideoOutput, error) {
	if err := validateUpload(in); err != nil {
		return nil, err
	}
	if in.Options.Quality == "" {
		in.Options.Quality = model.QualityAuto
	}

	user, err := s.resolver.Resolve(ctx, in.Principal)
	if err != nil {
		return nil, err
	}

	originalSize := in.OriginalSize
	if originalSize <= 0 {
		originalSize = int64(len(in.Data))
	}

	settings := CompressionFor(originalSize)
	log.Printf("uploading video %q for user #%s (%d bytes)...", in.Title, user.ID, originalSize)

	result, err := s.processor.Upload(ctx, in.Data, port.UploadOptions{
		Folder:         UploadFolder,
		ResourceType:   "video",
		Transformation: settings.Transformation,
		Eager:          settings.Eager,
		EagerAsync:     settings.EagerAsync,
		UniqueFilename: true,
	})
	if err != nil {
		return nil, err
	}

	compressedSize := result.Bytes
	if compressedSize == 0 {
		compressedSize = originalSize
	}

	record := &model.Video{
		ID:             s.genUUID(),
		Title:          strings.TrimSpace(in.Title),
		Description:    strings.TrimSpace(in.Description),
		PublicID:       result.PublicID,
		OriginalSize:   originalSize,
		CompressedSize: compressedSize,
		Duration:       result.Duration,
		UserID:         user.ID,
		Metadata: model.Metadata{
			Version:           model.MetadataVersion,
			ProcessingOptions: in.Options,
			Provider: model.ProviderMetadata{
				Quality:            in.Options.Quality,
				HasEnhancement:     in.Options.EnableEnhancement,
				HasThumbnail:       in.Options.GenerateThumbnail,
				HasContentAnalysis: in.Options.AnalyzeContent,
			},
			Transformations:    datatypes.JSON(result.Transformations),
			EagerVariants:      eagerVariants(result.Eager),
			CompressionApplied: CompressionApplied(originalSize),
		},
	}
	if err := s.videos.Create(ctx, record); err != nil {
		return nil, err
	}

	if settings.EagerAsync {
		if err := s.dispatcher.EnqueueSyncEagerVideo(ctx, record.ID); err != nil {
			log.Printf("failed to enqueue eager sync for video #%s: %v", record.ID, err)
		}
	}
	if err := s.cache.DeleteUserVideos(ctx, user.ID); err != nil {
		log.Printf("failed invalidating cached video list for user #%s: %v", user.ID, err)
	}

	return &port.UploadVideoOutput{
		Video: record,
		Processing: port.ProcessingSummary{
			AIEnhanced:         in.Options.EnableEnhancement,
			Quality:            in.Options.Quality,
			ThumbnailGenerated: in.Options.GenerateThumbnail,
			ContentAnalyzed:    in.Options.AnalyzeContent,
			CompressionApplied: record.Metadata.CompressionApplied,
			SizeReduction:      sizeReduction(originalSize, compressedSize),
		},
		URLs: s.processor.VideoURLs(record.PublicID),
	}, nil
}

func eagerVariants(eager []port.EagerResult) []model.EagerVariant {
	if len(eager) == 0 {
		return nil
	}
	out := make([]model.EagerVariant, 0, len(eager))
	for _, e := range eager {
		out = append(out, model.EagerVariant{
			Format:    e.Format,
			SecureURL: e.SecureURL,
			Bytes:     e.Bytes,
		})
	}
	return out
}

// sizeReduction formats the relative shrink as a percentage string. The
// provider can report a larger size than the original; that reads as 0.0%.
func sizeReduction(original, compressed int64) string {
	if original <= 0 || compressed >= original {
		return "0.0%"
	}
	reduction := float64(original-compressed) / float64(original) * 100
	return fmt.Sprintf("%.1f%%", reduction)
}
