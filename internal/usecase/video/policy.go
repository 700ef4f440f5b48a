package video

import "github.com/reelvault/reelvault-go/internal/port"

// Size boundaries of the three transcoding tiers.
const (
	TierGoodThreshold = 2 << 20  // 2 MiB
	TierLowThreshold  = 10 << 20 // 10 MiB
)

// CompressionFlagThreshold drives the stored compression_applied flag.
// It happens to equal TierGoodThreshold but is an independent cutoff; the
// source systems diverged here and the discrepancy is kept on purpose.
const CompressionFlagThreshold = 2 << 20

// CompressionSettings parameterize one provider ingest request. The provider
// performs the actual transcoding; this is only the order form.
type CompressionSettings struct {
	Transformation []port.Transformation
	Eager          []port.EagerTransformation
	EagerAsync     bool
}

// CompressionFor maps an original byte size onto a transcoding tier. Pure
// function of size, totally ordered by aggressiveness: below 2 MiB only
// format negotiation, 2 to 10 MiB good-quality auto-compression with one
// eager MP4, from 10 MiB low-quality capped-bit-rate with eager MP4 and WebM.
func CompressionFor(size int64) CompressionSettings {
	switch {
	case size < TierGoodThreshold:
		return CompressionSettings{
			Transformation: []port.Transformation{
				{FetchFormat: "auto"},
			},
		}
	case size < TierLowThreshold:
		return CompressionSettings{
			Transformation: []port.Transformation{
				{Quality: "auto:good", FetchFormat: "auto"},
			},
			Eager: []port.EagerTransformation{
				{Format: "mp4", Quality: "auto:good"},
			},
			EagerAsync: true,
		}
	default:
		return CompressionSettings{
			Transformation: []port.Transformation{
				{Quality: "auto:low", FetchFormat: "auto", BitRate: "1000k"},
			},
			Eager: []port.EagerTransformation{
				{Format: "mp4", Quality: "auto:low", BitRate: "1000k"},
				{Format: "webm", Quality: "auto:low", BitRate: "1000k"},
			},
			EagerAsync: true,
		}
	}
}

// CompressionApplied reports what the stored record claims about
// compression. Uses the flat flag cutoff, not the tier boundaries.
func CompressionApplied(size int64) bool {
	return size >= CompressionFlagThreshold
}
