// Package preprocess applies the local, deterministic image transform that
// runs before bytes are handed to the media provider: bounded downscale,
// EXIF orientation normalization and a fixed-quality re-encode. It never
// touches videos and never upscales.
package preprocess

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	DefaultQuality   = 85
	DefaultMaxWidth  = 2048
	DefaultMaxHeight = 2048
)

// Options bound the transform. Zero values mean the defaults above.
type Options struct {
	Quality   int
	MaxWidth  int
	MaxHeight int
}

// Result carries the transformed bytes plus what is known about them.
// Width/Height are the output dimensions; Reencoded reports whether Data
// differs from the input.
type Result struct {
	Data      []byte
	Width     int
	Height    int
	Format    string
	Reencoded bool
}

type Preprocessor struct {
	enc WebPEncoder
}

func NewPreprocessor(enc WebPEncoder) *Preprocessor {
	log.Println("initialising image preprocessor...")
	return &Preprocessor{enc: enc}
}

// decodable reports whether the local pipeline can decode the declared MIME
// type. Everything else (gif, svg, …) passes through untouched and is
// normalized provider-side.
func decodable(mimeType string) bool {
	switch mimeType {
	case "image/jpeg", "image/jpg", "image/png", "image/webp", "image/tiff":
		return true
	}
	return false
}

// Process runs the transform. Metadata is decoded first so an oversize check
// never requires a full decode; when both dimensions already fit the box the
// resize is skipped entirely, but orientation is still normalized.
func (p *Preprocessor) Process(data []byte, mimeType string, opts Options) (*Result, error) {
	if !decodable(mimeType) {
		return &Result{Data: data}, nil
	}

	quality := opts.Quality
	if quality <= 0 {
		quality = DefaultQuality
	}
	maxW := opts.MaxWidth
	if maxW <= 0 {
		maxW = DefaultMaxWidth
	}
	maxH := opts.MaxHeight
	if maxH <= 0 {
		maxH = DefaultMaxHeight
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("preprocess: failed to decode image config: %w", err)
	}

	img, format, err := p.enc.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("preprocess: failed to decode image: %w", err)
	}

	if format == "jpeg" {
		img = applyOrientation(img, readOrientation(data))
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if cfg.Width > maxW || cfg.Height > maxH {
		// fit inside the box, preserving aspect ratio, never enlarging
		targetW, targetH := fitInside(w, h, maxW, maxH)
		if targetW < w || targetH < h {
			dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
			draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
			img = dst
			w, h = targetW, targetH
		}
	}

	buf := &bytes.Buffer{}
	if err := p.enc.Encode(img, quality, buf); err != nil {
		return nil, fmt.Errorf("preprocess: failed to encode WebP: %w", err)
	}

	return &Result{
		Data:      buf.Bytes(),
		Width:     w,
		Height:    h,
		Format:    "webp",
		Reencoded: true,
	}, nil
}

// fitInside scales (w, h) down so both sides fit (maxW, maxH), keeping the
// aspect ratio. Dimensions already inside the box come back unchanged.
func fitInside(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	outW := int(float64(w) * scale)
	outH := int(float64(h) * scale)
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}
	return outW, outH
}
