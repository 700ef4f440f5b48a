package cloudmedia

import (
	"sort"
	"strings"

	"github.com/reelvault/reelvault-go/internal/port"
)

// encodeTransformation serializes transformation steps into the provider's
// URL-style syntax: parameters within a step joined by ',', steps joined
// by '/'.
func encodeTransformation(steps []port.Transformation) string {
	parts := make([]string, 0, len(steps))
	for _, s := range steps {
		var params []string
		if s.Quality != "" {
			params = append(params, "q_"+s.Quality)
		}
		if s.FetchFormat != "" {
			params = append(params, "f_"+s.FetchFormat)
		}
		if s.BitRate != "" {
			params = append(params, "br_"+s.BitRate)
		}
		if s.Flags != "" {
			params = append(params, "fl_"+s.Flags)
		}
		if len(params) == 0 {
			continue
		}
		parts = append(parts, strings.Join(params, ","))
	}
	return strings.Join(parts, "/")
}

// encodeEager serializes eager variants: each variant is its transformation
// followed by '/<format>', variants joined by '|'.
func encodeEager(eager []port.EagerTransformation) string {
	parts := make([]string, 0, len(eager))
	for _, e := range eager {
		var params []string
		if e.Quality != "" {
			params = append(params, "q_"+e.Quality)
		}
		if e.BitRate != "" {
			params = append(params, "br_"+e.BitRate)
		}
		variant := strings.Join(params, ",")
		if e.Format != "" {
			if variant == "" {
				variant = e.Format
			} else {
				variant += "/" + e.Format
			}
		}
		if variant != "" {
			parts = append(parts, variant)
		}
	}
	return strings.Join(parts, "|")
}

// encodeContext serializes contextual key/value pairs as 'k=v' joined by '|'.
func encodeContext(ctx map[string]string) string {
	if len(ctx) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ctx))
	for k, v := range ctx {
		parts = append(parts, k+"="+v)
	}
	// deterministic order keeps signatures stable
	sort.Strings(parts)
	return strings.Join(parts, "|")
}
