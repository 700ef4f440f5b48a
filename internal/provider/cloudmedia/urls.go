package cloudmedia

import (
	"fmt"

	"github.com/reelvault/reelvault-go/internal/port"
)

// responsiveWidths are the delivery widths pre-declared for responsive
// image sets.
var responsiveWidths = []int{400, 800, 1200, 1920}

// ImageURLs derives the delivery URL set for an image content identifier.
// Nothing is fetched; all variants are produced by the provider's CDN on
// first request.
func (c *Client) ImageURLs(publicID string) port.ImageURLSet {
	base := c.deliveryBase + "/image/upload"

	responsive := make([]string, 0, len(responsiveWidths))
	for _, w := range responsiveWidths {
		responsive = append(responsive, fmt.Sprintf("%s/w_%d,q_auto,f_auto/%s", base, w, publicID))
	}

	return port.ImageURLSet{
		Original:   fmt.Sprintf("%s/%s", base, publicID),
		Optimized:  fmt.Sprintf("%s/q_auto,f_auto,fl_progressive/%s", base, publicID),
		Thumbnail:  fmt.Sprintf("%s/w_300,h_300,c_fill,q_auto,f_auto/%s", base, publicID),
		Responsive: responsive,
	}
}

// VideoURLs derives the delivery URL set for a video content identifier:
// a full-resolution stream, a short animated preview clip and a jpg poster
// frame.
func (c *Client) VideoURLs(publicID string) port.VideoURLSet {
	base := c.deliveryBase + "/video/upload"

	return port.VideoURLSet{
		Full:      fmt.Sprintf("%s/w_1920,h_1080,q_auto,f_auto/%s", base, publicID),
		Preview:   fmt.Sprintf("%s/w_400,h_225,q_auto,f_auto/e_preview:duration_15:max_seg_9:min_seg_dur_1/%s", base, publicID),
		Thumbnail: fmt.Sprintf("%s/w_400,h_225,c_fill,g_auto,q_auto,f_jpg/%s", base, publicID),
	}
}
