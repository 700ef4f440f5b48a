package cloudmedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/reelvault/reelvault-go/internal/port"
)

// Resource fetches provider-side metadata for an uploaded asset, including
// contextual values, dominant colors and the derived-variant list.
func (c *Client) Resource(ctx context.Context, publicID, resourceType string) (*port.ResourceResult, error) {
	if resourceType == "" {
		resourceType = "image"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resourceURL(resourceType, publicID), nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("context", "true")
	q.Set("colors", "true")
	q.Set("derived", "true")
	if resourceType == "image" {
		q.Set("image_metadata", "true")
	}
	req.URL.RawQuery = q.Encode()
	req.SetBasicAuth(c.apiKey, c.apiSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("failed to close provider response body: %v", err)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading provider response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, port.ErrResourceNotFound
	}
	if resp.StatusCode >= 300 {
		var rr resourceResponse
		if json.Unmarshal(raw, &rr) == nil && rr.Error != nil {
			return nil, fmt.Errorf("provider resource fetch failed: %s", rr.Error.Message)
		}
		return nil, fmt.Errorf("provider resource fetch failed with status %d", resp.StatusCode)
	}

	var rr resourceResponse
	if err := json.Unmarshal(raw, &rr); err != nil {
		return nil, fmt.Errorf("decoding provider response: %w", err)
	}

	return &port.ResourceResult{
		PublicID:  rr.PublicID,
		Width:     rr.Width,
		Height:    rr.Height,
		Format:    rr.Format,
		Bytes:     rr.Bytes,
		CreatedAt: rr.CreatedAt,
		Colors:    rr.Colors,
		Context:   flattenContext(rr.Context),
		Derived:   rr.Derived,
	}, nil
}

// Destroy removes the remote asset. Used on record deletion; a missing
// remote asset is not an error worth failing the caller for, so the caller
// decides how hard to treat failures.
func (c *Client) Destroy(ctx context.Context, publicID, resourceType string) error {
	if resourceType == "" {
		resourceType = "video"
	}

	params := url.Values{}
	params.Set("public_id", publicID)
	params.Set("timestamp", strconv.FormatInt(c.now().Unix(), 10))
	params.Set("signature", signParams(params, c.apiSecret))
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.destroyURL(resourceType), nil)
	if err != nil {
		return err
	}
	req.URL.RawQuery = params.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("failed to close provider response body: %v", err)
		}
	}()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("provider destroy failed with status %d", resp.StatusCode)
	}
	return nil
}

// flattenContext lifts the provider's nested custom-context block into a
// flat key/value map.
func flattenContext(raw map[string]any) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]string)
	for k, v := range raw {
		switch vv := v.(type) {
		case string:
			out[k] = vv
		case map[string]any:
			// nested "custom" block
			for ck, cv := range vv {
				if s, ok := cv.(string); ok {
					out[ck] = s
				}
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
