package cloudmedia

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/reelvault/reelvault-go/internal/port"
)

// Upload sends the payload to the provider and blocks until processing is
// confirmed. Images go out in a single multipart request; everything else
// streams through the sequential chunk loop. Validation has already happened
// by the time this is called, so any failure here is terminal for the
// request: no retry, and the caller writes no record.
func (c *Client) Upload(ctx context.Context, data []byte, opts port.UploadOptions) (*port.UploadResult, error) {
	resourceType := opts.ResourceType
	if resourceType == "" {
		resourceType = "auto"
	}

	params := c.signedParams(opts)

	ctx, cancel := context.WithTimeout(ctx, c.uploadTimeout)
	defer cancel()

	if resourceType == "image" {
		return c.uploadWhole(ctx, data, resourceType, params)
	}

	u := &chunkUploader{
		client:       c,
		data:         data,
		resourceType: resourceType,
		params:       params,
		uploadID:     newUploadID(),
	}
	return u.run(ctx)
}

// signedParams builds the form fields shared by every upload request and
// attaches the signature.
func (c *Client) signedParams(opts port.UploadOptions) url.Values {
	params := url.Values{}
	params.Set("timestamp", strconv.FormatInt(c.now().Unix(), 10))
	if opts.Folder != "" {
		params.Set("folder", opts.Folder)
	}
	if opts.PublicID != "" {
		params.Set("public_id", opts.PublicID)
	}
	if t := encodeTransformation(opts.Transformation); t != "" {
		params.Set("transformation", t)
	}
	if e := encodeEager(opts.Eager); e != "" {
		params.Set("eager", e)
		params.Set("eager_async", strconv.FormatBool(opts.EagerAsync))
	}
	if cx := encodeContext(opts.Context); cx != "" {
		params.Set("context", cx)
	}
	if opts.Overwrite {
		params.Set("overwrite", "true")
	}
	if opts.UniqueFilename {
		params.Set("unique_filename", "true")
	}

	params.Set("signature", signParams(params, c.apiSecret))
	params.Set("api_key", c.apiKey)
	return params
}

// uploadWhole performs a single-request multipart upload.
func (c *Client) uploadWhole(ctx context.Context, data []byte, resourceType string, params url.Values) (*port.UploadResult, error) {
	body, contentType, err := multipartBody(data, params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL(resourceType), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return resp.toResult(), nil
}

// multipartBody assembles a multipart form with every param plus the payload
// under the "file" field.
func multipartBody(chunk []byte, params url.Values) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for key := range params {
		if err := mw.WriteField(key, params.Get(key)); err != nil {
			return nil, "", err
		}
	}
	fw, err := mw.CreateFormFile("file", "file")
	if err != nil {
		return nil, "", err
	}
	if _, err := fw.Write(chunk); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return body, mw.FormDataContentType(), nil
}

// do executes one upload-API request and decodes the provider response,
// converting non-2xx statuses and embedded error payloads into *UploadError.
func (c *Client) do(req *http.Request) (*uploadResponse, error) {
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

	var out uploadResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		if resp.StatusCode >= 300 {
			return nil, &UploadError{StatusCode: resp.StatusCode}
		}
		return nil, fmt.Errorf("decoding provider response: %w", err)
	}
	if out.Error != nil {
		return nil, &UploadError{StatusCode: resp.StatusCode, Message: out.Error.Message}
	}
	if resp.StatusCode >= 300 {
		return nil, &UploadError{StatusCode: resp.StatusCode}
	}
	return &out, nil
}
