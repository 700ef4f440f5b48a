package cloudmedia

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"

	"github.com/reelvault/reelvault-go/internal/port"
)

// chunkState is the phase of a chunked upload. Transitions only move
// forward: sending → completing → done, with failed reachable from anywhere.
type chunkState int

const (
	stateSending chunkState = iota
	stateCompleting
	stateDone
	stateFailed
)

// chunkUploader transmits a payload in fixed-size sequential chunks. Every
// chunk write must be acknowledged before the next one goes out, so there is
// exactly one in-flight request at any time; the final chunk's response
// carries the processing result.
type chunkUploader struct {
	client       *Client
	data         []byte
	resourceType string
	params       url.Values
	uploadID     string

	state  chunkState
	offset int64
	final  *uploadResponse
	result *port.UploadResult
	err    error
}

func newUploadID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("reading random bytes: %v", err))
	}
	return hex.EncodeToString(b[:])
}

// run drives the state machine to a terminal state.
func (u *chunkUploader) run(ctx context.Context) (*port.UploadResult, error) {
	for {
		switch u.state {
		case stateSending:
			u.sendNext(ctx)
		case stateCompleting:
			u.complete()
		case stateDone:
			return u.result, nil
		case stateFailed:
			return nil, u.err
		}
	}
}

// sendNext writes the chunk starting at the current offset and waits for the
// acknowledgment. The last chunk is the one whose end reaches the total
// length; its acknowledged response moves the machine to completing instead
// of advancing the offset.
func (u *chunkUploader) sendNext(ctx context.Context) {
	total := int64(len(u.data))
	end := u.offset + ChunkSize
	if end >= total {
		end = total
	}

	resp, err := u.writeChunk(ctx, u.offset, end, total)
	if err != nil {
		u.fail(err)
		return
	}

	if end >= total {
		u.final = resp
		u.state = stateCompleting
		return
	}
	u.offset = end
}

// complete consumes the final chunk's response as the upload result.
func (u *chunkUploader) complete() {
	if u.final == nil || u.final.PublicID == "" {
		u.fail(&UploadError{Message: "no result returned"})
		return
	}
	u.result = u.final.toResult()
	u.state = stateDone
}

func (u *chunkUploader) fail(err error) {
	u.err = err
	u.state = stateFailed
}

// writeChunk issues one ranged upload request and decodes its
// acknowledgment.
func (u *chunkUploader) writeChunk(ctx context.Context, start, end, total int64) (*uploadResponse, error) {
	body, contentType, err := multipartBody(u.data[start:end], u.params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.client.uploadURL(u.resourceType), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Unique-Upload-Id", u.uploadID)
	req.Header.Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end-1, total))

	return u.client.do(req)
}
