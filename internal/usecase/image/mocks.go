package image

import (
	"context"

	"github.com/reelvault/reelvault-go/internal/model"
	"github.com/reelvault/reelvault-go/internal/port"
	"github.com/reelvault/reelvault-go/internal/preprocess"
)

type mockResolver struct {
	userRecord *model.User
	resolveErr error
}

func (m *mockResolver) Resolve(ctx context.Context, p port.Principal) (*model.User, error) {
	if m.resolveErr != nil {
		return nil, m.resolveErr
	}
	return m.userRecord, nil
}

type mockProcessor struct {
	uploadOut   *port.UploadResult
	resourceOut *port.ResourceResult
	urls        port.ImageURLSet

	uploadErr   error
	resourceErr error

	uploadData []byte
	uploadOpts port.UploadOptions
}

func (m *mockProcessor) Upload(ctx context.Context, data []byte, opts port.UploadOptions) (*port.UploadResult, error) {
	m.uploadData = data
	m.uploadOpts = opts
	if m.uploadErr != nil {
		return nil, m.uploadErr
	}
	return m.uploadOut, nil
}
func (m *mockProcessor) Resource(ctx context.Context, publicID, resourceType string) (*port.ResourceResult, error) {
	if m.resourceErr != nil {
		return nil, m.resourceErr
	}
	return m.resourceOut, nil
}
func (m *mockProcessor) Destroy(ctx context.Context, publicID, resourceType string) error {
	return nil
}
func (m *mockProcessor) ImageURLs(publicID string) port.ImageURLSet {
	return m.urls
}
func (m *mockProcessor) VideoURLs(publicID string) port.VideoURLSet {
	return port.VideoURLSet{}
}

type mockPreprocessor struct {
	out *preprocess.Result
	err error

	called bool
	opts   preprocess.Options
}

func (m *mockPreprocessor) Process(data []byte, mimeType string, opts preprocess.Options) (*preprocess.Result, error) {
	m.called = true
	m.opts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.out != nil {
		return m.out, nil
	}
	return &preprocess.Result{Data: data}, nil
}
