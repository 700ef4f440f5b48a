package mock

import (
	"context"

	"github.com/reelvault/reelvault-go/internal/model"
	"github.com/reelvault/reelvault-go/internal/port"
	"github.com/reelvault/reelvault-go/internal/uuid"
)

// MockVideoLister implements port.VideoLister for tests.
type MockVideoLister struct {
	Out    []model.Video
	Err    error
	Called bool
}

func (m *MockVideoLister) ListVideos(ctx context.Context, p port.Principal) ([]model.Video, error) {
	m.Called = true
	return m.Out, m.Err
}

// MockVideoUploader implements port.VideoUploader for tests.
type MockVideoUploader struct {
	Out    *port.UploadVideoOutput
	Err    error
	Called bool
	In     port.UploadVideoInput
}

func (m *MockVideoUploader) UploadVideo(ctx context.Context, in port.UploadVideoInput) (*port.UploadVideoOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockVideoDeleter implements port.VideoDeleter for tests.
type MockVideoDeleter struct {
	Err    error
	Called bool
	In     port.DeleteVideoInput
}

func (m *MockVideoDeleter) DeleteVideo(ctx context.Context, in port.DeleteVideoInput) error {
	m.Called = true
	m.In = in
	return m.Err
}

// MockImageUploader implements port.ImageUploader for tests.
type MockImageUploader struct {
	Out    *port.UploadImageOutput
	Err    error
	Called bool
	In     port.UploadImageInput
}

func (m *MockImageUploader) UploadImage(ctx context.Context, in port.UploadImageInput) (*port.UploadImageOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockImageGetter implements port.ImageGetter for tests.
type MockImageGetter struct {
	Out      *port.GetImageOutput
	Err      error
	Called   bool
	PublicID string
}

func (m *MockImageGetter) GetImage(ctx context.Context, publicID string) (*port.GetImageOutput, error) {
	m.Called = true
	m.PublicID = publicID
	return m.Out, m.Err
}

// MockEagerSyncer implements port.EagerSyncer for tests.
type MockEagerSyncer struct {
	Err    error
	Called bool
	ID     uuid.UUID
}

func (m *MockEagerSyncer) SyncEager(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

// MockWebhookProcessor implements port.WebhookProcessor for tests.
type MockWebhookProcessor struct {
	Err     error
	Called  bool
	Type    string
	Payload map[string]any
}

func (m *MockWebhookProcessor) ProcessNotification(ctx context.Context, notificationType string, payload map[string]any) error {
	m.Called = true
	m.Type = notificationType
	m.Payload = payload
	return m.Err
}
