package video

import (
	"context"
	"time"

	"github.com/reelvault/reelvault-go/internal/model"
	"github.com/reelvault/reelvault-go/internal/port"
	"github.com/reelvault/reelvault-go/internal/uuid"
)

type mockUserRepo struct {
	userRecord *model.User

	getErr    error
	createErr error

	created *model.User
}

func (m *mockUserRepo) GetByExternalID(ctx context.Context, externalID string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.userRecord, nil
}
func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	m.created = user
	return m.createErr
}

type mockVideoRepo struct {
	videoRecord *model.Video
	listOut     []model.Video

	getErr    error
	createErr error
	updateErr error
	listErr   error
	deleteErr error

	created       *model.Video
	updated       *model.Video
	deletedID     uuid.UUID
	deletedUserID uuid.UUID
	deleteCalled  bool
}

func (m *mockVideoRepo) Create(ctx context.Context, video *model.Video) error {
	m.created = video
	return m.createErr
}
func (m *mockVideoRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.videoRecord, nil
}
func (m *mockVideoRepo) GetByPublicID(ctx context.Context, publicID string) (*model.Video, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.videoRecord, nil
}
func (m *mockVideoRepo) Update(ctx context.Context, video *model.Video) error {
	m.updated = video
	return m.updateErr
}
func (m *mockVideoRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Video, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listOut, nil
}
func (m *mockVideoRepo) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	m.deleteCalled = true
	m.deletedID = id
	m.deletedUserID = userID
	return m.deleteErr
}

type mockProcessor struct {
	uploadOut   *port.UploadResult
	resourceOut *port.ResourceResult

	uploadErr   error
	resourceErr error
	destroyErr  error

	uploadOpts      port.UploadOptions
	uploadData      []byte
	destroyCalled   bool
	destroyedID     string
	destroyedType   string
	resourceCalled  bool
	resourcePubID   string
	resourceResType string
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
	m.resourceCalled = true
	m.resourcePubID = publicID
	m.resourceResType = resourceType
	if m.resourceErr != nil {
		return nil, m.resourceErr
	}
	return m.resourceOut, nil
}
func (m *mockProcessor) Destroy(ctx context.Context, publicID, resourceType string) error {
	m.destroyCalled = true
	m.destroyedID = publicID
	m.destroyedType = resourceType
	return m.destroyErr
}
func (m *mockProcessor) ImageURLs(publicID string) port.ImageURLSet {
	return port.ImageURLSet{}
}
func (m *mockProcessor) VideoURLs(publicID string) port.VideoURLSet {
	return port.VideoURLSet{
		Full:      "https://cdn/full/" + publicID,
		Preview:   "https://cdn/preview/" + publicID,
		Thumbnail: "https://cdn/thumb/" + publicID,
	}
}

type mockCache struct {
	videosOut []model.Video

	getErr error
	setErr error
	delErr error

	getCalled bool
	setCalled bool
	setTTL    time.Duration
	delCalled bool
}

func (m *mockCache) GetUserVideos(ctx context.Context, userID uuid.UUID) ([]model.Video, error) {
	m.getCalled = true
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.videosOut, nil
}
func (m *mockCache) SetUserVideos(ctx context.Context, userID uuid.UUID, videos []model.Video, ttl time.Duration) error {
	m.setCalled = true
	m.setTTL = ttl
	return m.setErr
}
func (m *mockCache) DeleteUserVideos(ctx context.Context, userID uuid.UUID) error {
	m.delCalled = true
	return m.delErr
}

type mockDispatcher struct {
	enqueueErr error

	enqueued   bool
	enqueuedID uuid.UUID
}

func (m *mockDispatcher) EnqueueSyncEagerVideo(ctx context.Context, id uuid.UUID) error {
	m.enqueued = true
	m.enqueuedID = id
	return m.enqueueErr
}

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
