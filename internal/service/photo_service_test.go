package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"photogallery/internal/cache"
	apperrors "photogallery/internal/errors"
	"photogallery/internal/model"
)

// noCache exercises the fail-safe nil path of the cache client.
var noCache *cache.Client

// MockPhotoRepository is a mock implementation of PhotoRepository.
type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) Create(ctx context.Context, photo *model.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) FindByID(ctx context.Context, id uint) (*model.Photo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Photo), args.Error(1)
}

func (m *MockPhotoRepository) ListPublished(ctx context.Context, limit, offset int) ([]model.Photo, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Photo), args.Error(1)
}

func (m *MockPhotoRepository) ListPublishedByUser(ctx context.Context, userID uint, limit, offset int) ([]model.Photo, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Photo), args.Error(1)
}

func (m *MockPhotoRepository) ListByOwner(ctx context.Context, ownerID uint, limit, offset int) ([]model.Photo, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Photo), args.Error(1)
}

func (m *MockPhotoRepository) SetPublished(ctx context.Context, id uint, published bool) error {
	args := m.Called(ctx, id, published)
	return args.Error(0)
}

func (m *MockPhotoRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCommentRepository is a mock implementation of CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPhoto(ctx context.Context, photoID uint) ([]model.Comment, error) {
	args := m.Called(ctx, photoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBlobStore is a mock implementation of storage.BlobStore.
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Store(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	args := m.Called(ctx, filename, contentType, r)
	return args.String(0), args.Error(1)
}

func TestPhotoService_Upload(t *testing.T) {
	tests := []struct {
		name        string
		isPublished bool
		setupMocks  func(photos *MockPhotoRepository, blobs *MockBlobStore)
		wantErr     bool
	}{
		{
			name:        "success stores blob then row",
			isPublished: true,
			setupMocks: func(photos *MockPhotoRepository, blobs *MockBlobStore) {
				blobs.On("Store", mock.Anything, "cat.jpg", "image/jpeg", mock.Anything).
					Return("http://blobs/cat.jpg", nil)
				photos.On("Create", mock.Anything, mock.AnythingOfType("*model.Photo")).Return(nil)
			},
		},
		{
			name: "blob failure aborts without row",
			setupMocks: func(photos *MockPhotoRepository, blobs *MockBlobStore) {
				blobs.On("Store", mock.Anything, "cat.jpg", "image/jpeg", mock.Anything).
					Return("", errors.New("disk full"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			photos := new(MockPhotoRepository)
			comments := new(MockCommentRepository)
			blobs := new(MockBlobStore)
			tt.setupMocks(photos, blobs)

			svc := NewPhotoService(photos, comments, blobs, noCache)
			photo, err := svc.Upload(context.Background(), 6, "my cat", tt.isPublished, "cat.jpg", "image/jpeg", strings.NewReader("bytes"))

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, photo)
				photos.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "http://blobs/cat.jpg", photo.URL)
				assert.Equal(t, uint(6), photo.UserID)
				assert.Equal(t, tt.isPublished, photo.IsPublished)
			}
			photos.AssertExpectations(t)
			blobs.AssertExpectations(t)
		})
	}
}

func TestPhotoService_ListPublishedPaging(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults applied", page: 0, limit: 0, wantLimit: 9, wantOffset: 0},
		{name: "second page of nine", page: 2, limit: 9, wantLimit: 9, wantOffset: 9},
		{name: "custom limit", page: 3, limit: 5, wantLimit: 5, wantOffset: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			photos := new(MockPhotoRepository)
			photos.On("ListPublished", mock.Anything, tt.wantLimit, tt.wantOffset).Return([]model.Photo{}, nil)

			svc := NewPhotoService(photos, new(MockCommentRepository), new(MockBlobStore), noCache)
			_, err := svc.ListPublished(context.Background(), tt.page, tt.limit)

			require.NoError(t, err)
			photos.AssertExpectations(t)
		})
	}
}

func TestPhotoService_Details(t *testing.T) {
	owner := uint(1)
	stranger := uint(2)

	unpublished := &model.Photo{ID: 10, UserID: owner, IsPublished: false}
	published := &model.Photo{ID: 11, UserID: owner, IsPublished: true}

	tests := []struct {
		name        string
		photoID     uint
		requesterID *uint
		setupMocks  func(photos *MockPhotoRepository, comments *MockCommentRepository)
		wantErr     error
	}{
		{
			name:        "missing photo is not found",
			photoID:     99,
			requesterID: &stranger,
			setupMocks: func(photos *MockPhotoRepository, comments *MockCommentRepository) {
				photos.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: apperrors.ErrPhotoNotFound,
		},
		{
			name:        "unpublished photo hidden from stranger",
			photoID:     10,
			requesterID: &stranger,
			setupMocks: func(photos *MockPhotoRepository, comments *MockCommentRepository) {
				photos.On("FindByID", mock.Anything, uint(10)).Return(unpublished, nil)
			},
			wantErr: apperrors.ErrForbidden,
		},
		{
			name:        "unpublished photo hidden from anonymous",
			photoID:     10,
			requesterID: nil,
			setupMocks: func(photos *MockPhotoRepository, comments *MockCommentRepository) {
				photos.On("FindByID", mock.Anything, uint(10)).Return(unpublished, nil)
			},
			wantErr: apperrors.ErrForbidden,
		},
		{
			name:        "unpublished photo visible to owner",
			photoID:     10,
			requesterID: &owner,
			setupMocks: func(photos *MockPhotoRepository, comments *MockCommentRepository) {
				photos.On("FindByID", mock.Anything, uint(10)).Return(unpublished, nil)
				comments.On("ListByPhoto", mock.Anything, uint(10)).Return([]model.Comment{}, nil)
			},
		},
		{
			name:        "published photo visible to anonymous",
			photoID:     11,
			requesterID: nil,
			setupMocks: func(photos *MockPhotoRepository, comments *MockCommentRepository) {
				photos.On("FindByID", mock.Anything, uint(11)).Return(published, nil)
				comments.On("ListByPhoto", mock.Anything, uint(11)).Return([]model.Comment{{ID: 1, PhotoID: 11}}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			photos := new(MockPhotoRepository)
			comments := new(MockCommentRepository)
			tt.setupMocks(photos, comments)

			svc := NewPhotoService(photos, comments, new(MockBlobStore), noCache)
			photo, got, err := svc.Details(context.Background(), tt.photoID, tt.requesterID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, photo)
				assert.Nil(t, got)
				comments.AssertNotCalled(t, "ListByPhoto", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.photoID, photo.ID)
				assert.NotNil(t, got)
			}
			photos.AssertExpectations(t)
			comments.AssertExpectations(t)
		})
	}
}

func TestPhotoService_SetPublished(t *testing.T) {
	photo := &model.Photo{ID: 7, UserID: 1, IsPublished: false}

	t.Run("owner can toggle", func(t *testing.T) {
		photos := new(MockPhotoRepository)
		photos.On("FindByID", mock.Anything, uint(7)).Return(photo, nil)
		photos.On("SetPublished", mock.Anything, uint(7), true).Return(nil)

		svc := NewPhotoService(photos, new(MockCommentRepository), new(MockBlobStore), noCache)
		require.NoError(t, svc.SetPublished(context.Background(), 7, 1, true))
		photos.AssertExpectations(t)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		photos := new(MockPhotoRepository)
		photos.On("FindByID", mock.Anything, uint(7)).Return(photo, nil)

		svc := NewPhotoService(photos, new(MockCommentRepository), new(MockBlobStore), noCache)
		assert.ErrorIs(t, svc.SetPublished(context.Background(), 7, 2, true), apperrors.ErrForbidden)
		photos.AssertNotCalled(t, "SetPublished", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing photo is not found", func(t *testing.T) {
		photos := new(MockPhotoRepository)
		photos.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewPhotoService(photos, new(MockCommentRepository), new(MockBlobStore), noCache)
		assert.ErrorIs(t, svc.SetPublished(context.Background(), 7, 1, true), apperrors.ErrPhotoNotFound)
	})
}

func TestPhotoService_Delete(t *testing.T) {
	photo := &model.Photo{ID: 8, UserID: 3}

	t.Run("owner can delete", func(t *testing.T) {
		photos := new(MockPhotoRepository)
		photos.On("FindByID", mock.Anything, uint(8)).Return(photo, nil)
		photos.On("Delete", mock.Anything, uint(8)).Return(nil)

		svc := NewPhotoService(photos, new(MockCommentRepository), new(MockBlobStore), noCache)
		require.NoError(t, svc.Delete(context.Background(), 8, 3))
		photos.AssertExpectations(t)
	})

	t.Run("non-owner is forbidden and row survives", func(t *testing.T) {
		photos := new(MockPhotoRepository)
		photos.On("FindByID", mock.Anything, uint(8)).Return(photo, nil)

		svc := NewPhotoService(photos, new(MockCommentRepository), new(MockBlobStore), noCache)
		assert.ErrorIs(t, svc.Delete(context.Background(), 8, 4), apperrors.ErrForbidden)
		photos.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
