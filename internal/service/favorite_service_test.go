package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "photogallery/internal/errors"
	"photogallery/internal/model"
)

// MockFavoriteRepository is a mock implementation of FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, userID, photoID uint) error {
	args := m.Called(ctx, userID, photoID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID, photoID uint) error {
	args := m.Called(ctx, userID, photoID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) ListVisiblePhotos(ctx context.Context, userID uint) ([]model.Photo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Photo), args.Error(1)
}

func TestFavoriteService_Add(t *testing.T) {
	published := &model.Photo{ID: 5, UserID: 1, IsPublished: true}
	unpublished := &model.Photo{ID: 6, UserID: 1, IsPublished: false}

	tests := []struct {
		name       string
		userID     uint
		photoID    uint
		setupMocks func(photos *MockPhotoRepository, favs *MockFavoriteRepository)
		wantErr    error
	}{
		{
			name:    "success",
			userID:  2,
			photoID: 5,
			setupMocks: func(photos *MockPhotoRepository, favs *MockFavoriteRepository) {
				photos.On("FindByID", mock.Anything, uint(5)).Return(published, nil)
				favs.On("Add", mock.Anything, uint(2), uint(5)).Return(nil)
			},
		},
		{
			name:    "missing photo",
			userID:  2,
			photoID: 99,
			setupMocks: func(photos *MockPhotoRepository, favs *MockFavoriteRepository) {
				photos.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: apperrors.ErrPhotoNotFound,
		},
		{
			name:    "unpublished photo of another user",
			userID:  2,
			photoID: 6,
			setupMocks: func(photos *MockPhotoRepository, favs *MockFavoriteRepository) {
				photos.On("FindByID", mock.Anything, uint(6)).Return(unpublished, nil)
			},
			wantErr: apperrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			photos := new(MockPhotoRepository)
			favs := new(MockFavoriteRepository)
			tt.setupMocks(photos, favs)

			svc := NewFavoriteService(favs, photos)
			err := svc.Add(context.Background(), tt.userID, tt.photoID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				favs.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
			}
			photos.AssertExpectations(t)
			favs.AssertExpectations(t)
		})
	}
}

func TestFavoriteService_AddTwiceIsIdempotent(t *testing.T) {
	photos := new(MockPhotoRepository)
	photos.On("FindByID", mock.Anything, uint(5)).Return(&model.Photo{ID: 5, UserID: 1, IsPublished: true}, nil)

	favs := new(MockFavoriteRepository)
	// The repository absorbs the duplicate via ON CONFLICT DO NOTHING, so
	// the second call succeeds just like the first.
	favs.On("Add", mock.Anything, uint(2), uint(5)).Return(nil).Twice()

	svc := NewFavoriteService(favs, photos)
	require.NoError(t, svc.Add(context.Background(), 2, 5))
	require.NoError(t, svc.Add(context.Background(), 2, 5))
	favs.AssertExpectations(t)
}

func TestFavoriteService_RemoveAbsentIsNoop(t *testing.T) {
	favs := new(MockFavoriteRepository)
	favs.On("Remove", mock.Anything, uint(2), uint(5)).Return(nil)

	svc := NewFavoriteService(favs, new(MockPhotoRepository))
	require.NoError(t, svc.Remove(context.Background(), 2, 5))
	favs.AssertExpectations(t)
}

func TestFavoriteService_List(t *testing.T) {
	favs := new(MockFavoriteRepository)
	favs.On("ListVisiblePhotos", mock.Anything, uint(2)).Return([]model.Photo{
		{ID: 9, UserID: 1, IsPublished: true},
		{ID: 4, UserID: 2, IsPublished: false},
	}, nil)

	svc := NewFavoriteService(favs, new(MockPhotoRepository))
	got, err := svc.List(context.Background(), 2)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	favs.AssertExpectations(t)
}
