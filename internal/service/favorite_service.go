package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "photogallery/internal/errors"
	"photogallery/internal/model"
	"photogallery/internal/policy"
	"photogallery/internal/repository"
)

// FavoriteService handles the user↔photo favorites join.
type FavoriteService interface {
	Add(ctx context.Context, userID, photoID uint) error
	Remove(ctx context.Context, userID, photoID uint) error
	List(ctx context.Context, userID uint) ([]model.Photo, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	photoRepo    repository.PhotoRepository
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, photoRepo repository.PhotoRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		photoRepo:    photoRepo,
	}
}

// Add favorites a photo the user can view. Favoriting the same photo twice
// is a no-op.
func (s *favoriteService) Add(ctx context.Context, userID, photoID uint) error {
	photo, err := s.photoRepo.FindByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPhotoNotFound
		}
		return fmt.Errorf("find photo: %w", err)
	}

	if !policy.CanView(photo, &userID) {
		return apperrors.ErrForbidden
	}

	if err := s.favoriteRepo.Add(ctx, userID, photoID); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// Remove unfavorites a photo. Removing an absent favorite is a no-op.
func (s *favoriteService) Remove(ctx context.Context, userID, photoID uint) error {
	if err := s.favoriteRepo.Remove(ctx, userID, photoID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

// List returns the user's favorited photos, filtered to those still visible
// to the user.
func (s *favoriteService) List(ctx context.Context, userID uint) ([]model.Photo, error) {
	return s.favoriteRepo.ListVisiblePhotos(ctx, userID)
}
