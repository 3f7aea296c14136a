package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"photogallery/internal/model"
)

// FavoriteRepository defines persistence operations for the user↔photo
// favorites join.
type FavoriteRepository interface {
	Add(ctx context.Context, userID, photoID uint) error
	Remove(ctx context.Context, userID, photoID uint) error
	ListVisiblePhotos(ctx context.Context, userID uint) ([]model.Photo, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository builds a GORM-backed repository.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add inserts the favorite row. The composite primary key plus ON CONFLICT
// DO NOTHING makes duplicate favoriting a no-op.
func (r *favoriteRepository) Add(ctx context.Context, userID, photoID uint) error {
	fav := &model.Favorite{UserID: userID, PhotoID: photoID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(fav).Error
}

// Remove deletes the favorite row. Removing an absent favorite is not an
// error.
func (r *favoriteRepository) Remove(ctx context.Context, userID, photoID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND photo_id = ?", userID, photoID).
		Delete(&model.Favorite{}).Error
}

// ListVisiblePhotos returns the user's favorited photos that are published
// or owned by the user, mirroring photo visibility at the collection level.
func (r *favoriteRepository) ListVisiblePhotos(ctx context.Context, userID uint) ([]model.Photo, error) {
	var photos []model.Photo
	err := r.db.WithContext(ctx).
		Model(&model.Photo{}).
		Select("photos.*, users.username").
		Joins("JOIN favorites ON favorites.photo_id = photos.id").
		Joins("JOIN users ON users.id = photos.user_id").
		Where("favorites.user_id = ?", userID).
		Where("photos.is_published = ? OR photos.user_id = ?", true, userID).
		Order("photos.id DESC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}
