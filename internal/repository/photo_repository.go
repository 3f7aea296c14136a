package repository

import (
	"context"

	"gorm.io/gorm"

	"photogallery/internal/model"
)

// PhotoRepository defines persistence operations for photos.
type PhotoRepository interface {
	Create(ctx context.Context, photo *model.Photo) error
	FindByID(ctx context.Context, id uint) (*model.Photo, error)
	ListPublished(ctx context.Context, limit, offset int) ([]model.Photo, error)
	ListPublishedByUser(ctx context.Context, userID uint, limit, offset int) ([]model.Photo, error)
	ListByOwner(ctx context.Context, ownerID uint, limit, offset int) ([]model.Photo, error)
	SetPublished(ctx context.Context, id uint, published bool) error
	Delete(ctx context.Context, id uint) error
}

type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository builds a GORM-backed repository.
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

// withUsername projects the owner's username into the Username field.
func (r *photoRepository) withUsername(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Photo{}).
		Select("photos.*, users.username").
		Joins("JOIN users ON users.id = photos.user_id")
}

func (r *photoRepository) Create(ctx context.Context, photo *model.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *photoRepository) FindByID(ctx context.Context, id uint) (*model.Photo, error) {
	var photo model.Photo
	err := r.withUsername(ctx).Where("photos.id = ?", id).First(&photo).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *photoRepository) ListPublished(ctx context.Context, limit, offset int) ([]model.Photo, error) {
	var photos []model.Photo
	err := r.withUsername(ctx).
		Where("photos.is_published = ?", true).
		Order("photos.id DESC").
		Limit(limit).Offset(offset).
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *photoRepository) ListPublishedByUser(ctx context.Context, userID uint, limit, offset int) ([]model.Photo, error) {
	var photos []model.Photo
	err := r.withUsername(ctx).
		Where("photos.is_published = ? AND photos.user_id = ?", true, userID).
		Order("photos.created_at DESC, photos.id DESC").
		Limit(limit).Offset(offset).
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *photoRepository) ListByOwner(ctx context.Context, ownerID uint, limit, offset int) ([]model.Photo, error) {
	var photos []model.Photo
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *photoRepository) SetPublished(ctx context.Context, id uint, published bool) error {
	return r.db.WithContext(ctx).
		Model(&model.Photo{}).
		Where("id = ?", id).
		Update("is_published", published).Error
}

func (r *photoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Photo{}, id).Error
}
