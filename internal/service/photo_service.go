package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"gorm.io/gorm"

	"photogallery/internal/cache"
	apperrors "photogallery/internal/errors"
	"photogallery/internal/model"
	"photogallery/internal/policy"
	"photogallery/internal/repository"
	"photogallery/internal/storage"
)

const (
	photoCacheTTL = 5 * time.Minute

	defaultPage  = 1
	defaultLimit = 9
)

// PhotoService handles photo upload, listing, detail and owner mutations.
type PhotoService interface {
	Upload(ctx context.Context, ownerID uint, title string, isPublished bool, filename, contentType string, file io.Reader) (*model.Photo, error)
	ListPublished(ctx context.Context, page, limit int) ([]model.Photo, error)
	ListByUser(ctx context.Context, userID uint, page, limit int) ([]model.Photo, error)
	ListOwn(ctx context.Context, ownerID uint, page, limit int) ([]model.Photo, error)
	Details(ctx context.Context, id uint, requesterID *uint) (*model.Photo, []model.Comment, error)
	SetPublished(ctx context.Context, id uint, requesterID uint, published bool) error
	Delete(ctx context.Context, id uint, requesterID uint) error
}

type photoService struct {
	photoRepo   repository.PhotoRepository
	commentRepo repository.CommentRepository
	blobs       storage.BlobStore
	cache       *cache.Client
}

// NewPhotoService creates a new photo service.
func NewPhotoService(photoRepo repository.PhotoRepository, commentRepo repository.CommentRepository, blobs storage.BlobStore, cache *cache.Client) PhotoService {
	return &photoService{
		photoRepo:   photoRepo,
		commentRepo: commentRepo,
		blobs:       blobs,
		cache:       cache,
	}
}

func (s *photoService) cacheKey(id uint) string {
	return fmt.Sprintf("photo:%d", id)
}

// normalizePaging applies the page/limit defaults and computes the offset.
func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return limit, (page - 1) * limit
}

// Upload stores the blob first, then persists the photo row owned by the
// caller. A failed blob store aborts the whole operation.
func (s *photoService) Upload(ctx context.Context, ownerID uint, title string, isPublished bool, filename, contentType string, file io.Reader) (*model.Photo, error) {
	url, err := s.blobs.Store(ctx, filename, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}

	photo := &model.Photo{
		URL:         url,
		Title:       title,
		UserID:      ownerID,
		IsPublished: isPublished,
	}

	if err := s.photoRepo.Create(ctx, photo); err != nil {
		return nil, fmt.Errorf("create photo: %w", err)
	}

	return photo, nil
}

func (s *photoService) ListPublished(ctx context.Context, page, limit int) ([]model.Photo, error) {
	limit, offset := normalizePaging(page, limit)
	return s.photoRepo.ListPublished(ctx, limit, offset)
}

func (s *photoService) ListByUser(ctx context.Context, userID uint, page, limit int) ([]model.Photo, error) {
	limit, offset := normalizePaging(page, limit)
	return s.photoRepo.ListPublishedByUser(ctx, userID, limit, offset)
}

func (s *photoService) ListOwn(ctx context.Context, ownerID uint, page, limit int) ([]model.Photo, error) {
	limit, offset := normalizePaging(page, limit)
	return s.photoRepo.ListByOwner(ctx, ownerID, limit, offset)
}

// getPhoto retrieves a photo by ID with caching.
func (s *photoService) getPhoto(ctx context.Context, id uint) (*model.Photo, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Photo
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	photo, err := s.photoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPhotoNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(photo); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, photoCacheTTL)
	}

	return photo, nil
}

// Details returns the photo together with its comments. A missing photo is
// reported distinctly from a visibility violation, and comments are never
// fetched for a photo the requester may not view.
func (s *photoService) Details(ctx context.Context, id uint, requesterID *uint) (*model.Photo, []model.Comment, error) {
	photo, err := s.getPhoto(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if !policy.CanView(photo, requesterID) {
		return nil, nil, apperrors.ErrForbidden
	}

	comments, err := s.commentRepo.ListByPhoto(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list comments: %w", err)
	}

	return photo, comments, nil
}

// SetPublished toggles the publish flag, owner-only.
func (s *photoService) SetPublished(ctx context.Context, id uint, requesterID uint, published bool) error {
	photo, err := s.getPhoto(ctx, id)
	if err != nil {
		return err
	}

	if !policy.CanModify(photo.UserID, &requesterID) {
		return apperrors.ErrForbidden
	}

	if err := s.photoRepo.SetPublished(ctx, id, published); err != nil {
		return fmt.Errorf("update photo: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// Delete removes the photo, owner-only. Comments and favorites go with it
// via the store's cascade constraints.
func (s *photoService) Delete(ctx context.Context, id uint, requesterID uint) error {
	photo, err := s.getPhoto(ctx, id)
	if err != nil {
		return err
	}

	if !policy.CanModify(photo.UserID, &requesterID) {
		return apperrors.ErrForbidden
	}

	if err := s.photoRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
