package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "photogallery/internal/errors"
	"photogallery/internal/model"
	"photogallery/internal/policy"
	"photogallery/internal/repository"
)

// CommentService handles photo comments.
type CommentService interface {
	Add(ctx context.Context, photoID, authorID uint, content string) (*model.Comment, error)
	ListByPhoto(ctx context.Context, photoID uint) ([]model.Comment, error)
	Delete(ctx context.Context, id, requesterID uint) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	photoRepo   repository.PhotoRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(commentRepo repository.CommentRepository, photoRepo repository.PhotoRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		photoRepo:   photoRepo,
	}
}

// Add creates a comment on a photo the author can view. Blank content is
// rejected before any store access.
func (s *commentService) Add(ctx context.Context, photoID, authorID uint, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.ErrEmptyContent
	}

	photo, err := s.photoRepo.FindByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("find photo: %w", err)
	}

	if !policy.CanView(photo, &authorID) {
		return nil, apperrors.ErrForbidden
	}

	comment := &model.Comment{
		PhotoID: photoID,
		UserID:  authorID,
		Content: content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return comment, nil
}

// ListByPhoto returns the photo's comments newest-first. An unknown photo id
// yields an empty list.
func (s *commentService) ListByPhoto(ctx context.Context, photoID uint) ([]model.Comment, error) {
	return s.commentRepo.ListByPhoto(ctx, photoID)
}

// Delete removes a comment, author-only.
func (s *commentService) Delete(ctx context.Context, id, requesterID uint) error {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return fmt.Errorf("find comment: %w", err)
	}

	if !policy.CanModify(comment.UserID, &requesterID) {
		return apperrors.ErrForbidden
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	return nil
}
