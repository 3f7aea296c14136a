package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"photogallery/internal/service"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CommentRequest represents a new comment request.
type CommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// Add godoc
// @Summary Comment on a photo
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param photoId path int true "Photo ID"
// @Param request body CommentRequest true "Comment content"
// @Success 201 {object} model.Comment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /photos/{photoId}/comments [post]
func (h *CommentHandler) Add(c echo.Context) error {
	claims, err := identity(c)
	if err != nil {
		return err
	}

	photoID, err := uintParam(c, "photoId")
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.Add(c.Request().Context(), photoID, claims.UserID, req.Content)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, comment)
}

// ListByPhoto godoc
// @Summary List a photo's comments, newest first
// @Tags comments
// @Produce json
// @Param photoId path int true "Photo ID"
// @Success 200 {array} model.Comment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /photos/{photoId}/comments [get]
func (h *CommentHandler) ListByPhoto(c echo.Context) error {
	photoID, err := uintParam(c, "photoId")
	if err != nil {
		return err
	}

	comments, err := h.commentService.ListByPhoto(c.Request().Context(), photoID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// Delete godoc
// @Summary Delete a comment (author only)
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /photos/comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	claims, err := identity(c)
	if err != nil {
		return err
	}

	commentID, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.commentService.Delete(c.Request().Context(), commentID, claims.UserID); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "deleted"})
}
