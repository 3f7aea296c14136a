package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"photogallery/internal/errors"
	"photogallery/internal/middleware"
	"photogallery/internal/model"
	"photogallery/internal/service"
)

// PhotoHandler handles photo endpoints.
type PhotoHandler struct {
	photoService service.PhotoService
}

// NewPhotoHandler creates a new photo handler.
func NewPhotoHandler(photoService service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// PublishRequest represents a publish-toggle request.
type PublishRequest struct {
	IsPublished *bool `json:"is_published" validate:"required"`
}

// DetailsResponse represents a combined photo and comments view.
type DetailsResponse struct {
	Photo    *model.Photo    `json:"photo"`
	Comments []model.Comment `json:"comments"`
}

// Upload godoc
// @Summary Upload a photo
// @Tags photos
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Image file"
// @Param title formData string false "Photo title"
// @Param is_published formData bool false "Publish immediately"
// @Success 201 {object} model.Photo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /photos/upload [post]
func (h *PhotoHandler) Upload(c echo.Context) error {
	claims, err := identity(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return serviceError(errors.ErrNoFile)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return serviceError(err)
	}
	defer file.Close()

	title := c.FormValue("title")
	// Anything but the literal "true" leaves the photo unpublished.
	isPublished := c.FormValue("is_published") == "true"

	photo, err := h.photoService.Upload(
		c.Request().Context(),
		claims.UserID,
		title,
		isPublished,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, photo)
}

// List godoc
// @Summary List published photos, newest first
// @Tags photos
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(9)
// @Success 200 {array} model.Photo
// @Failure 500 {object} errors.ErrorResponse
// @Router /photos [get]
func (h *PhotoHandler) List(c echo.Context) error {
	page, limit := pageQuery(c)
	photos, err := h.photoService.ListPublished(c.Request().Context(), page, limit)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, photos)
}

// ListMine godoc
// @Summary List the caller's own photos, all publish states
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(9)
// @Success 200 {array} model.Photo
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /photos/my [get]
func (h *PhotoHandler) ListMine(c echo.Context) error {
	claims, err := identity(c)
	if err != nil {
		return err
	}

	page, limit := pageQuery(c)
	photos, err := h.photoService.ListOwn(c.Request().Context(), claims.UserID, page, limit)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, photos)
}

// ListByUser godoc
// @Summary List a user's published photos
// @Tags photos
// @Produce json
// @Param id path int true "User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(9)
// @Success 200 {array} model.Photo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /photos/user/{id} [get]
func (h *PhotoHandler) ListByUser(c echo.Context) error {
	userID, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	page, limit := pageQuery(c)
	photos, err := h.photoService.ListByUser(c.Request().Context(), userID, page, limit)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, photos)
}

// Details godoc
// @Summary Get a photo with its comments
// @Tags photos
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} DetailsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /photos/{id}/details [get]
func (h *PhotoHandler) Details(c echo.Context) error {
	photoID, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	var requesterID *uint
	if claims := middleware.IdentityFromContext(c); claims != nil {
		requesterID = &claims.UserID
	}

	photo, comments, err := h.photoService.Details(c.Request().Context(), photoID, requesterID)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, DetailsResponse{Photo: photo, Comments: comments})
}

// Publish godoc
// @Summary Set a photo's publish flag (owner only)
// @Tags photos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Param request body PublishRequest true "Publish flag"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /photos/{id}/publish [patch]
func (h *PhotoHandler) Publish(c echo.Context) error {
	claims, err := identity(c)
	if err != nil {
		return err
	}

	photoID, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	var req PublishRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.photoService.SetPublished(c.Request().Context(), photoID, claims.UserID, *req.IsPublished); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "updated"})
}

// Delete godoc
// @Summary Delete a photo (owner only)
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /photos/{id} [delete]
func (h *PhotoHandler) Delete(c echo.Context) error {
	claims, err := identity(c)
	if err != nil {
		return err
	}

	photoID, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.photoService.Delete(c.Request().Context(), photoID, claims.UserID); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "deleted"})
}
