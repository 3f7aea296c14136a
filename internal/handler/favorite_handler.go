package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"photogallery/internal/service"
)

// FavoriteHandler handles favorite endpoints.
type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// Add godoc
// @Summary Favorite a photo (idempotent)
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param photoId path int true "Photo ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /photos/{photoId}/favorite [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	claims, err := identity(c)
	if err != nil {
		return err
	}

	photoID, err := uintParam(c, "photoId")
	if err != nil {
		return err
	}

	if err := h.favoriteService.Add(c.Request().Context(), claims.UserID, photoID); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "favorited"})
}

// Remove godoc
// @Summary Unfavorite a photo (idempotent)
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param photoId path int true "Photo ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /photos/{photoId}/favorite [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	claims, err := identity(c)
	if err != nil {
		return err
	}

	photoID, err := uintParam(c, "photoId")
	if err != nil {
		return err
	}

	if err := h.favoriteService.Remove(c.Request().Context(), claims.UserID, photoID); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "removed"})
}

// List godoc
// @Summary List the caller's favorited photos
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Photo
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /photos/favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	claims, err := identity(c)
	if err != nil {
		return err
	}

	photos, err := h.favoriteService.List(c.Request().Context(), claims.UserID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, photos)
}
