package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"photogallery/internal/auth"
	"photogallery/internal/config"
	"photogallery/internal/handler"
	"photogallery/internal/middleware"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	photoHandler *handler.PhotoHandler,
	commentHandler *handler.CommentHandler,
	favoriteHandler *handler.FavoriteHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: cfg.CORSOrigin != "*",
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Locally stored blobs are served straight from the upload directory.
	if cfg.StorageDriver == "local" {
		e.Static("/uploads", cfg.UploadDir)
	}

	guarded := middleware.RequireIdentity(jwtService)
	optional := middleware.OptionalIdentity(jwtService)

	api := e.Group("/api")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	photos := api.Group("/photos")

	// Public routes
	photos.GET("", photoHandler.List)
	photos.GET("/user/:id", photoHandler.ListByUser)
	photos.GET("/:id/details", photoHandler.Details, optional)
	photos.GET("/:photoId/comments", commentHandler.ListByPhoto)

	// Guarded routes
	photos.POST("/upload", photoHandler.Upload, guarded)
	photos.GET("/my", photoHandler.ListMine, guarded)
	photos.PATCH("/:id/publish", photoHandler.Publish, guarded)
	photos.DELETE("/:id", photoHandler.Delete, guarded)
	photos.POST("/:photoId/favorite", favoriteHandler.Add, guarded)
	photos.DELETE("/:photoId/favorite", favoriteHandler.Remove, guarded)
	photos.GET("/favorites", favoriteHandler.List, guarded)
	photos.POST("/:photoId/comments", commentHandler.Add, guarded)
	photos.DELETE("/comments/:id", commentHandler.Delete, guarded)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
