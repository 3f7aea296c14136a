package main

import (
	"log"
	"net/http"

	_ "photogallery/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"photogallery/internal/auth"
	"photogallery/internal/cache"
	"photogallery/internal/config"
	"photogallery/internal/db"
	"photogallery/internal/handler"
	"photogallery/internal/model"
	"photogallery/internal/repository"
	"photogallery/internal/router"
	"photogallery/internal/service"
	"photogallery/internal/storage"
)

// @title Photo Gallery API
// @version 1.0
// @description Photo sharing gallery API with uploads, favorites, comments and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Photo{},
		&model.Comment{},
		&model.Favorite{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	blobStore, err := storage.New(cfg)
	if err != nil {
		log.Fatalf("blob storage init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	photoRepo := repository.NewPhotoRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	photoService := service.NewPhotoService(photoRepo, commentRepo, blobStore, cacheClient)
	commentService := service.NewCommentService(commentRepo, photoRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, photoRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	photoHandler := handler.NewPhotoHandler(photoService)
	commentHandler := handler.NewCommentHandler(commentService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		photoHandler,
		commentHandler,
		favoriteHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
