// Package storage abstracts where uploaded photo bytes live. Both backends
// satisfy the same capability: persist a blob, hand back a retrievable URL.
package storage

import (
	"context"
	"fmt"
	"io"

	"photogallery/internal/config"
)

// BlobStore persists uploaded file bytes and returns the URL they will be
// served from.
type BlobStore interface {
	Store(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

// New selects a blob store implementation from configuration.
func New(cfg *config.Config) (BlobStore, error) {
	switch cfg.StorageDriver {
	case "local":
		return NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)
	case "cloudinary":
		if cfg.CloudinaryCloud == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
			return nil, fmt.Errorf("cloudinary storage requires CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET")
		}
		return NewCloudinaryStore(cfg.CloudinaryCloud, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
