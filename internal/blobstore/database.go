package blobstore

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/ocevave/ocevave/internal/models"
	"gorm.io/gorm"
)

// DBStore keeps blobs as base64 text in the images table. Keys are reduced
// to their final path segment, which is the public filename.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore constructs a DBStore.
func NewDBStore(conn *gorm.DB) *DBStore {
	return &DBStore{db: conn}
}

func filenameFromKey(key string) string {
	if idx := strings.LastIndex(key, "/"); idx >= 0 {
		return key[idx+1:]
	}
	return key
}

// Put stores data under the filename of key.
func (s *DBStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	image := models.Image{
		Filename:    filenameFromKey(key),
		Data:        base64.StdEncoding.EncodeToString(data),
		ContentType: contentType,
	}
	if errCreate := s.db.WithContext(ctx).Create(&image).Error; errCreate != nil {
		return fmt.Errorf("blobstore: insert image: %w", errCreate)
	}
	return nil
}

// Get loads and decodes the image stored under the filename of key.
func (s *DBStore) Get(ctx context.Context, key string) (*Object, error) {
	var image models.Image
	errFind := s.db.WithContext(ctx).
		Select("data", "content_type").
		Where("filename = ?", filenameFromKey(key)).
		First(&image).Error
	if errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("blobstore: find image: %w", errFind)
	}
	data, errDecode := base64.StdEncoding.DecodeString(image.Data)
	if errDecode != nil {
		return nil, fmt.Errorf("blobstore: decode image: %w", errDecode)
	}
	return &Object{Data: data, ContentType: image.ContentType}, nil
}
