package blobstore

import (
	"context"
	"errors"
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ocevave/ocevave/internal/apperr"
	"github.com/ocevave/ocevave/internal/security"
	log "github.com/sirupsen/logrus"
)

// Upload size limits.
const (
	MaxObjectStoreBytes = 50 << 20
	MaxDatabaseBytes    = 10 << 20
)

const (
	imageKeyPrefix   = "images/"
	imageURLPrefix   = "/api/images/"
	defaultExtension = "jpg"
)

var (
	extensionPattern = regexp.MustCompile(`^[a-z0-9]{1,10}$`)
	filenamePattern  = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
)

// Upload failures.
var (
	ErrNoImage      = apperr.Validation("No image file provided")
	ErrNotAnImage   = apperr.Validation("Only image files can be uploaded")
	ErrImageMissing = apperr.NotFound("Image not found")
)

// Images stores uploads in the primary store when present and falls back
// to the database store.
type Images struct {
	primary  Store
	fallback Store
	now      func() time.Time
}

// NewImages constructs Images. primary may be nil.
func NewImages(primary Store, fallback Store) *Images {
	return &Images{primary: primary, fallback: fallback, now: time.Now}
}

// MaxUploadBytes is the largest accepted upload.
func (i *Images) MaxUploadBytes() int64 {
	if i.primary != nil {
		return MaxObjectStoreBytes
	}
	return MaxDatabaseBytes
}

// Upload stores an image and returns its public URL. Both the declared type
// and the sniffed type must be images; the sniffed type is stored.
func (i *Images) Upload(ctx context.Context, originalName, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrNoImage
	}
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/") {
		return "", ErrNotAnImage
	}
	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return "", ErrNotAnImage
	}
	contentType = detected.String()
	if limit := i.MaxUploadBytes(); int64(len(data)) > limit {
		return "", apperr.Validation(fmt.Sprintf("Image must be %dMB or smaller (got %.2fMB)", limit>>20, float64(len(data))/(1<<20)))
	}

	filename, errName := i.newFilename(originalName)
	if errName != nil {
		return "", apperr.Internal("Failed to upload image", errName)
	}
	key := imageKeyPrefix + filename

	if i.primary != nil {
		errPut := i.primary.Put(ctx, key, data, contentType)
		if errPut == nil {
			return imageURLPrefix + filename, nil
		}
		log.WithError(errPut).WithField("key", key).Warn("object store upload failed, falling back to database")
	}
	if errPut := i.fallback.Put(ctx, key, data, contentType); errPut != nil {
		return "", apperr.Internal("Failed to store image", errPut)
	}
	return imageURLPrefix + filename, nil
}

// Open returns the image stored under filename, trying the primary store
// before the database.
func (i *Images) Open(ctx context.Context, filename string) (*Object, error) {
	if !filenamePattern.MatchString(filename) || strings.Contains(filename, "..") {
		return nil, ErrImageMissing
	}
	key := imageKeyPrefix + filename
	if i.primary != nil {
		obj, errGet := i.primary.Get(ctx, key)
		if errGet == nil {
			return withDefaultType(obj), nil
		}
		if !errors.Is(errGet, ErrNotFound) {
			log.WithError(errGet).WithField("key", key).Warn("object store read failed, trying database")
		}
	}
	obj, errGet := i.fallback.Get(ctx, key)
	if errGet != nil {
		if errors.Is(errGet, ErrNotFound) {
			return nil, ErrImageMissing
		}
		return nil, apperr.Internal("Error retrieving image", errGet)
	}
	return withDefaultType(obj), nil
}

func withDefaultType(obj *Object) *Object {
	if obj.ContentType == "" {
		obj.ContentType = "image/jpeg"
	}
	return obj
}

// newFilename returns <unixmillis>-<random6>.<ext>.
func (i *Images) newFilename(originalName string) (string, error) {
	suffix, errRand := security.RandomLower(6)
	if errRand != nil {
		return "", errRand
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(originalName), "."))
	if !extensionPattern.MatchString(ext) {
		ext = defaultExtension
	}
	return strconv.FormatInt(i.now().UnixMilli(), 10) + "-" + suffix + "." + ext, nil
}
