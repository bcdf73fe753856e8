package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/apperr"
	"github.com/ocevave/ocevave/internal/blobstore"
	log "github.com/sirupsen/logrus"
)

const imageCacheControl = "public, max-age=31536000"

// ImageHandler serves uploaded images.
type ImageHandler struct {
	images *blobstore.Images
}

// NewImageHandler constructs an ImageHandler.
func NewImageHandler(images *blobstore.Images) *ImageHandler {
	return &ImageHandler{images: images}
}

// Serve writes the image bytes with a long-lived cache header.
func (h *ImageHandler) Serve(c *gin.Context) {
	obj, errOpen := h.images.Open(c.Request.Context(), c.Param("filename"))
	if errOpen != nil {
		if apperr.Is(errOpen, apperr.KindNotFound) {
			c.String(http.StatusNotFound, "Image not found")
			return
		}
		log.WithError(errOpen).Error("serve image failed")
		c.String(http.StatusInternalServerError, "Error retrieving image")
		return
	}
	c.Header("Cache-Control", imageCacheControl)
	c.Data(http.StatusOK, obj.ContentType, obj.Data)
}
