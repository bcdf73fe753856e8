package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/blobstore"
	"github.com/ocevave/ocevave/internal/http/respond"
)

// ImageHandler accepts image uploads.
type ImageHandler struct {
	images *blobstore.Images
}

// NewImageHandler constructs an ImageHandler.
func NewImageHandler(images *blobstore.Images) *ImageHandler {
	return &ImageHandler{images: images}
}

// Upload stores the multipart field "image" and returns its public URL.
func (h *ImageHandler) Upload(c *gin.Context) {
	limit := h.images.MaxUploadBytes()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+(1<<20))

	fileHeader, errForm := c.FormFile("image")
	if errForm != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(errForm, &tooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is too large"})
			return
		}
		respond.Error(c, blobstore.ErrNoImage, "Failed to upload image")
		return
	}
	if fileHeader.Size > limit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image is too large"})
		return
	}
	file, errOpen := fileHeader.Open()
	if errOpen != nil {
		respond.Error(c, errOpen, "Failed to upload image")
		return
	}
	defer func() { _ = file.Close() }()

	data, errRead := io.ReadAll(io.LimitReader(file, limit+1))
	if errRead != nil {
		respond.Error(c, errRead, "Failed to upload image")
		return
	}
	url, errUpload := h.images.Upload(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if errUpload != nil {
		respond.Error(c, errUpload, "Failed to upload image")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}
