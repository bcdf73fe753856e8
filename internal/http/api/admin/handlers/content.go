package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/content"
	"github.com/ocevave/ocevave/internal/http/respond"
)

// ContentHandler edits events, activities, articles and company info.
type ContentHandler struct {
	content *content.Service
}

// NewContentHandler constructs a ContentHandler.
func NewContentHandler(svc *content.Service) *ContentHandler {
	return &ContentHandler{content: svc}
}

func (h *ContentHandler) createPost(c *gin.Context, create func(*gin.Context, content.PostInput) (uint64, error), failure string) {
	var body content.PostInput
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		respond.BadJSON(c)
		return
	}
	id, errCreate := create(c, body)
	if errCreate != nil {
		respond.Error(c, errCreate, failure)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func (h *ContentHandler) deleteByID(c *gin.Context, remove func(*gin.Context, uint64) error, failure string) {
	id, ok := respond.IDParam(c, "id")
	if !ok {
		return
	}
	if errDelete := remove(c, id); errDelete != nil {
		respond.Error(c, errDelete, failure)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CreateEvent adds an event.
func (h *ContentHandler) CreateEvent(c *gin.Context) {
	h.createPost(c, func(c *gin.Context, in content.PostInput) (uint64, error) {
		return h.content.CreateEvent(c.Request.Context(), in)
	}, "Failed to create event")
}

// DeleteEvent removes an event.
func (h *ContentHandler) DeleteEvent(c *gin.Context) {
	h.deleteByID(c, func(c *gin.Context, id uint64) error {
		return h.content.DeleteEvent(c.Request.Context(), id)
	}, "Failed to delete event")
}

// CreateActivity adds an activity.
func (h *ContentHandler) CreateActivity(c *gin.Context) {
	h.createPost(c, func(c *gin.Context, in content.PostInput) (uint64, error) {
		return h.content.CreateActivity(c.Request.Context(), in)
	}, "Failed to create activity")
}

// DeleteActivity removes an activity.
func (h *ContentHandler) DeleteActivity(c *gin.Context) {
	h.deleteByID(c, func(c *gin.Context, id uint64) error {
		return h.content.DeleteActivity(c.Request.Context(), id)
	}, "Failed to delete activity")
}

// CreateArticle adds a crisis article.
func (h *ContentHandler) CreateArticle(c *gin.Context) {
	var body content.ArticleInput
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		respond.BadJSON(c)
		return
	}
	id, errCreate := h.content.CreateArticle(c.Request.Context(), body)
	if errCreate != nil {
		respond.Error(c, errCreate, "Failed to create article")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// DeleteArticle removes a crisis article.
func (h *ContentHandler) DeleteArticle(c *gin.Context) {
	h.deleteByID(c, func(c *gin.Context, id uint64) error {
		return h.content.DeleteArticle(c.Request.Context(), id)
	}, "Failed to delete article")
}

// UpdateCompanyInfo replaces one company info section.
func (h *ContentHandler) UpdateCompanyInfo(c *gin.Context) {
	var body content.SectionInput
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		respond.BadJSON(c)
		return
	}
	if errUpdate := h.content.UpdateCompanyInfo(c.Request.Context(), c.Param("section"), body); errUpdate != nil {
		respond.Error(c, errUpdate, "Failed to update company info")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
