package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/content"
	"github.com/ocevave/ocevave/internal/http/respond"
)

// ContentHandler serves events, activities, articles and company info.
type ContentHandler struct {
	content *content.Service
}

// NewContentHandler constructs a ContentHandler.
func NewContentHandler(svc *content.Service) *ContentHandler {
	return &ContentHandler{content: svc}
}

// ListEvents returns all events.
func (h *ContentHandler) ListEvents(c *gin.Context) {
	events, errList := h.content.ListEvents(c.Request.Context())
	if errList != nil {
		respond.Error(c, errList, "Failed to fetch events")
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// GetEvent returns one event.
func (h *ContentHandler) GetEvent(c *gin.Context) {
	id, ok := respond.IDParam(c, "id")
	if !ok {
		return
	}
	event, errGet := h.content.GetEvent(c.Request.Context(), id)
	if errGet != nil {
		respond.Error(c, errGet, "Failed to fetch event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event})
}

// ListActivities returns all activities.
func (h *ContentHandler) ListActivities(c *gin.Context) {
	activities, errList := h.content.ListActivities(c.Request.Context())
	if errList != nil {
		respond.Error(c, errList, "Failed to fetch activities")
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// GetActivity returns one activity.
func (h *ContentHandler) GetActivity(c *gin.Context) {
	id, ok := respond.IDParam(c, "id")
	if !ok {
		return
	}
	activity, errGet := h.content.GetActivity(c.Request.Context(), id)
	if errGet != nil {
		respond.Error(c, errGet, "Failed to fetch activity")
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

// ListArticles returns crisis articles.
func (h *ContentHandler) ListArticles(c *gin.Context) {
	articles, errList := h.content.ListArticles(c.Request.Context())
	if errList != nil {
		respond.Error(c, errList, "Failed to fetch articles")
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// ListCompanyInfo returns every company info section.
func (h *ContentHandler) ListCompanyInfo(c *gin.Context) {
	info, errList := h.content.ListCompanyInfo(c.Request.Context())
	if errList != nil {
		respond.Error(c, errList, "Failed to fetch company info")
		return
	}
	c.JSON(http.StatusOK, gin.H{"info": info})
}
