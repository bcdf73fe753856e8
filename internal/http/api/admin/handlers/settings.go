package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/http/respond"
	"github.com/ocevave/ocevave/internal/settings"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SettingsHandler reads and writes DB-backed runtime settings.
type SettingsHandler struct {
	db *gorm.DB
}

// NewSettingsHandler constructs a SettingsHandler.
func NewSettingsHandler(conn *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: conn}
}

// List returns every stored setting.
func (h *SettingsHandler) List(c *gin.Context) {
	rows, errList := settings.List(c.Request.Context(), h.db)
	if errList != nil {
		log.WithError(errList).Error("list settings failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": rows, "updated_at": settings.DBConfigUpdatedAt()})
}

// updateSettingRequest is the body of a setting update.
type updateSettingRequest struct {
	Value json.RawMessage `json:"value"`
}

// Update writes one setting and refreshes the in-memory snapshot.
func (h *SettingsHandler) Update(c *gin.Context) {
	var body updateSettingRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil || len(body.Value) == 0 {
		respond.BadJSON(c)
		return
	}
	key := c.Param("key")
	if errUpsert := settings.Upsert(c.Request.Context(), h.db, key, body.Value); errUpsert != nil {
		if errors.Is(errUpsert, settings.ErrUnknownKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown setting"})
			return
		}
		log.WithError(errUpsert).WithField("key", key).Error("update setting failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update setting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
