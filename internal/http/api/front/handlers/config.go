package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/settings"
)

// publicConfigResponse is the response payload for public config.
type publicConfigResponse struct {
	SiteName          string `json:"site_name"`
	DonationMinAmount int64  `json:"donation_min_amount"`
}

// GetPublicConfig returns the runtime settings the storefront displays.
func GetPublicConfig(c *gin.Context) {
	c.JSON(http.StatusOK, publicConfigResponse{
		SiteName:          settings.SiteName(),
		DonationMinAmount: settings.DonationMinAmount(),
	})
}
