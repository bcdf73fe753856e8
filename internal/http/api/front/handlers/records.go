package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/http/respond"
	"github.com/ocevave/ocevave/internal/records"
)

// RecordHandler accepts event reservations and donation pledges.
type RecordHandler struct {
	records *records.Service
}

// NewRecordHandler constructs a RecordHandler.
func NewRecordHandler(svc *records.Service) *RecordHandler {
	return &RecordHandler{records: svc}
}

// Reserve books seats for an event.
func (h *RecordHandler) Reserve(c *gin.Context) {
	var body records.ReservationInput
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		respond.BadJSON(c)
		return
	}
	if _, errReserve := h.records.Reserve(c.Request.Context(), getUserID(c), body); errReserve != nil {
		respond.Error(c, errReserve, "Reservation failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reservation completed"})
}

// Donate records a monthly donation pledge.
func (h *RecordHandler) Donate(c *gin.Context) {
	var body records.DonationInput
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		respond.BadJSON(c)
		return
	}
	if _, errDonate := h.records.Donate(c.Request.Context(), body); errDonate != nil {
		respond.Error(c, errDonate, "Donation failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Your monthly donation has been registered. Thank you!"})
}
