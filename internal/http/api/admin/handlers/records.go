package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/accounts"
	"github.com/ocevave/ocevave/internal/http/respond"
	"github.com/ocevave/ocevave/internal/records"
)

// RecordHandler lists reservations, donations and members.
type RecordHandler struct {
	records  *records.Service
	accounts *accounts.Service
}

// NewRecordHandler constructs a RecordHandler.
func NewRecordHandler(recordsSvc *records.Service, accountsSvc *accounts.Service) *RecordHandler {
	return &RecordHandler{records: recordsSvc, accounts: accountsSvc}
}

// Reservations returns reservations joined with their event titles.
func (h *RecordHandler) Reservations(c *gin.Context) {
	list, errList := h.records.ListReservations(c.Request.Context())
	if errList != nil {
		respond.Error(c, errList, "Failed to fetch reservations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": list})
}

// Donations returns every donation pledge.
func (h *RecordHandler) Donations(c *gin.Context) {
	list, errList := h.records.ListDonations(c.Request.Context())
	if errList != nil {
		respond.Error(c, errList, "Failed to fetch donations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"donations": list})
}

// Members returns registered members without credential columns.
func (h *RecordHandler) Members(c *gin.Context) {
	list, errList := h.accounts.ListMembers(c.Request.Context())
	if errList != nil {
		respond.Error(c, errList, "Failed to fetch members")
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": list})
}
