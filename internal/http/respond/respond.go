// Package respond writes JSON error responses for classified failures.
package respond

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/apperr"
	log "github.com/sirupsen/logrus"
)

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as {"error": msg}. Unclassified and internal errors are
// logged and answered with fallback so no storage detail reaches the client.
func Error(c *gin.Context, err error, fallback string) {
	kind := apperr.KindOf(err)
	status := StatusFor(kind)
	msg := fallback
	if kind != apperr.KindInternal {
		var appErr *apperr.Error
		if errors.As(err, &appErr) && appErr.Message != "" {
			msg = appErr.Message
		}
	} else {
		log.WithError(err).WithFields(log.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error(fallback)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
