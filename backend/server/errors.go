package server

import (
	"errors"
	"net/http"

	"civictrack/backend/lifecycle"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// transitionStatus maps the rejection taxonomy to HTTP codes. Conflicts
// are 409 and retryable; rule violations are 409 but final; missing
// entities are 404; malformed preconditions are 400.
func transitionStatus(err error) int {
	switch {
	case errors.Is(err, lifecycle.ErrNotFound),
		errors.Is(err, lifecycle.ErrDepartmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, lifecycle.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, lifecycle.ErrDepartmentRequired):
		return http.StatusBadRequest
	case errors.Is(err, lifecycle.ErrWorkerDepartmentMismatch),
		errors.Is(err, lifecycle.ErrWorkerUnavailable),
		errors.Is(err, lifecycle.ErrNoAvailableWorker):
		return http.StatusConflict
	case lifecycle.IsInvalidTransition(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondTransitionError(c *gin.Context, endpoint string, err error) {
	status := transitionStatus(err)
	if status == http.StatusInternalServerError {
		log.Errorf("Internal error in %s: %v", endpoint, err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	log.Warnf("Rejected %s: %v", endpoint, err)
	c.JSON(status, gin.H{"error": err.Error()})
}
