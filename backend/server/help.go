package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Help(c *gin.Context) {
	c.String(http.StatusOK, `
	CivicTrack API:
	Civic issue reporting and resolution tracking, version 2.0.
	`)
}
