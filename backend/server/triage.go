package server

import (
	"net/http"

	"civictrack/backend/db"
	"civictrack/backend/middleware"
	"civictrack/backend/server/api"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

func ApproveReport(c *gin.Context) {
	var args = &api.ApproveArgs{}
	if err := c.BindJSON(args); err != nil {
		log.Errorf("Failed to get the argument in /reports/approve call: %v", err)
		return
	}
	if args.Version != "2.0" {
		c.String(http.StatusNotAcceptable, "Bad API version, expecting 2.0.") // 406
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	dbc, err := getServerDB()
	if err != nil {
		log.Errorf("Error connecting to DB: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	resp, err := db.ApproveReport(dbc, actor, args)
	if err != nil {
		respondTransitionError(c, EndPointApproveReport, err)
		return
	}
	publishTransition(&resp.Event)
	c.JSON(http.StatusOK, resp)
}

func RejectReport(c *gin.Context) {
	var args = &api.RejectArgs{}
	if err := c.BindJSON(args); err != nil {
		log.Errorf("Failed to get the argument in /reports/reject call: %v", err)
		return
	}
	if args.Version != "2.0" {
		c.String(http.StatusNotAcceptable, "Bad API version, expecting 2.0.") // 406
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	dbc, err := getServerDB()
	if err != nil {
		log.Errorf("Error connecting to DB: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	resp, err := db.RejectReport(dbc, actor, args)
	if err != nil {
		respondTransitionError(c, EndPointRejectReport, err)
		return
	}
	publishTransition(&resp.Event)
	c.JSON(http.StatusOK, resp)
}
