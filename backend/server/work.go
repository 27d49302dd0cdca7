package server

import (
	"net/http"

	"civictrack/backend/db"
	"civictrack/backend/middleware"
	"civictrack/backend/points"
	"civictrack/backend/server/api"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

func StartReport(c *gin.Context) {
	var args = &api.StartArgs{}
	if err := c.BindJSON(args); err != nil {
		log.Errorf("Failed to get the argument in /reports/start call: %v", err)
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

	resp, err := db.StartReport(dbc, actor, args)
	if err != nil {
		respondTransitionError(c, EndPointStartReport, err)
		return
	}
	publishTransition(&resp.Event)
	c.JSON(http.StatusOK, resp)
}

func CompleteReport(c *gin.Context) {
	var args = &api.CompleteArgs{}
	if err := c.BindJSON(args); err != nil {
		log.Errorf("Failed to get the argument in /reports/complete call: %v", err)
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

	resp, err := db.CompleteReport(dbc, actor, args)
	if err != nil {
		respondTransitionError(c, EndPointCompleteReport, err)
		return
	}
	// A retry against a completed report returns the same response but
	// triggers no side effects.
	if resp.Event.OldStatus != resp.Event.NewStatus {
		publishTransition(&resp.Event)
		go rewardTokens(resp.Report.CitizenID, points.CompletionBonus)
	}
	c.JSON(http.StatusOK, resp)
}
