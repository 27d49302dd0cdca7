package server

import (
	"net/http"

	"civictrack/backend/db"
	"civictrack/backend/middleware"
	"civictrack/backend/server/api"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

func AssignWorker(c *gin.Context) {
	var args = &api.AssignArgs{}
	if err := c.BindJSON(args); err != nil {
		log.Errorf("Failed to get the argument in /reports/assign call: %v", err)
		return
	}
	if args.Version != "2.0" {
		c.String(http.StatusNotAcceptable, "Bad API version, expecting 2.0.") // 406
		return
	}
	if args.WorkerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "worker_id is required"})
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

	resp, err := db.AssignWorker(dbc, actor, args)
	if err != nil {
		respondTransitionError(c, EndPointAssignWorker, err)
		return
	}
	publishTransition(&resp.Event)
	c.JSON(http.StatusOK, resp)
}

func AutoAssignWorker(c *gin.Context) {
	var args = &api.AutoAssignArgs{}
	if err := c.BindJSON(args); err != nil {
		log.Errorf("Failed to get the argument in /reports/auto_assign call: %v", err)
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

	resp, err := db.AutoAssignWorker(dbc, actor, args)
	if err != nil {
		respondTransitionError(c, EndPointAutoAssignWorker, err)
		return
	}
	publishTransition(&resp.Event)
	c.JSON(http.StatusOK, resp)
}
