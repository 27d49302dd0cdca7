package server

import (
	"net/http"

	"civictrack/backend/db"
	"civictrack/backend/lifecycle"
	"civictrack/backend/middleware"
	"civictrack/backend/server/api"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

func GetWorkers(c *gin.Context) {
	var q api.WorkersQuery
	if err := c.BindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad query"})
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	// Department actors only see their own roster.
	if actor.Role == lifecycle.RoleDepartment {
		q.Department = actor.DepartmentID
	}

	dbc, err := getServerDB()
	if err != nil {
		log.Errorf("Error connecting to DB: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	resp, err := db.ListWorkers(dbc, &q)
	if err != nil {
		log.Errorf("Failed to list workers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func UpdateWorkerStatus(c *gin.Context) {
	var args = &api.WorkerStatusArgs{}
	if err := c.BindJSON(args); err != nil {
		log.Errorf("Failed to get the argument in /workers/status call: %v", err)
		return
	}
	if args.Version != "2.0" {
		c.String(http.StatusNotAcceptable, "Bad API version, expecting 2.0.") // 406
		return
	}
	if !args.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown worker status"})
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	// Workers set their own status; admins and departments set anyone's.
	workerID := args.WorkerID
	if actor.Role == lifecycle.RoleWorker {
		workerID = actor.ID
	} else if actor.Role == lifecycle.RoleCitizen {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
		return
	}
	if workerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "worker_id is required"})
		return
	}

	dbc, err := getServerDB()
	if err != nil {
		log.Errorf("Error connecting to DB: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	if err := db.UpdateWorkerStatus(dbc, workerID, args.Status); err != nil {
		respondTransitionError(c, EndPointWorkerStatus, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"worker_id": workerID, "status": args.Status})
}
