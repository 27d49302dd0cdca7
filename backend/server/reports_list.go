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

func GetReports(c *gin.Context) {
	var q api.ListReportsQuery
	if err := c.BindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad query"})
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	// Scope the listing to what the caller may see. Admins see
	// everything; departments see their queue; workers their own tasks
	// via the department scope; citizens their own submissions.
	switch actor.Role {
	case lifecycle.RoleDepartment, lifecycle.RoleWorker:
		q.Department = actor.DepartmentID
	case lifecycle.RoleCitizen:
		q.Citizen = actor.ID
	}

	dbc, err := getServerDB()
	if err != nil {
		log.Errorf("Error connecting to DB: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	resp, err := db.ListReports(dbc, &q)
	if err != nil {
		log.Errorf("Failed to list reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func ReadReport(c *gin.Context) {
	var q api.ReadReportArgs
	if err := c.BindQuery(&q); err != nil || q.Seq == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "seq is required"})
		return
	}
	dbc, err := getServerDB()
	if err != nil {
		log.Errorf("Error connecting to DB: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	view, err := db.GetReport(dbc, q.Seq)
	if err != nil {
		respondTransitionError(c, EndPointReport, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
