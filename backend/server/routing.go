package server

import (
	"net/http"

	"civictrack/backend/db"
	"civictrack/backend/server/api"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

func SuggestDepartment(c *gin.Context) {
	var q api.SuggestQuery
	if err := c.BindQuery(&q); err != nil || q.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}

	departmentID, matched := advisor.Suggest(q.Category)
	c.JSON(http.StatusOK, api.SuggestResponse{
		Category:     q.Category,
		DepartmentID: departmentID,
		Matched:      matched,
	})
}

func GetDepartments(c *gin.Context) {
	dbc, err := getServerDB()
	if err != nil {
		log.Errorf("Error connecting to DB: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	resp, err := db.ListDepartments(dbc)
	if err != nil {
		log.Errorf("Failed to list departments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
