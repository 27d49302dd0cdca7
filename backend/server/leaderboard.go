package server

import (
	"net/http"

	"civictrack/backend/db"
	"civictrack/backend/leaderboard"
	"civictrack/backend/server/api"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

func GetLeaderboard(c *gin.Context) {
	var q api.LeaderboardQuery
	if err := c.BindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad query"})
		return
	}

	dbc, err := getServerDB()
	if err != nil {
		log.Errorf("Error connecting to DB: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	rows, err := db.UserPointRows(dbc)
	if err != nil {
		log.Errorf("Failed to read leaderboard rows: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	// n=0 with an explicit query param means the full ranking;
	// an absent param means the default page.
	n := q.N
	if c.Query("n") == "" {
		n = 50
	}
	entries := leaderboard.Top(leaderboard.Rank(rows), n)
	c.JSON(http.StatusOK, api.LeaderboardResponse{Entries: entries})
}

func GetStats(c *gin.Context) {
	var q api.StatsQuery
	if err := c.BindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad query"})
		return
	}
	dbc, err := getServerDB()
	if err != nil {
		log.Errorf("Error connecting to DB: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	resp, err := db.GetStats(dbc, q.Department)
	if err != nil {
		log.Errorf("Failed to read stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
