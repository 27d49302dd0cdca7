package server

import (
	"net/http"

	"civictrack/backend/db"
	"civictrack/backend/map_aggr"
	"civictrack/backend/server/api"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

func GetMap(c *gin.Context) {
	var args = &api.MapArgs{}
	if err := c.BindJSON(args); err != nil {
		log.Errorf("Failed to get the argument in /get_map call: %v", err)
		return
	}
	if args.Version != "2.0" {
		c.String(http.StatusNotAcceptable, "Bad API version, expecting 2.0.") // 406
		return
	}

	dbc, err := getServerDB()
	if err != nil {
		log.Errorf("Error connecting to DB: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	// Extend the selection rectangle so pins just outside the viewport
	// render when the user pans.
	vp := args.VPort
	latSize := vp.LatMax - vp.LatMin
	lonSize := vp.LonMax - vp.LonMin
	vp.LatMin -= latSize / 2
	vp.LatMax += latSize / 2
	vp.LonMin -= lonSize / 2
	vp.LonMax += lonSize / 2

	pins, err := db.GetReportsInViewport(dbc, args.Id, vp)
	if err != nil {
		log.Errorf("Failed to query viewport reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	aggr := map_aggr.NewMapAggregatorS2(&args.VPort, &args.Center)
	for _, pin := range pins {
		aggr.AddReport(pin)
	}
	c.JSON(http.StatusOK, aggr.ToArray())
}
