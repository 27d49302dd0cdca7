// Package map_aggr collapses report pins into S2 cell clusters sized
// for the requested viewport, so the map stays readable at any zoom.
package map_aggr

import (
	"civictrack/backend/server/api"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

type aggrUnit struct {
	cnt  int64
	orig api.MapResult
}

type MapAggregatorS2 struct {
	level int
	aggrs map[s2.CellID]*aggrUnit
}

const (
	expectedCells = 160
	minLevel      = 6
	maxLevel      = 16
)

func cellBaseLevel(vp *api.ViewPort, center *api.Point) int {
	minLL := s2.LatLngFromDegrees(vp.LatMin, vp.LonMin)
	maxLL := s2.LatLngFromDegrees(vp.LatMax, vp.LonMax)

	rect := s2.Rect{
		Lat: r1.Interval{
			Lo: minLL.Lat.Radians(),
			Hi: maxLL.Lat.Radians()},
		Lng: s1.Interval{
			Lo: minLL.Lng.Radians(),
			Hi: maxLL.Lng.Radians()},
	}

	vpArea := rect.Area()

	centerLL := s2.CellIDFromLatLng(s2.LatLngFromDegrees(center.Lat, center.Lon))

	for lv := maxLevel; lv >= minLevel; lv-- {
		cc := s2.CellFromCellID(centerLL.Parent(lv))
		if vpArea/cc.ApproxArea() < expectedCells {
			return lv
		}
	}
	return minLevel // Large enough level
}

func NewMapAggregatorS2(vp *api.ViewPort, center *api.Point) MapAggregatorS2 {
	lv := cellBaseLevel(vp, center)
	return MapAggregatorS2{
		level: lv,
		aggrs: make(map[s2.CellID]*aggrUnit),
	}
}

// AddReport buckets one pin into its containing cell at the chosen
// level.
func (a *MapAggregatorS2) AddReport(r api.MapResult) {
	pc := s2.CellIDFromLatLng(s2.LatLngFromDegrees(r.Latitude, r.Longitude))
	parent := pc.Parent(a.level)
	if _, ok := a.aggrs[parent]; !ok {
		a.aggrs[parent] = &aggrUnit{}
	}
	a.aggrs[parent].cnt += 1
	a.aggrs[parent].orig = r
}

// ToArray flattens the buckets. A singleton keeps its exact location
// and report identity; a cluster reports the cell center and a count.
func (a *MapAggregatorS2) ToArray() []api.MapResult {
	r := make([]api.MapResult, 0, len(a.aggrs))
	for c, unit := range a.aggrs {
		if unit.cnt == 1 {
			single := unit.orig
			single.Count = 1
			r = append(r, single)
			continue
		}
		ll := c.LatLng()
		r = append(r, api.MapResult{
			Latitude:  ll.Lat.Degrees(),
			Longitude: ll.Lng.Degrees(),
			Count:     unit.cnt,
		})
	}
	return r
}
