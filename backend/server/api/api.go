package api

import (
	"time"

	"civictrack/backend/leaderboard"
	"civictrack/backend/lifecycle"
)

type BaseArgs struct {
	Version string `json:"version"` // Must be "2.0"
	Id      string `json:"id"`      // caller user id.
}

type ReportArgs struct {
	Version      string  `json:"version"` // Must be "2.0"
	Id           string  `json:"id"`      // citizen user id.
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	LocationText string  `json:"location_text"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	MediaURL     string  `json:"media_url"`
}

type ReportResp struct {
	Seq                 int64            `json:"seq"`
	Status              lifecycle.Status `json:"status"`
	SuggestedDepartment string           `json:"suggested_department,omitempty"`
	PointsAwarded       int              `json:"points_awarded"`
}

type HistoryEntry struct {
	Action    string           `json:"action"`
	ActorID   string           `json:"actor_id"`
	OldStatus lifecycle.Status `json:"old_status"`
	NewStatus lifecycle.Status `json:"new_status"`
	Notes     string           `json:"notes,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

type ReportView struct {
	Seq                 int64              `json:"seq"`
	CitizenID           string             `json:"citizen_id"`
	CitizenAlias        string             `json:"citizen_alias"`
	Category            string             `json:"category"`
	Description         string             `json:"description"`
	LocationText        string             `json:"location_text"`
	Latitude            float64            `json:"latitude"`
	Longitude           float64            `json:"longitude"`
	MediaURL            string             `json:"media_url,omitempty"`
	Status              lifecycle.Status   `json:"status"`
	Priority            lifecycle.Priority `json:"priority,omitempty"`
	DepartmentID        string             `json:"department_id,omitempty"`
	SuggestedDepartment string             `json:"suggested_department,omitempty"`
	AssignedWorkerID    string             `json:"assigned_worker_id,omitempty"`
	AdminNotes          string             `json:"admin_notes,omitempty"`
	WorkerNotes         string             `json:"worker_notes,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
	ApprovedAt          *time.Time         `json:"approved_at,omitempty"`
	CompletedAt         *time.Time         `json:"completed_at,omitempty"`
	History             []HistoryEntry     `json:"history,omitempty"`
}

type ReadReportArgs struct {
	Seq int64 `form:"seq"`
}

type ListReportsQuery struct {
	Status     string `form:"status"`
	Department string `form:"department"`
	Citizen    string `form:"citizen"`
	Category   string `form:"category"`
	Limit      int    `form:"limit"`
}

type ListReportsResponse struct {
	Reports []ReportView `json:"reports"`
	Total   int          `json:"total"`
}

type ApproveArgs struct {
	Version      string             `json:"version"` // Must be "2.0"
	Seq          int64              `json:"seq"`
	DepartmentID string             `json:"department_id"`
	Priority     lifecycle.Priority `json:"priority"`
	Notes        string             `json:"notes"`
}

type RejectArgs struct {
	Version string `json:"version"` // Must be "2.0"
	Seq     int64  `json:"seq"`
	Notes   string `json:"notes"`
}

type AssignArgs struct {
	Version  string `json:"version"` // Must be "2.0"
	Seq      int64  `json:"seq"`
	WorkerID string `json:"worker_id"`
}

type AutoAssignArgs struct {
	Version string `json:"version"` // Must be "2.0"
	Seq     int64  `json:"seq"`
}

type StartArgs struct {
	Version string `json:"version"` // Must be "2.0"
	Seq     int64  `json:"seq"`
	Notes   string `json:"notes"`
}

type CompleteArgs struct {
	Version  string `json:"version"` // Must be "2.0"
	Seq      int64  `json:"seq"`
	Notes    string `json:"notes"`
	MediaURL string `json:"media_url"`
}

type TransitionResponse struct {
	Report ReportView      `json:"report"`
	Event  lifecycle.Event `json:"event"`
}

type WorkerView struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	DepartmentID string                 `json:"department_id"`
	Status       lifecycle.WorkerStatus `json:"status"`
	ActiveTasks  int                    `json:"active_tasks"`
	DoneTasks    int                    `json:"done_tasks"`
}

type WorkersQuery struct {
	Department string `form:"department"`
	Status     string `form:"status"`
}

type WorkersResponse struct {
	Workers []WorkerView `json:"workers"`
}

type WorkerStatusArgs struct {
	Version  string                 `json:"version"` // Must be "2.0"
	WorkerID string                 `json:"worker_id"`
	Status   lifecycle.WorkerStatus `json:"status"`
}

type LeaderboardQuery struct {
	N int `form:"n"`
}

type LeaderboardResponse struct {
	Entries []leaderboard.Entry `json:"entries"`
}

type SuggestQuery struct {
	Category string `form:"category"`
}

type SuggestResponse struct {
	Category     string `json:"category"`
	DepartmentID string `json:"department_id,omitempty"`
	Matched      bool   `json:"matched"`
}

type DepartmentView struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Color      string   `json:"color"`
	Icon       string   `json:"icon"`
	Categories []string `json:"categories"`
}

type DepartmentsResponse struct {
	Departments []DepartmentView `json:"departments"`
}

type StatsQuery struct {
	Department string `form:"department_id"`
}

type StatsResponse struct {
	Total            int `json:"total"`
	Pending          int `json:"pending"`
	Approved         int `json:"approved"`
	Assigned         int `json:"assigned"`
	InProgress       int `json:"in_progress"`
	Completed        int `json:"completed"`
	Rejected         int `json:"rejected"`
	WorkersAvailable int `json:"workers_available"`
	WorkersBusy      int `json:"workers_busy"`
	WorkersOffline   int `json:"workers_offline"`
}

type ViewPort struct {
	LatMin float64 `json:"latmin"`
	LonMin float64 `json:"lonmin"`
	LatMax float64 `json:"latmax"`
	LonMax float64 `json:"lonmax"`
}

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type MapArgs struct {
	Version string   `json:"version"` // Must be "2.0"
	Id      string   `json:"id"`      // caller user id.
	VPort   ViewPort `json:"vport"`
	Center  Point    `json:"center"`
}

type MapResult struct {
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Count     int64            `json:"count"`
	ReportID  int64            `json:"report_id"` // Ignored if Count > 1
	Status    lifecycle.Status `json:"status"`    // Ignored if Count > 1
	Own       bool             `json:"own"`
}

type UserArgs struct {
	Version      string `json:"version"` // Must be "2.0"
	Id           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	DepartmentID string `json:"department_id"`
	Wallet       string `json:"wallet"`
}

type UserResp struct {
	Id      string `json:"id"`
	Alias   string `json:"alias"`
	Created bool   `json:"created"`
}
