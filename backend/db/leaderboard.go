package db

import (
	"database/sql"

	"civictrack/backend/leaderboard"
	"civictrack/backend/server/api"

	"github.com/apex/log"
)

// UserPointRows returns one row per user profile with the derived
// point total and submission count. Totals are always sums over the
// ledger; no stored counter exists to drift.
func UserPointRows(db *sql.DB) ([]leaderboard.UserRow, error) {
	rows, err := db.Query(`SELECT u.id, u.email, u.name, u.created_at,
	    COALESCE((SELECT SUM(points) FROM points_ledger pl WHERE pl.user_id = u.id), 0),
	    COALESCE((SELECT COUNT(*) FROM reports r WHERE r.citizen_id = u.id), 0)
	  FROM users u
	  WHERE u.role = 'citizen'`)
	if err != nil {
		log.Errorf("Error reading user point rows: %v", err)
		return nil, err
	}
	defer rows.Close()

	var result []leaderboard.UserRow
	for rows.Next() {
		var r leaderboard.UserRow
		if err := rows.Scan(&r.ID, &r.Email, &r.Name, &r.CreatedAt, &r.Points, &r.ReportsSubmitted); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// GetStats counts reports per status and workers per availability,
// over the whole system or one department.
func GetStats(db *sql.DB, departmentID string) (*api.StatsResponse, error) {
	reportQuery := `SELECT status, COUNT(*) FROM reports`
	workerQuery := `SELECT status, COUNT(*) FROM workers`
	reportArgs := []any{}
	workerArgs := []any{}
	if departmentID != "" {
		reportQuery += ` WHERE department_id = ?`
		workerQuery += ` WHERE department_id = ?`
		reportArgs = append(reportArgs, departmentID)
		workerArgs = append(workerArgs, departmentID)
	}

	var resp api.StatsResponse

	rows, err := db.Query(reportQuery+` GROUP BY status`, reportArgs...)
	if err != nil {
		log.Errorf("Error reading report stats: %v", err)
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		resp.Total += count
		switch status {
		case "pending":
			resp.Pending = count
		case "approved":
			resp.Approved = count
		case "assigned":
			resp.Assigned = count
		case "in-progress":
			resp.InProgress = count
		case "completed":
			resp.Completed = count
		case "rejected":
			resp.Rejected = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	wrows, err := db.Query(workerQuery+` GROUP BY status`, workerArgs...)
	if err != nil {
		log.Errorf("Error reading worker stats: %v", err)
		return nil, err
	}
	defer wrows.Close()
	for wrows.Next() {
		var (
			status string
			count  int
		)
		if err := wrows.Scan(&status, &count); err != nil {
			return nil, err
		}
		switch status {
		case "available":
			resp.WorkersAvailable = count
		case "busy":
			resp.WorkersBusy = count
		case "offline":
			resp.WorkersOffline = count
		}
	}
	return &resp, wrows.Err()
}
