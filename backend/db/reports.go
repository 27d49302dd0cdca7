package db

import (
	"context"
	"database/sql"
	"fmt"

	"civictrack/backend/lifecycle"
	"civictrack/backend/points"
	"civictrack/backend/server/api"
	"civictrack/backend/util"
	"civictrack/common"

	"github.com/apex/log"
	_ "github.com/go-sql-driver/mysql"
)

// CreateReport inserts the report, the submission ledger entry and the
// first history record in one transaction. The suggested department is
// advisory only; the report stays unrouted until approval.
func CreateReport(db *sql.DB, r *api.ReportArgs, suggestedDept string) (*api.ReportResp, error) {
	ctx := context.Background()
	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		log.Errorf("Error creating transaction: %v", err)
		return nil, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `INSERT
	  INTO reports (citizen_id, category, description, location_text, latitude, longitude, media_url, status, suggested_department_id)
	  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Id, r.Category, r.Description, r.LocationText, r.Latitude, r.Longitude, r.MediaURL, lifecycle.StatusPending, suggestedDept)
	common.LogResult("createReport", result, err, true)
	if err != nil {
		log.Errorf("Error inserting report: %v", err)
		return nil, err
	}
	seq, err := result.LastInsertId()
	if err != nil {
		log.Errorf("Error reading report seq: %v", err)
		return nil, err
	}

	result, err = tx.ExecContext(ctx, `INSERT
	  INTO points_ledger (user_id, report_seq, reason, points)
	  VALUES (?, ?, ?, ?)
	  ON DUPLICATE KEY UPDATE seq=seq`,
		r.Id, seq, points.ReasonSubmission, points.SubmissionPoints)
	common.LogResult("createReport ledger", result, err, true)
	if err != nil {
		log.Errorf("Error inserting submission ledger entry: %v", err)
		return nil, err
	}

	result, err = tx.ExecContext(ctx, `INSERT
	  INTO report_history (report_seq, action, actor_id, old_status, new_status, notes)
	  VALUES (?, ?, ?, ?, ?, ?)`,
		seq, lifecycle.ActionSubmitted, r.Id, lifecycle.StatusPending, lifecycle.StatusPending, "")
	common.LogResult("createReport history", result, err, true)
	if err != nil {
		log.Errorf("Error inserting report history: %v", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		log.Errorf("Error committing the transaction: %v", err)
		return nil, err
	}

	return &api.ReportResp{
		Seq:                 seq,
		Status:              lifecycle.StatusPending,
		SuggestedDepartment: suggestedDept,
		PointsAwarded:       points.SubmissionPoints,
	}, nil
}

const reportColumns = `seq, citizen_id, category, description, location_text, latitude, longitude, media_url,
	  status, priority, department_id, suggested_department_id, assigned_worker_id,
	  admin_notes, worker_notes, ts, approved_at, completed_at`

type reportScanner interface {
	Scan(dest ...any) error
}

func scanReport(row reportScanner) (*api.ReportView, error) {
	var (
		v                       api.ReportView
		description             sql.NullString
		priority                sql.NullString
		adminNotes, workerNotes sql.NullString
		approvedAt, completedAt sql.NullTime
	)
	err := row.Scan(&v.Seq, &v.CitizenID, &v.Category, &description, &v.LocationText,
		&v.Latitude, &v.Longitude, &v.MediaURL,
		&v.Status, &priority, &v.DepartmentID, &v.SuggestedDepartment, &v.AssignedWorkerID,
		&adminNotes, &workerNotes, &v.CreatedAt, &approvedAt, &completedAt)
	if err != nil {
		return nil, err
	}
	v.Description = description.String
	v.Priority = lifecycle.Priority(priority.String)
	v.AdminNotes = adminNotes.String
	v.WorkerNotes = workerNotes.String
	if approvedAt.Valid {
		t := approvedAt.Time
		v.ApprovedAt = &t
	}
	if completedAt.Valid {
		t := completedAt.Time
		v.CompletedAt = &t
	}
	v.CitizenAlias = util.AnonAlias(v.CitizenID)
	return &v, nil
}

// GetReport returns the report with its full history, oldest entry
// first.
func GetReport(db *sql.DB, seq int64) (*api.ReportView, error) {
	row := db.QueryRow(`SELECT `+reportColumns+` FROM reports WHERE seq = ?`, seq)
	v, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		log.Errorf("Error getting report %d: %v", seq, err)
		return nil, err
	}

	rows, err := db.Query(`SELECT action, actor_id, old_status, new_status, notes, ts
	  FROM report_history WHERE report_seq = ? ORDER BY seq ASC`, seq)
	if err != nil {
		log.Errorf("Error getting history for report %d: %v", seq, err)
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			h     api.HistoryEntry
			notes sql.NullString
		)
		if err := rows.Scan(&h.Action, &h.ActorID, &h.OldStatus, &h.NewStatus, &notes, &h.Timestamp); err != nil {
			return nil, err
		}
		h.Notes = notes.String
		v.History = append(v.History, h)
	}
	return v, rows.Err()
}

// ListReports applies the optional filters and orders the result as a
// work queue: urgent first, then newest.
func ListReports(db *sql.DB, q *api.ListReportsQuery) (*api.ListReportsResponse, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE 1=1`
	args := []any{}
	if q.Status != "" {
		query += " AND status = ?"
		args = append(args, q.Status)
	}
	if q.Department != "" {
		query += " AND department_id = ?"
		args = append(args, q.Department)
	}
	if q.Citizen != "" {
		query += " AND citizen_id = ?"
		args = append(args, q.Citizen)
	}
	if q.Category != "" {
		query += " AND category = ?"
		args = append(args, q.Category)
	}
	query += ` ORDER BY CASE priority
	    WHEN 'urgent' THEN 1 WHEN 'high' THEN 2 WHEN 'medium' THEN 3 WHEN 'low' THEN 4 ELSE 5 END,
	  ts DESC`
	limit := q.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	query += fmt.Sprintf(" LIMIT %d", limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		log.Errorf("Error listing reports: %v", err)
		return nil, err
	}
	defer rows.Close()

	resp := &api.ListReportsResponse{Reports: []api.ReportView{}}
	for rows.Next() {
		v, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		resp.Reports = append(resp.Reports, *v)
	}
	resp.Total = len(resp.Reports)
	return resp, rows.Err()
}

// GetReportsInViewport returns report pins within the viewport for map
// aggregation, excluding rejected reports.
func GetReportsInViewport(db *sql.DB, callerID string, vp api.ViewPort) ([]api.MapResult, error) {
	rows, err := db.Query(`SELECT seq, citizen_id, latitude, longitude, status
	  FROM reports
	  WHERE latitude >= ? AND latitude <= ?
	    AND longitude >= ? AND longitude <= ?
	    AND status != 'rejected'`,
		vp.LatMin, vp.LatMax, vp.LonMin, vp.LonMax)
	if err != nil {
		log.Errorf("Error querying viewport reports: %v", err)
		return nil, err
	}
	defer rows.Close()

	results := []api.MapResult{}
	for rows.Next() {
		var (
			r         api.MapResult
			citizenID string
		)
		if err := rows.Scan(&r.ReportID, &citizenID, &r.Latitude, &r.Longitude, &r.Status); err != nil {
			return nil, err
		}
		r.Count = 1
		r.Own = citizenID == callerID
		results = append(results, r)
	}
	return results, rows.Err()
}

func snapshotReport(ctx context.Context, tx *sql.Tx, seq int64) (*lifecycle.Report, error) {
	var (
		r        lifecycle.Report
		priority sql.NullString
	)
	err := tx.QueryRowContext(ctx, `SELECT seq, status, priority, citizen_id, department_id, assigned_worker_id
	  FROM reports WHERE seq = ?`, seq).
		Scan(&r.Seq, &r.Status, &priority, &r.CitizenID, &r.DepartmentID, &r.AssignedWorkerID)
	if err == sql.ErrNoRows {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		log.Errorf("Error reading report %d snapshot: %v", seq, err)
		return nil, err
	}
	r.Priority = lifecycle.Priority(priority.String)
	return &r, nil
}
