package db

import (
	"context"
	"database/sql"
	"strings"

	"civictrack/backend/lifecycle"
	"civictrack/backend/server/api"
	"civictrack/common"

	"github.com/apex/log"
)

func getWorkerTx(ctx context.Context, tx *sql.Tx, workerID string) (*lifecycle.Worker, error) {
	var w lifecycle.Worker
	err := tx.QueryRowContext(ctx, `SELECT id, department_id, status FROM workers WHERE id = ?`, workerID).
		Scan(&w.ID, &w.DepartmentID, &w.Status)
	if err == sql.ErrNoRows {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		log.Errorf("Error reading worker %s: %v", workerID, err)
		return nil, err
	}
	return &w, nil
}

// selectCandidateTx returns the available worker of the department with
// the fewest open tasks, lowest id on ties. Open means assigned or
// in-progress.
func selectCandidateTx(ctx context.Context, tx *sql.Tx, departmentID string) (*lifecycle.Worker, error) {
	var w lifecycle.Worker
	err := tx.QueryRowContext(ctx, `SELECT w.id, w.department_id, w.status
	  FROM workers w
	  LEFT JOIN reports r ON r.assigned_worker_id = w.id AND r.status IN ('assigned', 'in-progress')
	  WHERE w.department_id = ? AND w.status = 'available'
	  GROUP BY w.id, w.department_id, w.status
	  ORDER BY COUNT(r.seq) ASC, w.id ASC
	  LIMIT 1`, departmentID).
		Scan(&w.ID, &w.DepartmentID, &w.Status)
	if err == sql.ErrNoRows {
		return nil, lifecycle.ErrNoAvailableWorker
	}
	if err != nil {
		log.Errorf("Error selecting candidate worker for %s: %v", departmentID, err)
		return nil, err
	}
	return &w, nil
}

// ListWorkers returns workers with their open and completed task
// counts, optionally filtered by department and status.
func ListWorkers(db *sql.DB, q *api.WorkersQuery) (*api.WorkersResponse, error) {
	query := `SELECT w.id, w.name, w.department_id, w.status,
	    COUNT(CASE WHEN r.status IN ('assigned', 'in-progress') THEN r.seq END),
	    COUNT(CASE WHEN r.status = 'completed' THEN r.seq END)
	  FROM workers w
	  LEFT JOIN reports r ON r.assigned_worker_id = w.id`
	args := []any{}
	where := []string{}
	if q.Department != "" {
		where = append(where, "w.department_id = ?")
		args = append(args, q.Department)
	}
	if q.Status != "" {
		where = append(where, "w.status = ?")
		args = append(args, q.Status)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += ` GROUP BY w.id, w.name, w.department_id, w.status ORDER BY w.id ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		log.Errorf("Error listing workers: %v", err)
		return nil, err
	}
	defer rows.Close()

	resp := &api.WorkersResponse{Workers: []api.WorkerView{}}
	for rows.Next() {
		var w api.WorkerView
		if err := rows.Scan(&w.ID, &w.Name, &w.DepartmentID, &w.Status, &w.ActiveTasks, &w.DoneTasks); err != nil {
			return nil, err
		}
		resp.Workers = append(resp.Workers, w)
	}
	return resp, rows.Err()
}

// UpdateWorkerStatus sets a worker's availability. Status never changes
// implicitly; assignments do not flip a worker to busy.
func UpdateWorkerStatus(db *sql.DB, workerID string, status lifecycle.WorkerStatus) error {
	result, err := db.Exec(`UPDATE workers SET status = ? WHERE id = ?`, status, workerID)
	common.LogResult("updateWorkerStatus", result, err, false)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// Either the worker is unknown or the status is unchanged.
		var id string
		err := db.QueryRow(`SELECT id FROM workers WHERE id = ?`, workerID).Scan(&id)
		if err == sql.ErrNoRows {
			return lifecycle.ErrNotFound
		}
		return err
	}
	return nil
}

// CreateOrUpdateWorker registers a worker in a department. The
// department is fixed at creation; a re-upsert refreshes the name only,
// so open assignments keep pointing at a worker of the department they
// were validated against.
func CreateOrUpdateWorker(db *sql.DB, id, name, departmentID string) error {
	result, err := db.Exec(`INSERT INTO workers (id, name, department_id) VALUES (?, ?, ?)
	  ON DUPLICATE KEY UPDATE name=?`,
		id, name, departmentID, name)
	common.LogResult("createOrUpdateWorker", result, err, false)
	return err
}
