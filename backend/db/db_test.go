package db

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"civictrack/backend/lifecycle"
	"civictrack/backend/server/api"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jknair0/beforeeach"
)

var (
	db   *sql.DB
	mock sqlmock.Sqlmock
)

func setUp() {
	db, mock, _ = sqlmock.New()
}

func tearDown() {
	db.Close()
}

var it = beforeeach.Create(setUp, tearDown)

var reportRowColumns = []string{
	"seq", "citizen_id", "category", "description", "location_text", "latitude", "longitude", "media_url",
	"status", "priority", "department_id", "suggested_department_id", "assigned_worker_id",
	"admin_notes", "worker_notes", "ts", "approved_at", "completed_at",
}

func reportRow(seq int64, status, priority, department, worker string) *sqlmock.Rows {
	return sqlmock.NewRows(reportRowColumns).AddRow(
		seq, "citizen1", "Pothole", "deep hole", "Main St", 47.37, 8.55, "",
		status, priority, department, "roads", worker,
		"", "", time.Now(), nil, nil)
}

func expectGetReport(seq int64, status, priority, department, worker string) {
	mock.ExpectQuery("FROM reports WHERE seq = (.+)").
		WithArgs(seq).
		WillReturnRows(reportRow(seq, status, priority, department, worker))
	mock.ExpectQuery("FROM report_history WHERE report_seq = (.+)").
		WithArgs(seq).
		WillReturnRows(sqlmock.NewRows([]string{"action", "actor_id", "old_status", "new_status", "notes", "ts"}))
}

func snapshotColumns() []string {
	return []string{"seq", "status", "priority", "citizen_id", "department_id", "assigned_worker_id"}
}

func TestCreateReport(t *testing.T) {
	it(func() {
		mock.ExpectBegin()
		mock.ExpectExec("INTO reports").
			WithArgs("citizen1", "Pothole", "deep hole", "Main St", 47.37, 8.55, "", "pending", "roads").
			WillReturnResult(sqlmock.NewResult(7, 1))
		mock.ExpectExec("INTO points_ledger").
			WithArgs("citizen1", int64(7), "submission", 3).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INTO report_history").
			WithArgs(int64(7), "submitted", "citizen1", "pending", "pending", "").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		resp, err := CreateReport(db, &api.ReportArgs{
			Version:      "2.0",
			Id:           "citizen1",
			Category:     "Pothole",
			Description:  "deep hole",
			LocationText: "Main St",
			Latitude:     47.37,
			Longitude:    8.55,
		}, "roads")
		if err != nil {
			t.Fatalf("CreateReport: unexpected error: %v", err)
		}
		if resp.Seq != 7 || resp.Status != lifecycle.StatusPending || resp.PointsAwarded != 3 {
			t.Errorf("CreateReport: unexpected response %+v", resp)
		}
		if resp.SuggestedDepartment != "roads" {
			t.Errorf("CreateReport: suggested department = %q, want roads", resp.SuggestedDepartment)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("CreateReport: unmet expectations: %v", err)
		}
	})
}

func TestApproveReport(t *testing.T) {
	it(func() {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT seq, status, priority, citizen_id, department_id, assigned_worker_id").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(snapshotColumns()).
				AddRow(7, "pending", nil, "citizen1", "", ""))
		mock.ExpectQuery("SELECT id FROM departments WHERE id = (.+)").
			WithArgs("roads").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("roads"))
		mock.ExpectExec("UPDATE reports SET").
			WithArgs("approved", "high", "roads", "fix asap", int64(7), "pending").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INTO report_history").
			WithArgs(int64(7), "approved", "admin1", "pending", "approved", "fix asap").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()
		expectGetReport(7, "approved", "high", "roads", "")

		resp, err := ApproveReport(db, lifecycle.Actor{ID: "admin1", Role: lifecycle.RoleAdmin},
			&api.ApproveArgs{Seq: 7, DepartmentID: "roads", Priority: lifecycle.PriorityHigh, Notes: "fix asap"})
		if err != nil {
			t.Fatalf("ApproveReport: unexpected error: %v", err)
		}
		if resp.Event.OldStatus != lifecycle.StatusPending || resp.Event.NewStatus != lifecycle.StatusApproved {
			t.Errorf("ApproveReport: unexpected event %+v", resp.Event)
		}
		if resp.Report.Status != lifecycle.StatusApproved {
			t.Errorf("ApproveReport: report status = %s, want approved", resp.Report.Status)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("ApproveReport: unmet expectations: %v", err)
		}
	})
}

func TestApproveReportConflict(t *testing.T) {
	it(func() {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT seq, status, priority, citizen_id, department_id, assigned_worker_id").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(snapshotColumns()).
				AddRow(7, "pending", nil, "citizen1", "", ""))
		mock.ExpectQuery("SELECT id FROM departments WHERE id = (.+)").
			WithArgs("roads").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("roads"))
		// Lost the race: another admin rejected the report first.
		mock.ExpectExec("UPDATE reports SET").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT seq, status, priority, citizen_id, department_id, assigned_worker_id").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(snapshotColumns()).
				AddRow(7, "rejected", nil, "citizen1", "", ""))
		mock.ExpectRollback()

		_, err := ApproveReport(db, lifecycle.Actor{ID: "admin1", Role: lifecycle.RoleAdmin},
			&api.ApproveArgs{Seq: 7, DepartmentID: "roads", Priority: lifecycle.PriorityHigh})
		if !errors.Is(err, lifecycle.ErrConflict) {
			t.Errorf("ApproveReport: expected ErrConflict, got %v", err)
		}
	})
}

func TestApproveReportWrongRole(t *testing.T) {
	it(func() {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT seq, status, priority, citizen_id, department_id, assigned_worker_id").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(snapshotColumns()).
				AddRow(7, "pending", nil, "citizen1", "", ""))
		mock.ExpectRollback()

		_, err := ApproveReport(db, lifecycle.Actor{ID: "w1", Role: lifecycle.RoleWorker},
			&api.ApproveArgs{Seq: 7, DepartmentID: "roads", Priority: lifecycle.PriorityHigh})
		if !lifecycle.IsInvalidTransition(err) {
			t.Errorf("ApproveReport: expected invalid transition, got %v", err)
		}
	})
}

func TestAssignWorkerDepartmentMismatch(t *testing.T) {
	it(func() {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT seq, status, priority, citizen_id, department_id, assigned_worker_id").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(snapshotColumns()).
				AddRow(7, "approved", "high", "citizen1", "roads", ""))
		mock.ExpectQuery("SELECT id, department_id, status FROM workers WHERE id = (.+)").
			WithArgs("w9").
			WillReturnRows(sqlmock.NewRows([]string{"id", "department_id", "status"}).
				AddRow("w9", "water", "available"))
		mock.ExpectRollback()

		_, err := AssignWorker(db, lifecycle.Actor{ID: "admin1", Role: lifecycle.RoleAdmin},
			&api.AssignArgs{Seq: 7, WorkerID: "w9"})
		if !errors.Is(err, lifecycle.ErrWorkerDepartmentMismatch) {
			t.Errorf("AssignWorker: expected ErrWorkerDepartmentMismatch, got %v", err)
		}
	})
}

func TestAutoAssignWorker(t *testing.T) {
	it(func() {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT seq, status, priority, citizen_id, department_id, assigned_worker_id").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(snapshotColumns()).
				AddRow(7, "approved", "high", "citizen1", "roads", ""))
		mock.ExpectQuery("FROM workers w").
			WithArgs("roads").
			WillReturnRows(sqlmock.NewRows([]string{"id", "department_id", "status"}).
				AddRow("w2", "roads", "available"))
		mock.ExpectExec("UPDATE reports SET").
			WithArgs("assigned", "w2", int64(7), "approved").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INTO report_history").
			WithArgs(int64(7), "worker_assigned", "dept1", "approved", "assigned", "worker w2").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()
		expectGetReport(7, "assigned", "high", "roads", "w2")

		resp, err := AutoAssignWorker(db,
			lifecycle.Actor{ID: "dept1", Role: lifecycle.RoleDepartment, DepartmentID: "roads"},
			&api.AutoAssignArgs{Seq: 7})
		if err != nil {
			t.Fatalf("AutoAssignWorker: unexpected error: %v", err)
		}
		if resp.Report.AssignedWorkerID != "w2" {
			t.Errorf("AutoAssignWorker: assigned %q, want w2", resp.Report.AssignedWorkerID)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("AutoAssignWorker: unmet expectations: %v", err)
		}
	})
}

func TestAutoAssignWorkerNoneAvailable(t *testing.T) {
	it(func() {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT seq, status, priority, citizen_id, department_id, assigned_worker_id").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(snapshotColumns()).
				AddRow(7, "approved", "high", "citizen1", "roads", ""))
		mock.ExpectQuery("FROM workers w").
			WithArgs("roads").
			WillReturnRows(sqlmock.NewRows([]string{"id", "department_id", "status"}))
		mock.ExpectRollback()

		_, err := AutoAssignWorker(db, lifecycle.Actor{ID: "admin1", Role: lifecycle.RoleAdmin},
			&api.AutoAssignArgs{Seq: 7})
		if !errors.Is(err, lifecycle.ErrNoAvailableWorker) {
			t.Errorf("AutoAssignWorker: expected ErrNoAvailableWorker, got %v", err)
		}
	})
}

func TestAutoAssignWorkerPendingReport(t *testing.T) {
	it(func() {
		// An unassignable report is refused before any candidate is
		// looked up; no workers query is expected here.
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT seq, status, priority, citizen_id, department_id, assigned_worker_id").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(snapshotColumns()).
				AddRow(7, "pending", "", "citizen1", "", ""))
		mock.ExpectRollback()

		_, err := AutoAssignWorker(db, lifecycle.Actor{ID: "admin1", Role: lifecycle.RoleAdmin},
			&api.AutoAssignArgs{Seq: 7})
		if !lifecycle.IsInvalidTransition(err) {
			t.Errorf("AutoAssignWorker: expected invalid transition, got %v", err)
		}
	})
}

func TestCompleteReport(t *testing.T) {
	it(func() {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT seq, status, priority, citizen_id, department_id, assigned_worker_id").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(snapshotColumns()).
				AddRow(7, "in-progress", "high", "citizen1", "roads", "w2"))
		mock.ExpectExec("UPDATE reports SET").
			WithArgs("completed", "done", "", "", int64(7), "in-progress").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INTO points_ledger").
			WithArgs("citizen1", int64(7), "completion_bonus", 2).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INTO report_history").
			WithArgs(int64(7), "completed", "w2", "in-progress", "completed", "done").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()
		expectGetReport(7, "completed", "high", "roads", "w2")

		resp, err := CompleteReport(db, lifecycle.Actor{ID: "w2", Role: lifecycle.RoleWorker},
			&api.CompleteArgs{Seq: 7, Notes: "done"})
		if err != nil {
			t.Fatalf("CompleteReport: unexpected error: %v", err)
		}
		if resp.Event.OldStatus != lifecycle.StatusInProgress || resp.Event.NewStatus != lifecycle.StatusCompleted {
			t.Errorf("CompleteReport: unexpected event %+v", resp.Event)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("CompleteReport: unmet expectations: %v", err)
		}
	})
}

func TestCompleteReportRetryIsNoop(t *testing.T) {
	it(func() {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT seq, status, priority, citizen_id, department_id, assigned_worker_id").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(snapshotColumns()).
				AddRow(7, "completed", "high", "citizen1", "roads", "w2"))
		mock.ExpectRollback()
		expectGetReport(7, "completed", "high", "roads", "w2")

		resp, err := CompleteReport(db, lifecycle.Actor{ID: "w2", Role: lifecycle.RoleWorker},
			&api.CompleteArgs{Seq: 7, Notes: "done"})
		if err != nil {
			t.Fatalf("CompleteReport retry: unexpected error: %v", err)
		}
		if resp.Event.OldStatus != lifecycle.StatusCompleted || resp.Event.NewStatus != lifecycle.StatusCompleted {
			t.Errorf("CompleteReport retry: expected unchanged status, got %+v", resp.Event)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("CompleteReport retry: unmet expectations: %v", err)
		}
	})
}

func TestUpdateWorkerStatusUnknownWorker(t *testing.T) {
	it(func() {
		mock.ExpectExec("UPDATE workers SET status = (.+) WHERE id = (.+)").
			WithArgs("offline", "nobody").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT id FROM workers WHERE id = (.+)").
			WithArgs("nobody").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		err := UpdateWorkerStatus(db, "nobody", lifecycle.WorkerOffline)
		if !errors.Is(err, lifecycle.ErrNotFound) {
			t.Errorf("UpdateWorkerStatus: expected ErrNotFound, got %v", err)
		}
	})
}

func TestCreateOrUpdateWorkerKeepsDepartment(t *testing.T) {
	it(func() {
		// The duplicate-key branch refreshes the name only; the
		// department bound at creation never changes on re-upsert.
		mock.ExpectExec(`ON DUPLICATE KEY UPDATE name=\?`).
			WithArgs("w1", "Asha K", "water", "Asha K").
			WillReturnResult(sqlmock.NewResult(0, 2))

		if err := CreateOrUpdateWorker(db, "w1", "Asha K", "water"); err != nil {
			t.Errorf("CreateOrUpdateWorker: %v", err)
		}
	})
}

func TestGetStats(t *testing.T) {
	it(func() {
		mock.ExpectQuery("SELECT status, COUNT(.+) FROM reports GROUP BY status").
			WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
				AddRow("pending", 4).
				AddRow("in-progress", 2).
				AddRow("completed", 9))
		mock.ExpectQuery("SELECT status, COUNT(.+) FROM workers GROUP BY status").
			WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
				AddRow("available", 3).
				AddRow("offline", 1))

		resp, err := GetStats(db, "")
		if err != nil {
			t.Fatalf("GetStats: unexpected error: %v", err)
		}
		if resp.Total != 15 || resp.Pending != 4 || resp.InProgress != 2 || resp.Completed != 9 {
			t.Errorf("GetStats: unexpected response %+v", resp)
		}
		if resp.WorkersAvailable != 3 || resp.WorkersOffline != 1 {
			t.Errorf("GetStats: unexpected worker counts %+v", resp)
		}
	})
}
