package db

import (
	"context"
	"database/sql"
	"errors"

	"civictrack/backend/lifecycle"
	"civictrack/backend/points"
	"civictrack/backend/server/api"
	"civictrack/common"

	"github.com/apex/log"
)

// Transitions are applied with a compare-and-set on the status column.
// The snapshot read, the rule check and the conditional update run in
// one serializable transaction; an update that matches zero rows means
// the report changed underneath us and the caller gets ErrConflict.

func casUpdate(ctx context.Context, tx *sql.Tx, prefix string, seq int64, expected lifecycle.Status, set string, args ...any) error {
	args = append(args, seq, expected)
	result, err := tx.ExecContext(ctx, `UPDATE reports SET `+set+` WHERE seq = ? AND status = ?`, args...)
	common.LogResult(prefix, result, err, false)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 1 {
		return nil
	}
	// Lost the race. Distinguish deletion from concurrent change.
	if _, err := snapshotReport(ctx, tx, seq); err != nil {
		return err
	}
	return lifecycle.ErrConflict
}

func appendHistory(ctx context.Context, tx *sql.Tx, seq int64, action string, actor lifecycle.Actor, oldStatus, newStatus lifecycle.Status, notes string) error {
	result, err := tx.ExecContext(ctx, `INSERT
	  INTO report_history (report_seq, action, actor_id, old_status, new_status, notes)
	  VALUES (?, ?, ?, ?, ?, ?)`,
		seq, action, actor.ID, oldStatus, newStatus, notes)
	common.LogResult("appendHistory", result, err, true)
	return err
}

func finishTransition(db *sql.DB, tx *sql.Tx, seq int64, actor lifecycle.Actor, action string, oldStatus, newStatus lifecycle.Status) (*api.TransitionResponse, error) {
	if err := tx.Commit(); err != nil {
		log.Errorf("Error committing transition for report %d: %v", seq, err)
		return nil, err
	}
	view, err := GetReport(db, seq)
	if err != nil {
		return nil, err
	}
	return &api.TransitionResponse{
		Report: *view,
		Event: lifecycle.Event{
			ReportSeq: seq,
			OldStatus: oldStatus,
			NewStatus: newStatus,
			ActorID:   actor.ID,
			Action:    action,
		},
	}, nil
}

// ApproveReport routes a pending report to a department with a triage
// priority.
func ApproveReport(db *sql.DB, actor lifecycle.Actor, args *api.ApproveArgs) (*api.TransitionResponse, error) {
	ctx := context.Background()
	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		log.Errorf("Error creating transaction: %v", err)
		return nil, err
	}
	defer tx.Rollback()

	r, err := snapshotReport(ctx, tx, args.Seq)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.ValidateApprove(r, actor, args.DepartmentID, args.Priority); err != nil {
		return nil, err
	}
	exists, err := departmentExistsTx(ctx, tx, args.DepartmentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, lifecycle.ErrDepartmentNotFound
	}

	err = casUpdate(ctx, tx, "approveReport", args.Seq, r.Status,
		`status = ?, priority = ?, department_id = ?, admin_notes = ?, approved_at = CURRENT_TIMESTAMP`,
		lifecycle.StatusApproved, args.Priority, args.DepartmentID, args.Notes)
	if err != nil {
		return nil, err
	}
	if err := appendHistory(ctx, tx, args.Seq, lifecycle.ActionApproved, actor, r.Status, lifecycle.StatusApproved, args.Notes); err != nil {
		return nil, err
	}
	return finishTransition(db, tx, args.Seq, actor, lifecycle.ActionApproved, r.Status, lifecycle.StatusApproved)
}

// RejectReport closes a pending report without routing it.
func RejectReport(db *sql.DB, actor lifecycle.Actor, args *api.RejectArgs) (*api.TransitionResponse, error) {
	ctx := context.Background()
	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		log.Errorf("Error creating transaction: %v", err)
		return nil, err
	}
	defer tx.Rollback()

	r, err := snapshotReport(ctx, tx, args.Seq)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.ValidateReject(r, actor); err != nil {
		return nil, err
	}

	err = casUpdate(ctx, tx, "rejectReport", args.Seq, r.Status,
		`status = ?, admin_notes = ?`,
		lifecycle.StatusRejected, args.Notes)
	if err != nil {
		return nil, err
	}
	if err := appendHistory(ctx, tx, args.Seq, lifecycle.ActionRejected, actor, r.Status, lifecycle.StatusRejected, args.Notes); err != nil {
		return nil, err
	}
	return finishTransition(db, tx, args.Seq, actor, lifecycle.ActionRejected, r.Status, lifecycle.StatusRejected)
}

func assignWithinTx(ctx context.Context, tx *sql.Tx, actor lifecycle.Actor, r *lifecycle.Report, w *lifecycle.Worker) error {
	if err := lifecycle.ValidateAssign(r, actor, w); err != nil {
		return err
	}
	err := casUpdate(ctx, tx, "assignWorker", r.Seq, r.Status,
		`status = ?, assigned_worker_id = ?`,
		lifecycle.StatusAssigned, w.ID)
	if err != nil {
		return err
	}
	return appendHistory(ctx, tx, r.Seq, lifecycle.ActionWorkerAssigned, actor, r.Status, lifecycle.StatusAssigned, "worker "+w.ID)
}

// AssignWorker assigns or reassigns a named worker. A busy worker is a
// legal target; only offline workers and foreign departments are
// refused.
func AssignWorker(db *sql.DB, actor lifecycle.Actor, args *api.AssignArgs) (*api.TransitionResponse, error) {
	ctx := context.Background()
	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		log.Errorf("Error creating transaction: %v", err)
		return nil, err
	}
	defer tx.Rollback()

	r, err := snapshotReport(ctx, tx, args.Seq)
	if err != nil {
		return nil, err
	}
	w, err := getWorkerTx(ctx, tx, args.WorkerID)
	if err != nil {
		return nil, err
	}
	if err := assignWithinTx(ctx, tx, actor, r, w); err != nil {
		return nil, err
	}
	return finishTransition(db, tx, args.Seq, actor, lifecycle.ActionWorkerAssigned, r.Status, lifecycle.StatusAssigned)
}

// AutoAssignWorker picks the least-loaded available worker of the
// report's department and assigns them. Load is the count of the
// worker's open tasks; ties break on the lower worker id.
func AutoAssignWorker(db *sql.DB, actor lifecycle.Actor, args *api.AutoAssignArgs) (*api.TransitionResponse, error) {
	ctx := context.Background()
	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		log.Errorf("Error creating transaction: %v", err)
		return nil, err
	}
	defer tx.Rollback()

	r, err := snapshotReport(ctx, tx, args.Seq)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.ValidateAssignable(r, actor); err != nil {
		return nil, err
	}
	w, err := selectCandidateTx(ctx, tx, r.DepartmentID)
	if err != nil {
		return nil, err
	}
	if err := assignWithinTx(ctx, tx, actor, r, w); err != nil {
		return nil, err
	}
	return finishTransition(db, tx, args.Seq, actor, lifecycle.ActionWorkerAssigned, r.Status, lifecycle.StatusAssigned)
}

// StartReport moves an assigned report to in-progress.
func StartReport(db *sql.DB, actor lifecycle.Actor, args *api.StartArgs) (*api.TransitionResponse, error) {
	ctx := context.Background()
	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		log.Errorf("Error creating transaction: %v", err)
		return nil, err
	}
	defer tx.Rollback()

	r, err := snapshotReport(ctx, tx, args.Seq)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.ValidateStart(r, actor); err != nil {
		return nil, err
	}

	err = casUpdate(ctx, tx, "startReport", args.Seq, r.Status,
		`status = ?, worker_notes = ?`,
		lifecycle.StatusInProgress, args.Notes)
	if err != nil {
		return nil, err
	}
	if err := appendHistory(ctx, tx, args.Seq, lifecycle.ActionStarted, actor, r.Status, lifecycle.StatusInProgress, args.Notes); err != nil {
		return nil, err
	}
	return finishTransition(db, tx, args.Seq, actor, lifecycle.ActionStarted, r.Status, lifecycle.StatusInProgress)
}

// CompleteReport finishes an in-progress report and credits the
// reporting citizen a completion bonus, at most once per report. A
// retry against an already completed report succeeds without writing
// anything; the handler detects the unchanged status and skips
// notifications.
func CompleteReport(db *sql.DB, actor lifecycle.Actor, args *api.CompleteArgs) (*api.TransitionResponse, error) {
	ctx := context.Background()
	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		log.Errorf("Error creating transaction: %v", err)
		return nil, err
	}
	defer tx.Rollback()

	r, err := snapshotReport(ctx, tx, args.Seq)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.ValidateComplete(r, actor); err != nil {
		if errors.Is(err, lifecycle.ErrAlreadyCompleted) {
			tx.Rollback()
			view, verr := GetReport(db, args.Seq)
			if verr != nil {
				return nil, verr
			}
			return &api.TransitionResponse{
				Report: *view,
				Event: lifecycle.Event{
					ReportSeq: args.Seq,
					OldStatus: lifecycle.StatusCompleted,
					NewStatus: lifecycle.StatusCompleted,
					ActorID:   actor.ID,
					Action:    lifecycle.ActionCompleted,
				},
			}, nil
		}
		return nil, err
	}

	err = casUpdate(ctx, tx, "completeReport", args.Seq, r.Status,
		`status = ?, worker_notes = ?, media_url = IF(? = '', media_url, ?), completed_at = CURRENT_TIMESTAMP`,
		lifecycle.StatusCompleted, args.Notes, args.MediaURL, args.MediaURL)
	if err != nil {
		return nil, err
	}

	result, err := tx.ExecContext(ctx, `INSERT
	  INTO points_ledger (user_id, report_seq, reason, points)
	  VALUES (?, ?, ?, ?)
	  ON DUPLICATE KEY UPDATE seq=seq`,
		r.CitizenID, args.Seq, points.ReasonCompletionBonus, points.CompletionBonus)
	common.LogResult("completeReport bonus", result, err, false)
	if err != nil {
		log.Errorf("Error inserting completion bonus: %v", err)
		return nil, err
	}

	if err := appendHistory(ctx, tx, args.Seq, lifecycle.ActionCompleted, actor, r.Status, lifecycle.StatusCompleted, args.Notes); err != nil {
		return nil, err
	}
	return finishTransition(db, tx, args.Seq, actor, lifecycle.ActionCompleted, r.Status, lifecycle.StatusCompleted)
}
