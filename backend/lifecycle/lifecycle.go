// Package lifecycle owns the report state machine: the closed status,
// priority and role enums, the legal transition graph, and the actor
// scope rules for each transition. Every other package references these
// symbols; nothing else in the codebase compares status strings.
package lifecycle

import "fmt"

type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusRejected   Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusAssigned, StatusInProgress, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// Terminal statuses never transition again.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Rank orders priorities for work queues: urgent first.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 1
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 3
	default:
		return 4
	}
}

type Role string

const (
	RoleCitizen    Role = "citizen"
	RoleAdmin      Role = "admin"
	RoleDepartment Role = "department"
	RoleWorker     Role = "worker"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RoleAdmin, RoleDepartment, RoleWorker:
		return true
	}
	return false
}

type WorkerStatus string

const (
	WorkerAvailable WorkerStatus = "available"
	WorkerBusy      WorkerStatus = "busy"
	WorkerOffline   WorkerStatus = "offline"
)

func (s WorkerStatus) Valid() bool {
	switch s {
	case WorkerAvailable, WorkerBusy, WorkerOffline:
		return true
	}
	return false
}

// History action names, as recorded in the append-only report history.
const (
	ActionSubmitted      = "submitted"
	ActionApproved       = "approved"
	ActionRejected       = "rejected"
	ActionWorkerAssigned = "worker_assigned"
	ActionStarted        = "started"
	ActionCompleted      = "completed"
)

// Actor is the identity-provider view of the caller: who they are, what
// role they act in and, for department and worker roles, which
// department they belong to. The core trusts this input (§6).
type Actor struct {
	ID           string
	Role         Role
	DepartmentID string
}

// Report is the snapshot of a report the rules operate on.
type Report struct {
	Seq              int64
	Status           Status
	Priority         Priority
	CitizenID        string
	DepartmentID     string
	AssignedWorkerID string
}

// Worker is the snapshot of an assignment target.
type Worker struct {
	ID           string
	DepartmentID string
	Status       WorkerStatus
}

// Event is the logical "transition occurred" notification handed to the
// notifier after a transition commits.
type Event struct {
	ReportSeq int64  `json:"report_seq"`
	OldStatus Status `json:"old_status"`
	NewStatus Status `json:"new_status"`
	ActorID   string `json:"actor_id"`
	Action    string `json:"action"`
}

var transitions = map[Status][]Status{
	StatusPending:    {StatusApproved, StatusRejected},
	StatusApproved:   {StatusAssigned},
	StatusAssigned:   {StatusAssigned, StatusInProgress},
	StatusInProgress: {StatusCompleted},
}

// CanTransition reports whether from -> to is an edge of the lifecycle
// graph, ignoring actor and precondition checks.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func invalid(from, to Status, format string, args ...any) error {
	return &InvalidTransitionError{From: from, To: to, Reason: fmt.Sprintf(format, args...)}
}

// ValidateApprove checks pending -> approved. The department must be
// resolved by the caller before applying: an empty department fails here
// with ErrDepartmentRequired, an unknown one fails in the store with
// ErrDepartmentNotFound.
func ValidateApprove(r *Report, actor Actor, departmentID string, priority Priority) error {
	if actor.Role != RoleAdmin {
		return invalid(r.Status, StatusApproved, "actor role %q may not approve reports", actor.Role)
	}
	if r.Status != StatusPending {
		return invalid(r.Status, StatusApproved, "only pending reports can be approved")
	}
	if departmentID == "" {
		return ErrDepartmentRequired
	}
	if !priority.Valid() {
		return invalid(r.Status, StatusApproved, "unknown priority %q", priority)
	}
	return nil
}

// ValidateReject checks pending -> rejected. Rejection is only legal at
// the pending stage; a rejected report never acquires a department.
func ValidateReject(r *Report, actor Actor) error {
	if actor.Role != RoleAdmin {
		return invalid(r.Status, StatusRejected, "actor role %q may not reject reports", actor.Role)
	}
	if r.Status != StatusPending {
		return invalid(r.Status, StatusRejected, "only pending reports can be rejected")
	}
	return nil
}

// ValidateAssignable checks the worker-independent half of an
// assignment: actor scope and report status. Auto-assignment runs this
// before it goes looking for a candidate so that an unassignable report
// is refused for the right reason even when the roster is empty.
func ValidateAssignable(r *Report, actor Actor) error {
	if !actorOwnsDepartment(actor, r.DepartmentID) {
		return invalid(r.Status, StatusAssigned, "actor role %q may not assign workers for department %q", actor.Role, r.DepartmentID)
	}
	if r.Status != StatusApproved && r.Status != StatusAssigned {
		return invalid(r.Status, StatusAssigned, "report must be approved before assigning a worker")
	}
	return nil
}

// ValidateAssign checks approved|assigned -> assigned, covering both the
// first assignment and a reassignment. Manual assignment ignores worker
// load but never department membership or offline status.
func ValidateAssign(r *Report, actor Actor, w *Worker) error {
	if err := ValidateAssignable(r, actor); err != nil {
		return err
	}
	if w.DepartmentID != r.DepartmentID {
		return ErrWorkerDepartmentMismatch
	}
	if w.Status == WorkerOffline {
		return ErrWorkerUnavailable
	}
	return nil
}

// ValidateStart checks assigned -> in-progress by the assigned worker or
// the owning department.
func ValidateStart(r *Report, actor Actor) error {
	if !actorWorksReport(actor, r) {
		return invalid(r.Status, StatusInProgress, "only the assigned worker or the owning department may start this task")
	}
	if r.Status != StatusAssigned {
		return invalid(r.Status, StatusInProgress, "only assigned reports can be started")
	}
	return nil
}

// ValidateComplete checks in-progress -> completed by the assigned
// worker or the owning department. A retry against an already completed
// report is reported as ErrAlreadyCompleted so the store can treat it as
// a no-op instead of a failure.
func ValidateComplete(r *Report, actor Actor) error {
	if !actorWorksReport(actor, r) {
		return invalid(r.Status, StatusCompleted, "only the assigned worker or the owning department may complete this task")
	}
	if r.Status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	if r.Status != StatusInProgress {
		return invalid(r.Status, StatusCompleted, "only in-progress reports can be completed")
	}
	return nil
}

// admin, or a department actor scoped to the report's department.
func actorOwnsDepartment(actor Actor, departmentID string) bool {
	if actor.Role == RoleAdmin {
		return true
	}
	return actor.Role == RoleDepartment && departmentID != "" && actor.DepartmentID == departmentID
}

// the assigned worker, or a department actor scoped to the report's
// department.
func actorWorksReport(actor Actor, r *Report) bool {
	if actor.Role == RoleWorker && actor.ID != "" && actor.ID == r.AssignedWorkerID {
		return true
	}
	return actor.Role == RoleDepartment && r.DepartmentID != "" && actor.DepartmentID == r.DepartmentID
}
