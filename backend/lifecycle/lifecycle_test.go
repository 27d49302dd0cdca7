package lifecycle

import (
	"errors"
	"testing"
)

var (
	admin    = Actor{ID: "a1", Role: RoleAdmin}
	citizen  = Actor{ID: "c1", Role: RoleCitizen}
	roadsMgr = Actor{ID: "d1", Role: RoleDepartment, DepartmentID: "roads"}
	waterMgr = Actor{ID: "d2", Role: RoleDepartment, DepartmentID: "water"}
)

func pendingReport() *Report {
	return &Report{Seq: 1, Status: StatusPending, Priority: PriorityMedium, CitizenID: "c1"}
}

func roadsReport(s Status, worker string) *Report {
	return &Report{Seq: 1, Status: s, Priority: PriorityHigh, CitizenID: "c1", DepartmentID: "roads", AssignedWorkerID: worker}
}

func TestTransitionGraph(t *testing.T) {
	legal := []struct{ from, to Status }{
		{StatusPending, StatusApproved},
		{StatusPending, StatusRejected},
		{StatusApproved, StatusAssigned},
		{StatusAssigned, StatusAssigned},
		{StatusAssigned, StatusInProgress},
		{StatusInProgress, StatusCompleted},
	}
	all := []Status{StatusPending, StatusApproved, StatusAssigned, StatusInProgress, StatusCompleted, StatusRejected}

	isLegal := func(from, to Status) bool {
		for _, e := range legal {
			if e.from == from && e.to == to {
				return true
			}
		}
		return false
	}

	for _, from := range all {
		for _, to := range all {
			if got := CanTransition(from, to); got != isLegal(from, to) {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, !got)
			}
		}
	}
}

func TestValidateApprove(t *testing.T) {
	tests := []struct {
		name       string
		report     *Report
		actor      Actor
		department string
		priority   Priority
		wantErr    error
		wantITE    bool
	}{
		{
			name:       "admin approves pending",
			report:     pendingReport(),
			actor:      admin,
			department: "roads",
			priority:   PriorityHigh,
		}, {
			name:       "missing department",
			report:     pendingReport(),
			actor:      admin,
			department: "",
			priority:   PriorityMedium,
			wantErr:    ErrDepartmentRequired,
		}, {
			name:       "citizen cannot approve",
			report:     pendingReport(),
			actor:      citizen,
			department: "roads",
			priority:   PriorityMedium,
			wantITE:    true,
		}, {
			name:       "already approved",
			report:     roadsReport(StatusApproved, ""),
			actor:      admin,
			department: "roads",
			priority:   PriorityMedium,
			wantITE:    true,
		}, {
			name:       "rejected is terminal",
			report:     &Report{Status: StatusRejected},
			actor:      admin,
			department: "roads",
			priority:   PriorityMedium,
			wantITE:    true,
		}, {
			name:       "unknown priority",
			report:     pendingReport(),
			actor:      admin,
			department: "roads",
			priority:   Priority("asap"),
			wantITE:    true,
		},
	}

	for _, test := range tests {
		err := ValidateApprove(test.report, test.actor, test.department, test.priority)
		checkErr(t, test.name, err, test.wantErr, test.wantITE)
	}
}

func TestValidateReject(t *testing.T) {
	if err := ValidateReject(pendingReport(), admin); err != nil {
		t.Errorf("admin reject pending: unexpected error %v", err)
	}
	if err := ValidateReject(pendingReport(), roadsMgr); !IsInvalidTransition(err) {
		t.Errorf("department reject: want InvalidTransition, got %v", err)
	}
	if err := ValidateReject(roadsReport(StatusApproved, ""), admin); !IsInvalidTransition(err) {
		t.Errorf("reject approved: want InvalidTransition, got %v", err)
	}
}

func TestValidateAssign(t *testing.T) {
	roadsWorker := &Worker{ID: "w1", DepartmentID: "roads", Status: WorkerAvailable}
	busyRoads := &Worker{ID: "w2", DepartmentID: "roads", Status: WorkerBusy}
	offline := &Worker{ID: "w3", DepartmentID: "roads", Status: WorkerOffline}
	waterWorker := &Worker{ID: "w4", DepartmentID: "water", Status: WorkerAvailable}

	tests := []struct {
		name    string
		report  *Report
		actor   Actor
		worker  *Worker
		wantErr error
		wantITE bool
	}{
		{name: "admin assigns", report: roadsReport(StatusApproved, ""), actor: admin, worker: roadsWorker},
		{name: "owning department assigns", report: roadsReport(StatusApproved, ""), actor: roadsMgr, worker: roadsWorker},
		{name: "busy worker is a legal manual override", report: roadsReport(StatusApproved, ""), actor: admin, worker: busyRoads},
		{name: "reassign while assigned", report: roadsReport(StatusAssigned, "w1"), actor: roadsMgr, worker: busyRoads},
		{name: "foreign department cannot assign", report: roadsReport(StatusApproved, ""), actor: waterMgr, worker: roadsWorker, wantITE: true},
		{name: "worker from other department", report: roadsReport(StatusApproved, ""), actor: admin, worker: waterWorker, wantErr: ErrWorkerDepartmentMismatch},
		{name: "offline worker", report: roadsReport(StatusApproved, ""), actor: admin, worker: offline, wantErr: ErrWorkerUnavailable},
		{name: "pending cannot be assigned directly", report: pendingReport(), actor: admin, worker: roadsWorker, wantITE: true},
		{name: "in-progress cannot be reassigned", report: roadsReport(StatusInProgress, "w1"), actor: admin, worker: roadsWorker, wantITE: true},
	}

	for _, test := range tests {
		err := ValidateAssign(test.report, test.actor, test.worker)
		checkErr(t, test.name, err, test.wantErr, test.wantITE)
	}
}

func TestValidateStartAndComplete(t *testing.T) {
	assignedWorker := Actor{ID: "w1", Role: RoleWorker, DepartmentID: "roads"}
	otherWorker := Actor{ID: "w9", Role: RoleWorker, DepartmentID: "roads"}

	if err := ValidateStart(roadsReport(StatusAssigned, "w1"), assignedWorker); err != nil {
		t.Errorf("assigned worker starts: unexpected error %v", err)
	}
	if err := ValidateStart(roadsReport(StatusAssigned, "w1"), roadsMgr); err != nil {
		t.Errorf("owning department starts: unexpected error %v", err)
	}
	if err := ValidateStart(roadsReport(StatusAssigned, "w1"), otherWorker); !IsInvalidTransition(err) {
		t.Errorf("unassigned worker starts: want InvalidTransition, got %v", err)
	}
	if err := ValidateStart(roadsReport(StatusApproved, ""), roadsMgr); !IsInvalidTransition(err) {
		t.Errorf("start before assignment: want InvalidTransition, got %v", err)
	}
	if err := ValidateStart(roadsReport(StatusAssigned, "w1"), admin); !IsInvalidTransition(err) {
		t.Errorf("admin start: want InvalidTransition, got %v", err)
	}

	if err := ValidateComplete(roadsReport(StatusInProgress, "w1"), assignedWorker); err != nil {
		t.Errorf("assigned worker completes: unexpected error %v", err)
	}
	if err := ValidateComplete(roadsReport(StatusAssigned, "w1"), assignedWorker); !IsInvalidTransition(err) {
		t.Errorf("complete before start: want InvalidTransition, got %v", err)
	}
	if err := ValidateComplete(roadsReport(StatusCompleted, "w1"), assignedWorker); !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("retry completion: want ErrAlreadyCompleted, got %v", err)
	}
}

func checkErr(t *testing.T, name string, err, wantErr error, wantITE bool) {
	t.Helper()
	switch {
	case wantErr != nil:
		if !errors.Is(err, wantErr) {
			t.Errorf("%s: want %v, got %v", name, wantErr, err)
		}
	case wantITE:
		if !IsInvalidTransition(err) {
			t.Errorf("%s: want InvalidTransitionError, got %v", name, err)
		}
	default:
		if err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
		}
	}
}
