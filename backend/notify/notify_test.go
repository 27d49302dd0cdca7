package notify

import (
	"testing"

	"civictrack/backend/lifecycle"
)

func TestRoutingKey(t *testing.T) {
	tests := []struct {
		action   string
		expected string
	}{
		{lifecycle.ActionApproved, "report.approved"},
		{lifecycle.ActionRejected, "report.rejected"},
		{lifecycle.ActionWorkerAssigned, "report.worker_assigned"},
		{lifecycle.ActionStarted, "report.started"},
		{lifecycle.ActionCompleted, "report.completed"},
	}
	for _, test := range tests {
		e := &lifecycle.Event{ReportSeq: 1, Action: test.action}
		if got := RoutingKey(e); got != test.expected {
			t.Errorf("RoutingKey(%s): got %q, want %q", test.action, got, test.expected)
		}
	}
}
