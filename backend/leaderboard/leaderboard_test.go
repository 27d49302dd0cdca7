package leaderboard

import (
	"testing"
	"time"

	"civictrack/backend/points"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestRankMergesDuplicateEmails(t *testing.T) {
	rows := []UserRow{
		{ID: "u1", Email: "asha@example.com", Name: "Asha", CreatedAt: t0, Points: 10, ReportsSubmitted: 3},
		{ID: "u2", Email: "asha@example.com", Name: "Asha K", CreatedAt: t0.Add(time.Hour), Points: 15, ReportsSubmitted: 4},
		{ID: "u3", Email: "ravi@example.com", Name: "Ravi", CreatedAt: t0.Add(2 * time.Hour), Points: 12, ReportsSubmitted: 4},
	}

	entries := Rank(rows)
	if len(entries) != 2 {
		t.Fatalf("want 2 entries after merge, got %d", len(entries))
	}
	top := entries[0]
	if top.Email != "asha@example.com" || top.Points != 25 || top.ReportsSubmitted != 7 {
		t.Errorf("merged entry = %+v, want asha with 25 points and 7 reports", top)
	}
	if top.UserID != "u1" || top.Name != "Asha" {
		t.Errorf("merged identity should come from the oldest profile, got %q/%q", top.UserID, top.Name)
	}
	if top.Rank != 1 || entries[1].Rank != 2 {
		t.Errorf("ranks = %d, %d, want 1, 2", top.Rank, entries[1].Rank)
	}
}

func TestRankTieBreakByAccountAge(t *testing.T) {
	rows := []UserRow{
		{ID: "u1", Email: "new@example.com", CreatedAt: t0.Add(time.Hour), Points: 50},
		{ID: "u2", Email: "old@example.com", CreatedAt: t0, Points: 50},
	}
	entries := Rank(rows)
	if entries[0].Email != "old@example.com" {
		t.Errorf("tie should rank the older account first, got %q", entries[0].Email)
	}
}

func TestRankSkipsRowsWithoutEmail(t *testing.T) {
	rows := []UserRow{
		{ID: "u1", Email: "", CreatedAt: t0, Points: 99},
		{ID: "u2", Email: "a@example.com", CreatedAt: t0, Points: 1},
	}
	entries := Rank(rows)
	if len(entries) != 1 || entries[0].Email != "a@example.com" {
		t.Errorf("rows without an email must be skipped, got %+v", entries)
	}
}

func TestRankBadges(t *testing.T) {
	rows := []UserRow{
		{ID: "u1", Email: "a@example.com", CreatedAt: t0, Points: 350},
		{ID: "u2", Email: "b@example.com", CreatedAt: t0, Points: 3},
	}
	entries := Rank(rows)
	if entries[0].Badge != points.BadgeGold {
		t.Errorf("350 points should be gold, got %s", entries[0].Badge)
	}
	if entries[1].Badge != points.BadgeCitizen {
		t.Errorf("3 points should be citizen, got %s", entries[1].Badge)
	}
}

func TestTop(t *testing.T) {
	rows := []UserRow{
		{ID: "u1", Email: "a@example.com", CreatedAt: t0, Points: 3},
		{ID: "u2", Email: "b@example.com", CreatedAt: t0, Points: 2},
		{ID: "u3", Email: "c@example.com", CreatedAt: t0, Points: 1},
	}
	entries := Rank(rows)
	if got := Top(entries, 2); len(got) != 2 || got[0].Email != "a@example.com" {
		t.Errorf("Top(2) = %+v", got)
	}
	if got := Top(entries, 0); len(got) != 3 {
		t.Errorf("Top(0) should return the full ranking, got %d entries", len(got))
	}
	if got := Top(entries, 10); len(got) != 3 {
		t.Errorf("Top(10) should cap at the ranking size, got %d entries", len(got))
	}
}
