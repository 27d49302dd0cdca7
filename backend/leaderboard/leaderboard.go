// Package leaderboard turns per-profile point rows into ranked
// standings. The identity store is known to hold multiple profile
// records for the same email; entries are merged by email before
// ranking so no identity is counted twice.
package leaderboard

import (
	"sort"
	"time"

	"civictrack/backend/points"
)

// UserRow is one profile record with its derived point total and
// submission count, as produced by the store.
type UserRow struct {
	ID               string
	Email            string
	Name             string
	CreatedAt        time.Time
	Points           int
	ReportsSubmitted int
}

// Entry is one ranked standing after merging.
type Entry struct {
	UserID           string       `json:"user_id"`
	Email            string       `json:"email"`
	Name             string       `json:"name"`
	Points           int          `json:"points"`
	ReportsSubmitted int          `json:"reports_submitted"`
	Rank             int          `json:"rank"`
	Badge            points.Badge `json:"badge"`
}

// Rank merges rows by email (summing points and submission counts,
// keeping the oldest profile as the displayed identity), sorts by
// points descending with ties broken by the earliest account creation
// time, and assigns 1-based ranks. Rows without an email have no stable
// identity key and are skipped.
func Rank(rows []UserRow) []Entry {
	merged := make(map[string]*UserRow)
	for _, row := range rows {
		if row.Email == "" {
			continue
		}
		existing, ok := merged[row.Email]
		if !ok {
			r := row
			merged[row.Email] = &r
			continue
		}
		existing.Points += row.Points
		existing.ReportsSubmitted += row.ReportsSubmitted
		if row.CreatedAt.Before(existing.CreatedAt) {
			existing.ID = row.ID
			existing.Name = row.Name
			existing.CreatedAt = row.CreatedAt
		}
	}

	entries := make([]Entry, 0, len(merged))
	for _, row := range merged {
		entries = append(entries, Entry{
			UserID:           row.ID,
			Email:            row.Email,
			Name:             row.Name,
			Points:           row.Points,
			ReportsSubmitted: row.ReportsSubmitted,
			Badge:            points.BadgeFor(row.Points),
		})
	}

	createdAt := func(e Entry) time.Time { return merged[e.Email].CreatedAt }
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		ti, tj := createdAt(entries[i]), createdAt(entries[j])
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return entries[i].Email < entries[j].Email
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// Top returns the first n entries of a full ranking, or all of them
// when n is zero or exceeds the ranking size.
func Top(entries []Entry, n int) []Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}
