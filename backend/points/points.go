// Package points holds the reward economy constants and the badge
// tiers. Point totals are never stored; they are always the sum of a
// user's ledger entries.
package points

const (
	// Credited with the report insert, in the same transaction.
	SubmissionPoints = 3
	// Credited on the transition to completed, at most once per
	// (user, report).
	CompletionBonus = 2
)

// Reason tags a ledger entry. At most one entry per (user, report,
// reason) exists; the uniqueness is enforced by the store.
type Reason string

const (
	ReasonSubmission      Reason = "submission"
	ReasonCompletionBonus Reason = "completion_bonus"
)

type Badge string

const (
	BadgeCitizen  Badge = "citizen"
	BadgeBronze   Badge = "bronze"
	BadgeSilver   Badge = "silver"
	BadgeGold     Badge = "gold"
	BadgePlatinum Badge = "platinum"
)

// BadgeFor is a pure function of the point total, recomputed on read.
func BadgeFor(total int) Badge {
	switch {
	case total >= 500:
		return BadgePlatinum
	case total >= 300:
		return BadgeGold
	case total >= 200:
		return BadgeSilver
	case total >= 100:
		return BadgeBronze
	default:
		return BadgeCitizen
	}
}
