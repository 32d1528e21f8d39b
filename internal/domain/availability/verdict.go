package availability

import "venue-calendar/internal/domain/event"

// Rule names a booking rule a candidate violated.
type Rule string

const (
	// RuleWeddingExclusivity: a wedding already occupies the whole day.
	RuleWeddingExclusivity Rule = "wedding_exclusivity"
	// RuleWeddingSharing: a wedding candidate cannot share the day with any event.
	RuleWeddingSharing Rule = "wedding_sharing"
	// RuleTimeOverlap: the candidate window overlaps an ordinary event.
	RuleTimeOverlap Rule = "time_overlap"
)

type Verdict struct {
	HasConflict         bool
	HasWeddingConflict  bool
	HasOrdinaryConflict bool
	Rules               []Rule
	// OverlappingEvents are the events responsible, ordered by start time then id.
	OverlappingEvents []event.Record
}

func (v Verdict) Violates(rule Rule) bool {
	for _, r := range v.Rules {
		if r == rule {
			return true
		}
	}
	return false
}

func (v Verdict) IsAvailable() bool {
	return !v.HasConflict
}
