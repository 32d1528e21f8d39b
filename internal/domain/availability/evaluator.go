package availability

import (
	"slices"

	"venue-calendar/internal/domain/event"
)

// Evaluate checks a candidate against the events of its day. Events on other
// dates, cancelled events and the excluded event are ignored. A zero Candidate
// is rejected with ErrBadWindow.
func Evaluate(c Candidate, sameDay []event.Record) (Verdict, error) {
	if c.date.IsZero() || !c.slot.IsValid() {
		return Verdict{}, ErrBadWindow
	}

	relevant := make([]event.Record, 0, len(sameDay))
	for _, rec := range sameDay {
		if rec.Date() != c.date || !rec.IsActive() || c.excludes(rec) {
			continue
		}
		relevant = append(relevant, rec)
	}

	var v Verdict
	responsible := make(map[string]event.Record)

	for _, rec := range relevant {
		if rec.IsWedding() {
			v.HasWeddingConflict = true
			responsible[rec.ID()] = rec
		}
	}
	if v.HasWeddingConflict {
		v.Rules = append(v.Rules, RuleWeddingExclusivity)
	}

	if c.IsWedding() {
		if len(relevant) > 0 {
			v.HasOrdinaryConflict = true
			v.Rules = append(v.Rules, RuleWeddingSharing)
			for _, rec := range relevant {
				responsible[rec.ID()] = rec
			}
		}
	} else {
		overlapped := false
		for _, rec := range relevant {
			if rec.IsWedding() {
				continue
			}
			if c.slot.Overlaps(rec.Slot()) {
				overlapped = true
				responsible[rec.ID()] = rec
			}
		}
		if overlapped {
			v.HasOrdinaryConflict = true
			v.Rules = append(v.Rules, RuleTimeOverlap)
		}
	}

	v.HasConflict = v.HasWeddingConflict || v.HasOrdinaryConflict
	v.OverlappingEvents = make([]event.Record, 0, len(responsible))
	for _, rec := range responsible {
		v.OverlappingEvents = append(v.OverlappingEvents, rec)
	}
	slices.SortFunc(v.OverlappingEvents, event.ByStart)

	return v, nil
}
