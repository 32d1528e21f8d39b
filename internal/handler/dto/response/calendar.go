package response

import (
	"time"

	"venue-calendar/internal/domain/availability"
	"venue-calendar/internal/domain/calendar"
	"venue-calendar/internal/domain/event"
	"venue-calendar/internal/usecase/queries"
)

type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	OrganizerID string `json:"organizerId,omitempty"`
	ClientID    string `json:"clientId,omitempty"`
}

type CandidateResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Category  string `json:"category"`
	ExcludeID string `json:"excludeId,omitempty"`
}

type ConflictResponse struct {
	Candidate           CandidateResponse `json:"candidate"`
	HasConflict         bool              `json:"hasConflict"`
	HasWeddingConflict  bool              `json:"hasWeddingConflict"`
	HasOrdinaryConflict bool              `json:"hasOrdinaryConflict"`
	Rules               []string          `json:"rules"`
	OverlappingEvents   []EventResponse   `json:"overlappingEvents"`
	Seq                 uint64            `json:"seq,omitempty"`
}

type DayAggregateResponse struct {
	Date          string         `json:"date"`
	EventCount    int            `json:"eventCount"`
	HasWedding    bool           `json:"hasWedding"`
	CategoryTally map[string]int `json:"categoryTally"`
	HeatLevel     string         `json:"heatLevel"`
}

type CalendarResponse struct {
	Start   string                 `json:"start"`
	End     string                 `json:"end"`
	Days    []DayAggregateResponse `json:"days"`
	Summary map[string]int         `json:"summary"`
	Seq     uint64                 `json:"seq,omitempty"`
}

type DayDetailResponse struct {
	Aggregate DayAggregateResponse `json:"aggregate"`
	Events    []EventResponse      `json:"events"`
}

func FromRecord(rec event.Record) EventResponse {
	return EventResponse{
		ID:          rec.ID(),
		Title:       rec.Title(),
		Date:        rec.Date().String(),
		StartTime:   rec.Start().String(),
		EndTime:     rec.End().String(),
		Category:    string(rec.Category()),
		Status:      string(rec.Status()),
		OrganizerID: rec.OrganizerID(),
		ClientID:    rec.ClientID(),
	}
}

func fromRecords(recs []event.Record) []EventResponse {
	out := make([]EventResponse, len(recs))
	for i, rec := range recs {
		out[i] = FromRecord(rec)
	}
	return out
}

func FromConflictCheck(cc *queries.ConflictCheck) *ConflictResponse {
	c := cc.Candidate
	return &ConflictResponse{
		Candidate: CandidateResponse{
			Date:      c.Date().String(),
			StartTime: c.Slot().Start().String(),
			EndTime:   c.Slot().End().String(),
			Category:  string(c.Category()),
			ExcludeID: c.ExcludeID(),
		},
		HasConflict:         cc.Verdict.HasConflict,
		HasWeddingConflict:  cc.Verdict.HasWeddingConflict,
		HasOrdinaryConflict: cc.Verdict.HasOrdinaryConflict,
		Rules:               RulesOf(cc.Verdict),
		OverlappingEvents:   fromRecords(cc.Verdict.OverlappingEvents),
		Seq:                 cc.Seq,
	}
}

func FromDayAggregate(day calendar.DayAggregate) DayAggregateResponse {
	tally := make(map[string]int, len(day.CategoryTally))
	for cat, n := range day.CategoryTally {
		tally[string(cat)] = n
	}
	return DayAggregateResponse{
		Date:          day.Date.String(),
		EventCount:    day.EventCount,
		HasWedding:    day.HasWedding,
		CategoryTally: tally,
		HeatLevel:     day.HeatLevel.String(),
	}
}

func FromCalendarView(v *queries.CalendarView) *CalendarResponse {
	ordered := v.Grid.Ordered()
	days := make([]DayAggregateResponse, len(ordered))
	for i, day := range ordered {
		days[i] = FromDayAggregate(day)
	}
	summary := make(map[string]int)
	for level, n := range v.Grid.Summary() {
		summary[level.String()] = n
	}
	return &CalendarResponse{
		Start:   v.Grid.Range.Start().String(),
		End:     v.Grid.Range.End().String(),
		Days:    days,
		Summary: summary,
		Seq:     v.Seq,
	}
}

func FromDayDetail(d *queries.DayDetail) *DayDetailResponse {
	return &DayDetailResponse{
		Aggregate: FromDayAggregate(d.Aggregate),
		Events:    fromRecords(d.Events),
	}
}

func RulesOf(v availability.Verdict) []string {
	out := make([]string, len(v.Rules))
	for i, r := range v.Rules {
		out[i] = string(r)
	}
	return out
}

type HealthResponse struct {
	Status             string     `json:"status"`
	Source             string     `json:"source"`
	SnapshotLoadedAt   *time.Time `json:"snapshotLoadedAt,omitempty"`
	SnapshotAgeSeconds int64      `json:"snapshotAgeSeconds,omitempty"`
}
