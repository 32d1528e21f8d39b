package calendar

import (
	"slices"

	"venue-calendar/internal/domain/event"
)

type DayAggregate struct {
	Date          event.Date
	EventCount    int
	HasWedding    bool
	CategoryTally map[event.Category]int
	HeatLevel     HeatLevel
}

// Aggregate summarizes events per day for every date in r. Dates without
// events get a Free entry; cancelled events and events outside r are dropped.
func Aggregate(r DateRange, events []event.Record) map[event.Date]DayAggregate {
	days := make(map[event.Date]DayAggregate, r.Days())
	for _, d := range r.Dates() {
		days[d] = DayAggregate{
			Date:          d,
			CategoryTally: map[event.Category]int{},
			HeatLevel:     HeatFree,
		}
	}

	for _, rec := range events {
		if !rec.IsActive() {
			continue
		}
		day, ok := days[rec.Date()]
		if !ok {
			continue
		}
		day.EventCount++
		day.CategoryTally[rec.Category()]++
		if rec.IsWedding() {
			day.HasWedding = true
		}
		days[rec.Date()] = day
	}

	for d, day := range days {
		day.HeatLevel = HeatFor(day.EventCount, day.HasWedding)
		days[d] = day
	}
	return days
}

// Grid is an aggregation result for one range, ready for rendering.
type Grid struct {
	Range DateRange
	Days  map[event.Date]DayAggregate
}

func NewGrid(r DateRange, events []event.Record) *Grid {
	return &Grid{Range: r, Days: Aggregate(r, events)}
}

// Ordered returns the aggregates in ascending date order.
func (g *Grid) Ordered() []DayAggregate {
	out := make([]DayAggregate, 0, len(g.Days))
	for _, day := range g.Days {
		out = append(out, day)
	}
	slices.SortFunc(out, func(a, b DayAggregate) int { return a.Date.Compare(b.Date) })
	return out
}

// Summary counts days per heat level; every level is present.
func (g *Grid) Summary() map[HeatLevel]int {
	out := make(map[HeatLevel]int, len(heatNames))
	for _, level := range HeatLevels() {
		out[level] = 0
	}
	for _, day := range g.Days {
		out[day.HeatLevel]++
	}
	return out
}
