package icsfeed

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"venue-calendar/internal/domain/event"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

const (
	propEventCategory = "X-EVENT-CATEGORY"
	propClientID      = "X-CLIENT-ID"
)

// SkippedEvent records a VEVENT that could not become a single-day record.
type SkippedEvent struct {
	UID    string
	Reason string
}

type ParseResult struct {
	Records []event.Record
	Skipped []SkippedEvent
}

// Parse decodes one VCALENDAR. Times are converted to loc before the date and
// time of day are taken. Multi-day events are skipped; all-day events cover
// 00:00-24:00 of their day. RRULEs are not expanded.
func Parse(r io.Reader, loc *time.Location) (ParseResult, error) {
	if loc == nil {
		loc = time.UTC
	}

	cal, err := ical.NewDecoder(r).Decode()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ParseResult{}, errors.New("empty ICS body")
		}
		return ParseResult{}, fmt.Errorf("decode ics: %w", err)
	}

	var result ParseResult
	for _, ev := range cal.Events() {
		rec, err := parseVEvent(ev, loc)
		if err != nil {
			uid, _ := ev.Props.Text(ical.PropUID)
			result.Skipped = append(result.Skipped, SkippedEvent{UID: uid, Reason: err.Error()})
			continue
		}
		result.Records = append(result.Records, rec)
	}
	return result, nil
}

func parseVEvent(ev ical.Event, loc *time.Location) (event.Record, error) {
	start, err := ev.DateTimeStart(loc)
	if err != nil {
		return event.Record{}, fmt.Errorf("DTSTART: %w", err)
	}
	if start.IsZero() {
		return event.Record{}, errors.New("missing DTSTART")
	}
	end, err := ev.DateTimeEnd(loc)
	if err != nil {
		return event.Record{}, fmt.Errorf("DTEND: %w", err)
	}
	start, end = start.In(loc), end.In(loc)

	day := event.DateOf(start)
	startClock := event.ClockOf(start)
	var endClock event.TimeOfDay
	switch endDay := event.DateOf(end); {
	case endDay == day:
		endClock = event.ClockOf(end)
	case endDay == day.AddDays(1) && event.ClockOf(end) == 0:
		endClock = event.EndOfDay
	default:
		return event.Record{}, fmt.Errorf("multi-day event %s..%s", day, endDay)
	}

	slot, err := event.NewTimeRange(startClock, endClock)
	if err != nil {
		return event.Record{}, err
	}

	summary, _ := ev.Props.Text(ical.PropSummary)
	uid, _ := ev.Props.Text(ical.PropUID)
	if uid == "" {
		uid = uuid.NewSHA1(uuid.NameSpaceURL, []byte(summary+"|"+start.Format(time.RFC3339))).String()
	}

	status := event.StatusConfirmed
	if raw, _ := ev.Props.Text(ical.PropStatus); raw != "" {
		if parsed, perr := event.ParseStatus(raw); perr == nil {
			status = parsed
		} else {
			status = event.StatusPending
		}
	}

	// ORGANIZER is a CAL-ADDRESS, not TEXT
	var organizer string
	if prop := ev.Props.Get(ical.PropOrganizer); prop != nil {
		organizer = prop.Value
	}
	clientID, _ := ev.Props.Text(propClientID)

	return event.NewRecord(event.RecordParams{
		ID:          uid,
		Date:        day,
		Slot:        slot,
		Category:    categoryOf(ev),
		Status:      status,
		Title:       summary,
		OrganizerID: strings.TrimPrefix(strings.ToLower(organizer), "mailto:"),
		ClientID:    clientID,
	})
}

// categoryOf prefers X-EVENT-CATEGORY, then CATEGORIES. Every entry of every
// CATEGORIES line is checked and any wedding wins, so a wedding listed after
// another category still blocks its day.
func categoryOf(ev ical.Event) event.Category {
	if raw, _ := ev.Props.Text(propEventCategory); raw != "" {
		return event.NormalizeCategory(raw)
	}

	chosen := event.CategoryOther
	for _, prop := range ev.Props.Values(ical.PropCategories) {
		for _, item := range categoryItems(prop) {
			c := event.NormalizeCategory(item)
			if c.IsWedding() {
				return c
			}
			if chosen == event.CategoryOther {
				chosen = c
			}
		}
	}
	return chosen
}

func categoryItems(prop ical.Prop) []string {
	items, err := prop.TextList()
	if err != nil {
		// non-TEXT value type; fall back to the raw list
		return strings.Split(prop.Value, ",")
	}
	return items
}
