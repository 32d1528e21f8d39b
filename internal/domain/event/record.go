package event

import "strings"

// Record is a read-only snapshot of a booked event as supplied by a repository.
type Record struct {
	id          string
	date        Date
	slot        TimeRange
	category    Category
	status      Status
	title       string
	organizerID string
	clientID    string
}

type RecordParams struct {
	ID          string
	Date        Date
	Slot        TimeRange
	Category    Category
	Status      Status
	Title       string
	OrganizerID string
	ClientID    string
}

// NewRecord validates a snapshot at the repository boundary.
func NewRecord(p RecordParams) (Record, error) {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return Record{}, ErrEmptyID
	}
	if p.Date.IsZero() {
		return Record{}, ErrInvalidDate
	}
	if !p.Slot.IsValid() {
		return Record{}, ErrInvalidTimeRange
	}
	if !p.Status.IsValid() {
		return Record{}, ErrUnknownStatus
	}
	category := p.Category
	if !category.IsValid() {
		category = NormalizeCategory(string(category))
	}
	return Record{
		id:          id,
		date:        p.Date,
		slot:        p.Slot,
		category:    category,
		status:      p.Status,
		title:       p.Title,
		organizerID: p.OrganizerID,
		clientID:    p.ClientID,
	}, nil
}

func (r Record) ID() string          { return r.id }
func (r Record) Date() Date          { return r.date }
func (r Record) Slot() TimeRange     { return r.slot }
func (r Record) Start() TimeOfDay    { return r.slot.start }
func (r Record) End() TimeOfDay      { return r.slot.end }
func (r Record) Category() Category  { return r.category }
func (r Record) Status() Status      { return r.status }
func (r Record) Title() string       { return r.title }
func (r Record) OrganizerID() string { return r.organizerID }
func (r Record) ClientID() string    { return r.clientID }

func (r Record) IsWedding() bool   { return r.category.IsWedding() }
func (r Record) IsCancelled() bool { return r.status.IsCancelled() }

// IsActive reports whether the record takes part in availability decisions.
func (r Record) IsActive() bool { return !r.status.IsCancelled() }

// ByStart orders records by start time, then id.
func ByStart(a, b Record) int {
	if a.slot.start != b.slot.start {
		return cmpInt(int(a.slot.start), int(b.slot.start))
	}
	return strings.Compare(a.id, b.id)
}
