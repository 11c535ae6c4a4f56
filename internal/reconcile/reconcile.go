// Package reconcile merges the fetched event catalog with the viewer's
// booking list: per-session booked state, time-window filtering of
// bookings, and the bookable-events cut-off.
package reconcile

import (
	"time"

	"eventdesk/internal/domain"
)

type bookingKey struct {
	eventID   int64
	sessionID int64
}

// Index answers "does the viewer hold a booking for this session" in
// O(1). A session is booked iff some booking matches BOTH its session
// id and its event's id.
type Index struct {
	booked map[bookingKey]struct{}
}

func NewIndex(bookings []domain.Booking) Index {
	booked := make(map[bookingKey]struct{}, len(bookings))
	for _, b := range bookings {
		booked[bookingKey{eventID: b.EventID, sessionID: b.SessionID}] = struct{}{}
	}
	return Index{booked: booked}
}

func (i Index) Booked(eventID, sessionID int64) bool {
	_, ok := i.booked[bookingKey{eventID: eventID, sessionID: sessionID}]
	return ok
}

func (i Index) add(b domain.Booking) {
	i.booked[bookingKey{eventID: b.EventID, sessionID: b.SessionID}] = struct{}{}
}

// FilterBookings keeps the bookings whose event date falls in the
// requested window relative to now. All comparisons are between UTC
// calendar days, not instants: an event dated today is "present"
// whatever the wall-clock time, never "past" and never "upcoming".
// Filtering is idempotent for every mode.
func FilterBookings(bookings []domain.Booking, now time.Time, mode domain.TimeFilter) []domain.Booking {
	if mode == domain.FilterAll {
		return bookings
	}

	kept := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if inWindow(b.Event.Date, now, mode) {
			kept = append(kept, b)
		}
	}
	return kept
}

func inWindow(date, now time.Time, mode domain.TimeFilter) bool {
	day, today := startOfDay(date), startOfDay(now)
	switch mode {
	case domain.FilterPast:
		return day.Before(today)
	case domain.FilterPresent:
		return day.Equal(today)
	case domain.FilterUpcoming:
		return day.After(today)
	default:
		return true
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// VisibleEvents drops events dated on a calendar day strictly before
// now's. Past events are never offered for new booking, whatever the
// active booking filter; today's remain bookable until midnight.
func VisibleEvents(events []domain.Event, now time.Time) []domain.Event {
	today := startOfDay(now)
	visible := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if !startOfDay(e.Date).Before(today) {
			visible = append(visible, e)
		}
	}
	return visible
}

// Model is one dashboard mount's worth of merged state: the catalog
// and booking list fetched for it, reconciled against a fixed now.
// It is rebuilt from fresh fetches on every mount, never cached.
type Model struct {
	Events   []domain.Event
	Bookings []domain.Booking

	now   time.Time
	index Index
}

func NewModel(events []domain.Event, bookings []domain.Booking, now time.Time) *Model {
	return &Model{
		Events:   events,
		Bookings: bookings,
		now:      now,
		index:    NewIndex(bookings),
	}
}

func (m *Model) Booked(eventID, sessionID int64) bool {
	return m.index.Booked(eventID, sessionID)
}

// Bookable is the catalog with past events cut off.
func (m *Model) Bookable() []domain.Event {
	return VisibleEvents(m.Events, m.now)
}

func (m *Model) Filtered(mode domain.TimeFilter) []domain.Booking {
	return FilterBookings(m.Bookings, m.now, mode)
}

// AddBooking appends a booking the collaborator API just created, so
// the view flips to "booked" without a refetch. No dedup here: the API
// is the one that rejects double booking.
func (m *Model) AddBooking(b domain.Booking) {
	m.Bookings = append(m.Bookings, b)
	m.index.add(b)
}

// Orphans returns the bookings whose (event, session) pair matches
// nothing in the fetched catalog. They render unbooked; callers surface
// the inconsistency instead of resolving it silently.
func (m *Model) Orphans() []domain.Booking {
	known := make(map[bookingKey]struct{})
	for _, e := range m.Events {
		for _, s := range e.Sessions {
			known[bookingKey{eventID: e.ID, sessionID: s.ID}] = struct{}{}
		}
	}

	var orphans []domain.Booking
	for _, b := range m.Bookings {
		if _, ok := known[bookingKey{eventID: b.EventID, sessionID: b.SessionID}]; !ok {
			orphans = append(orphans, b)
		}
	}
	return orphans
}
