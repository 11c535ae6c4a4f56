package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/domain"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestIndex_Booked_MatchesBothIDs(t *testing.T) {
	bookings := []domain.Booking{
		{ID: 1, EventID: 1, SessionID: 10},
		{ID: 2, EventID: 2, SessionID: 20},
	}
	idx := NewIndex(bookings)

	assert.True(t, idx.Booked(1, 10))
	assert.True(t, idx.Booked(2, 20))

	// Matching session id under the wrong event (or vice versa) is not
	// a booking for that session.
	assert.False(t, idx.Booked(2, 10))
	assert.False(t, idx.Booked(1, 20))
	assert.False(t, idx.Booked(3, 30))
}

func TestIndex_UnrelatedFieldsDoNotFlipResult(t *testing.T) {
	bookings := []domain.Booking{
		{ID: 1, EventID: 1, SessionID: 10, Status: domain.BookingStatusConfirmed},
	}
	assert.True(t, NewIndex(bookings).Booked(1, 10))

	bookings[0].Status = domain.BookingStatusCancelled
	bookings[0].ID = 999
	bookings[0].UserID = 7
	assert.True(t, NewIndex(bookings).Booked(1, 10))
	assert.False(t, NewIndex(bookings).Booked(1, 11))
}

func TestFilterBookings_Windows(t *testing.T) {
	now := day("2025-07-13")
	bookings := []domain.Booking{
		{ID: 1, Event: domain.Event{ID: 1, Date: day("2025-07-10")}},
		{ID: 2, Event: domain.Event{ID: 2, Date: day("2025-07-13")}},
		{ID: 3, Event: domain.Event{ID: 3, Date: day("2025-07-20")}},
	}

	past := FilterBookings(bookings, now, domain.FilterPast)
	require.Len(t, past, 1)
	assert.EqualValues(t, 1, past[0].ID)

	present := FilterBookings(bookings, now, domain.FilterPresent)
	require.Len(t, present, 1)
	assert.EqualValues(t, 2, present[0].ID)

	upcoming := FilterBookings(bookings, now, domain.FilterUpcoming)
	require.Len(t, upcoming, 1)
	assert.EqualValues(t, 3, upcoming[0].ID)

	assert.Len(t, FilterBookings(bookings, now, domain.FilterAll), 3)
}

func TestFilterBookings_PresentComparesCalendarDayNotInstant(t *testing.T) {
	now := day("2025-07-13").Add(15 * time.Hour) // afternoon
	bookings := []domain.Booking{
		{ID: 1, Event: domain.Event{Date: day("2025-07-13")}}, // midnight same day
	}

	present := FilterBookings(bookings, now, domain.FilterPresent)
	assert.Len(t, present, 1)
}

func TestFilterBookings_SameDayWindowsAfternoonNow(t *testing.T) {
	// The windows partition by calendar day: with an afternoon now, a
	// booking for today is exactly "present", never "past" or
	// "upcoming", even though midnight-today is before the instant.
	now := day("2025-07-13").Add(15 * time.Hour)
	bookings := []domain.Booking{
		{ID: 1, Event: domain.Event{Date: day("2025-07-13")}},
	}

	assert.Empty(t, FilterBookings(bookings, now, domain.FilterPast))
	assert.Len(t, FilterBookings(bookings, now, domain.FilterPresent), 1)
	assert.Empty(t, FilterBookings(bookings, now, domain.FilterUpcoming))
}

func TestFilterBookings_Idempotent(t *testing.T) {
	now := day("2025-07-13")
	bookings := []domain.Booking{
		{ID: 1, Event: domain.Event{Date: day("2025-07-10")}},
		{ID: 2, Event: domain.Event{Date: day("2025-07-20")}},
		{ID: 3, Event: domain.Event{Date: day("2025-08-01")}},
	}

	once := FilterBookings(bookings, now, domain.FilterUpcoming)
	twice := FilterBookings(once, now, domain.FilterUpcoming)
	assert.Equal(t, once, twice)
}

func TestVisibleEvents_PastEventsNeverBookable(t *testing.T) {
	now := day("2025-07-13")
	events := []domain.Event{
		{ID: 1, Date: day("2025-07-10")},
		{ID: 2, Date: day("2025-07-13")}, // today stays bookable
		{ID: 3, Date: day("2025-07-20")},
	}

	visible := VisibleEvents(events, now)
	require.Len(t, visible, 2)
	assert.EqualValues(t, 2, visible[0].ID)
	assert.EqualValues(t, 3, visible[1].ID)
}

func TestVisibleEvents_TodayStaysBookableAfternoonNow(t *testing.T) {
	now := day("2025-07-13").Add(15 * time.Hour)
	events := []domain.Event{
		{ID: 1, Date: day("2025-07-12")},
		{ID: 2, Date: day("2025-07-13")},
	}

	visible := VisibleEvents(events, now)
	require.Len(t, visible, 1)
	assert.EqualValues(t, 2, visible[0].ID)
}

// Scenario from the dashboard: one future event with one session and no
// bookings yet.
func TestModel_FutureEventUnbookedSession(t *testing.T) {
	events := []domain.Event{
		{ID: 1, Date: day("2025-07-20"), Sessions: []domain.Session{{ID: 10}}},
	}
	m := NewModel(events, nil, day("2025-07-13"))

	visible := m.Bookable()
	require.Len(t, visible, 1)
	assert.EqualValues(t, 1, visible[0].ID)
	assert.False(t, m.Booked(1, 10), "session 10 should offer Book Session")
}

// Scenario: booking session 10 of event 1 flips the booked-check
// without a refetch.
func TestModel_AddBookingFlipsBookedCheck(t *testing.T) {
	events := []domain.Event{
		{ID: 1, Date: day("2025-07-20"), Sessions: []domain.Session{{ID: 10}}},
	}
	m := NewModel(events, nil, day("2025-07-13"))
	require.False(t, m.Booked(1, 10))

	m.AddBooking(domain.Booking{ID: 5, EventID: 1, SessionID: 10, Status: domain.BookingStatusConfirmed})

	assert.True(t, m.Booked(1, 10))
	require.Len(t, m.Bookings, 1)
	assert.EqualValues(t, 10, m.Bookings[0].SessionID)
	assert.EqualValues(t, 1, m.Bookings[0].EventID)
}

func TestModel_OrphanBookingRendersUnbookedAndIsSurfaced(t *testing.T) {
	events := []domain.Event{
		{ID: 1, Date: day("2025-07-20"), Sessions: []domain.Session{{ID: 10}}},
	}
	bookings := []domain.Booking{
		{ID: 1, EventID: 9, SessionID: 90}, // references nothing fetched
	}
	m := NewModel(events, bookings, day("2025-07-13"))

	assert.False(t, m.Booked(1, 10))

	orphans := m.Orphans()
	require.Len(t, orphans, 1)
	assert.EqualValues(t, 9, orphans[0].EventID)
}

func TestModel_BookedFilterIndependence(t *testing.T) {
	// A booking on a past event still marks its session booked; the
	// booking filter and the booked-check are separate concerns.
	events := []domain.Event{
		{ID: 1, Date: day("2025-07-10"), Sessions: []domain.Session{{ID: 10}}},
	}
	bookings := []domain.Booking{
		{ID: 1, EventID: 1, SessionID: 10, Event: domain.Event{ID: 1, Date: day("2025-07-10")}},
	}
	m := NewModel(events, bookings, day("2025-07-13"))

	assert.True(t, m.Booked(1, 10))
	assert.Empty(t, m.Bookable(), "past event is not bookable")
	assert.Len(t, m.Filtered(domain.FilterPast), 1)
	assert.Empty(t, m.Filtered(domain.FilterUpcoming))
}
