package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// Booking is the viewer's reservation of one session. SessionID and
// EventID are the reconciliation keys; Session and Event carry the
// denormalized copies the collaborator API ships alongside them.
type Booking struct {
	ID        int64         `json:"id"`
	SessionID int64         `json:"session_id"`
	EventID   int64         `json:"event_id"`
	UserID    int64         `json:"user_id"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	Session   Session       `json:"session"`
	Event     Event         `json:"event"`
}

// TimeFilter selects which bookings a dashboard shows relative to "now".
type TimeFilter string

const (
	FilterAll      TimeFilter = "all"
	FilterPast     TimeFilter = "past"
	FilterPresent  TimeFilter = "present"
	FilterUpcoming TimeFilter = "upcoming"
)

// ParseTimeFilter falls back to FilterAll for unrecognized input, which
// matches the dashboard treating any other value as "no filter".
func ParseTimeFilter(s string) TimeFilter {
	switch TimeFilter(s) {
	case FilterPast, FilterPresent, FilterUpcoming:
		return TimeFilter(s)
	default:
		return FilterAll
	}
}
