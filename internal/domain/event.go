package domain

import "time"

type Facilitator struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Session is a bookable time-slot within an Event. Distinct from the
// auth session persisted as Credentials.
type Session struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Time        time.Time   `json:"time"`
	Facilitator Facilitator `json:"facilitator"`
}

type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Sessions    []Session `json:"sessions"`
}

// SessionStatus is the closed set of states a managed session can be in.
type SessionStatus string

const (
	SessionStatusConfirmed SessionStatus = "Confirmed"
	SessionStatusPending   SessionStatus = "Pending"
	SessionStatusCancelled SessionStatus = "Cancelled"
)

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionStatusConfirmed, SessionStatusPending, SessionStatusCancelled:
		return true
	default:
		return false
	}
}

// SessionBooking is one registrant on a managed session.
type SessionBooking struct {
	ID     int64         `json:"id"`
	UserID int64         `json:"user_id"`
	Status BookingStatus `json:"status"`
}

// ManagedSession is the facilitator's view of a session: the slot plus
// everyone registered on it.
type ManagedSession struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	StartTime   time.Time        `json:"start_time"`
	Facilitator Facilitator      `json:"facilitator"`
	Bookings    []SessionBooking `json:"bookings"`
}

// UpdateSessionInput carries the editable fields of a managed session.
// Empty fields are omitted from the update request, leaving their
// stored values unchanged.
type UpdateSessionInput struct {
	Client string
	Date   string
	Time   string
	Status SessionStatus
}
