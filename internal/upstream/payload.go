package upstream

import (
	"time"

	"eventdesk/internal/domain"
)

// Wire shapes of the collaborator API. Event dates come as bare ISO
// dates, session times as full timestamps; both parse leniently because
// the API has shipped both shapes.

type facilitatorPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type sessionPayload struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Time        string             `json:"time"`
	StartTime   string             `json:"start_time"`
	Facilitator facilitatorPayload `json:"facilitator"`
}

type eventPayload struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
	Location    string           `json:"location"`
	Sessions    []sessionPayload `json:"sessions"`
}

type bookingPayload struct {
	ID        int64           `json:"id"`
	SessionID int64           `json:"sessionId"`
	EventID   int64           `json:"eventId"`
	UserID    int64           `json:"userId"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"created_at"`
	Session   *sessionPayload `json:"session"`
	Event     *eventPayload   `json:"event"`
}

type registrantPayload struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Status string `json:"status"`
}

type managedSessionPayload struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	StartTime   string              `json:"start_time"`
	Facilitator facilitatorPayload  `json:"facilitator"`
	Bookings    []registrantPayload `json:"bookings"`
}

func (p sessionPayload) toDomain() domain.Session {
	raw := p.Time
	if raw == "" {
		raw = p.StartTime
	}
	return domain.Session{
		ID:   p.ID,
		Name: p.Name,
		Time: parseInstant(raw),
		Facilitator: domain.Facilitator{
			ID:   p.Facilitator.ID,
			Name: p.Facilitator.Name,
		},
	}
}

func (p eventPayload) toDomain() domain.Event {
	sessions := make([]domain.Session, 0, len(p.Sessions))
	for _, s := range p.Sessions {
		sessions = append(sessions, s.toDomain())
	}
	return domain.Event{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Date:        parseInstant(p.Date),
		Location:    p.Location,
		Sessions:    sessions,
	}
}

func (p bookingPayload) toDomain() domain.Booking {
	b := domain.Booking{
		ID:        p.ID,
		SessionID: p.SessionID,
		EventID:   p.EventID,
		UserID:    p.UserID,
		Status:    domain.BookingStatus(p.Status),
		CreatedAt: parseInstant(p.CreatedAt),
	}
	if p.Session != nil {
		b.Session = p.Session.toDomain()
		// The list endpoint only nests the ids; hoist them so the
		// reconciler has its keys.
		if b.SessionID == 0 {
			b.SessionID = p.Session.ID
		}
	}
	if p.Event != nil {
		b.Event = p.Event.toDomain()
		if b.EventID == 0 {
			b.EventID = p.Event.ID
		}
	}
	return b
}

func (p managedSessionPayload) toDomain() domain.ManagedSession {
	bookings := make([]domain.SessionBooking, 0, len(p.Bookings))
	for _, r := range p.Bookings {
		bookings = append(bookings, domain.SessionBooking{
			ID:     r.ID,
			UserID: r.UserID,
			Status: domain.BookingStatus(r.Status),
		})
	}
	return domain.ManagedSession{
		ID:        p.ID,
		Name:      p.Name,
		StartTime: parseInstant(p.StartTime),
		Facilitator: domain.Facilitator{
			ID:   p.Facilitator.ID,
			Name: p.Facilitator.Name,
		},
		Bookings: bookings,
	}
}

var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseInstant(s string) time.Time {
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
