package dto

import (
	"time"

	"eventdesk/internal/domain"
	"eventdesk/internal/reconcile"
)

type LoginResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type SessionResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Time        string `json:"time"`
	Facilitator string `json:"facilitator"`
	Booked      bool   `json:"booked"`
}

type EventResponse struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Date        string            `json:"date"`
	Location    string            `json:"location"`
	Sessions    []SessionResponse `json:"sessions"`
}

type BookingResponse struct {
	ID         int64  `json:"id"`
	SessionID  int64  `json:"session_id"`
	EventID    int64  `json:"event_id"`
	Status     string `json:"status"`
	EventTitle string `json:"event_title,omitempty"`
	Session    string `json:"session,omitempty"`
	Date       string `json:"date,omitempty"`
}

// UserDashboardResponse is the booker's dashboard: upcoming events with
// per-session booked flags, plus the viewer's own bookings after the
// requested time filter.
type UserDashboardResponse struct {
	View     string            `json:"view"`
	Filter   string            `json:"filter"`
	Events   []EventResponse   `json:"events"`
	Bookings []BookingResponse `json:"bookings"`
}

type RegistrantResponse struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Status string `json:"status"`
}

type ManagedSessionResponse struct {
	ID        int64                `json:"id"`
	Name      string               `json:"name"`
	StartTime string               `json:"start_time"`
	Bookings  []RegistrantResponse `json:"bookings"`
}

type FacilitatorDashboardResponse struct {
	View     string                   `json:"view"`
	Sessions []ManagedSessionResponse `json:"sessions"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e domain.Event, booked func(eventID, sessionID int64) bool) EventResponse {
	sessions := make([]SessionResponse, 0, len(e.Sessions))
	for _, s := range e.Sessions {
		sessions = append(sessions, SessionResponse{
			ID:          s.ID,
			Name:        s.Name,
			Time:        s.Time.Format(time.RFC3339),
			Facilitator: s.Facilitator.Name,
			Booked:      booked(e.ID, s.ID),
		})
	}

	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date.Format("2006-01-02"),
		Location:    e.Location,
		Sessions:    sessions,
	}
}

func ToBookingResponse(b domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:         b.ID,
		SessionID:  b.SessionID,
		EventID:    b.EventID,
		Status:     string(b.Status),
		EventTitle: b.Event.Title,
		Session:    b.Session.Name,
	}
	if !b.Event.Date.IsZero() {
		resp.Date = b.Event.Date.Format("2006-01-02")
	}
	return resp
}

func ToUserDashboardResponse(view string, m *reconcile.Model, filter domain.TimeFilter) UserDashboardResponse {
	bookable := m.Bookable()
	events := make([]EventResponse, 0, len(bookable))
	for _, e := range bookable {
		events = append(events, ToEventResponse(e, m.Booked))
	}

	filtered := m.Filtered(filter)
	bookings := make([]BookingResponse, 0, len(filtered))
	for _, b := range filtered {
		bookings = append(bookings, ToBookingResponse(b))
	}

	return UserDashboardResponse{
		View:     view,
		Filter:   string(filter),
		Events:   events,
		Bookings: bookings,
	}
}

func ToManagedSessionResponse(s domain.ManagedSession) ManagedSessionResponse {
	bookings := make([]RegistrantResponse, 0, len(s.Bookings))
	for _, b := range s.Bookings {
		bookings = append(bookings, RegistrantResponse{
			ID:     b.ID,
			UserID: b.UserID,
			Status: string(b.Status),
		})
	}

	return ManagedSessionResponse{
		ID:        s.ID,
		Name:      s.Name,
		StartTime: s.StartTime.Format(time.RFC3339),
		Bookings:  bookings,
	}
}

func ToFacilitatorDashboardResponse(view string, sessions []domain.ManagedSession) FacilitatorDashboardResponse {
	resp := make([]ManagedSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, ToManagedSessionResponse(s))
	}

	return FacilitatorDashboardResponse{View: view, Sessions: resp}
}
