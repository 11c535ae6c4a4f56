package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/wb-go/wbf/logger"

	"eventdesk/internal/domain"
	"eventdesk/internal/reconcile"
	"eventdesk/internal/service/ports"
)

// DashboardService assembles the end-user dashboard: the catalog and
// the viewer's bookings, fetched fresh per mount and reconciled.
type DashboardService struct {
	api      ports.CatalogAPI
	notifier ports.BookingNotifier
	log      logger.Logger
}

func NewDashboardService(api ports.CatalogAPI, notifier ports.BookingNotifier, log logger.Logger) *DashboardService {
	return &DashboardService{api: api, notifier: notifier, log: log}
}

type eventsResult struct {
	events []domain.Event
	err    error
}

type bookingsResult struct {
	bookings []domain.Booking
	err      error
}

// Load issues both fetches concurrently and waits for both before
// building the model: either failure is the whole mount's failure, no
// partial render. Channels are buffered so a fetch that resolves after
// the caller has gone is discarded, not written into a dead view.
func (s *DashboardService) Load(ctx context.Context, token string, now time.Time) (*reconcile.Model, error) {
	evCh := make(chan eventsResult, 1)
	bkCh := make(chan bookingsResult, 1)

	go func() {
		events, err := s.api.Events(ctx, token)
		evCh <- eventsResult{events: events, err: err}
	}()
	go func() {
		bookings, err := s.api.Bookings(ctx, token)
		bkCh <- bookingsResult{bookings: bookings, err: err}
	}()

	var (
		events   []domain.Event
		bookings []domain.Booking
	)
	for i := 0; i < 2; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case res := <-evCh:
			if res.err != nil {
				return nil, fmt.Errorf("fetch events: %w", res.err)
			}
			events = res.events
		case res := <-bkCh:
			if res.err != nil {
				return nil, fmt.Errorf("fetch bookings: %w", res.err)
			}
			bookings = res.bookings
		}
	}

	model := reconcile.NewModel(events, bookings, now)

	if orphans := model.Orphans(); len(orphans) > 0 {
		// A booking for a session absent from the catalog renders as
		// unbooked. Surface the inconsistency, do not hide it.
		for _, o := range orphans {
			s.log.Warn("booking references unknown session",
				logger.Int64("booking_id", o.ID),
				logger.Int64("event_id", o.EventID),
				logger.Int64("session_id", o.SessionID),
			)
		}
	}

	return model, nil
}

// Book submits a reservation for the viewer. No local dedup: an
// already-booked session is the collaborator API's to reject. On
// success the returned booking is what the caller appends to its model.
func (s *DashboardService) Book(ctx context.Context, token, userID string, sessionID, eventID int64) (domain.Booking, error) {
	uid, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("%w: malformed user id %q", domain.ErrValidation, userID)
	}

	booking, err := s.api.Book(ctx, token, uid, sessionID, eventID)
	if err != nil {
		go s.notifier.NotifyBookingFailed(context.WithoutCancel(ctx), sessionID, eventID, err.Error())
		return domain.Booking{}, err
	}

	s.log.Info("session booked",
		logger.Int64("session_id", sessionID),
		logger.Int64("event_id", eventID),
		logger.String("user_id", userID),
	)

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), booking)

	return booking, nil
}
