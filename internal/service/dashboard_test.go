package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/domain"
	"eventdesk/internal/service/ports/mocks"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDashboardService_Load_WaitsForBothFetches(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewDashboardService(api, notifier, newTestLogger(t))

	events := []domain.Event{
		{ID: 1, Date: day("2025-07-20"), Sessions: []domain.Session{{ID: 10}}},
	}
	bookings := []domain.Booking{
		{ID: 5, EventID: 1, SessionID: 10, Event: domain.Event{ID: 1, Date: day("2025-07-20")}},
	}

	api.EXPECT().Events(mock.Anything, "tok").Return(events, nil)
	api.EXPECT().Bookings(mock.Anything, "tok").Return(bookings, nil)

	model, err := svc.Load(context.Background(), "tok", day("2025-07-13"))

	require.NoError(t, err)
	assert.True(t, model.Booked(1, 10))
	assert.Len(t, model.Bookable(), 1)
}

func TestDashboardService_Load_EventsFailureIsTerminal(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewDashboardService(api, notifier, newTestLogger(t))

	api.EXPECT().Events(mock.Anything, "tok").Return(nil, domain.ErrUpstream)
	api.EXPECT().Bookings(mock.Anything, "tok").Return([]domain.Booking{}, nil).Maybe()

	model, err := svc.Load(context.Background(), "tok", day("2025-07-13"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Nil(t, model, "no partial render on a failed fetch")
}

func TestDashboardService_Load_BookingsFailureIsTerminal(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewDashboardService(api, notifier, newTestLogger(t))

	api.EXPECT().Events(mock.Anything, "tok").Return([]domain.Event{}, nil).Maybe()
	api.EXPECT().Bookings(mock.Anything, "tok").Return(nil, domain.ErrUpstream)

	model, err := svc.Load(context.Background(), "tok", day("2025-07-13"))

	require.Error(t, err)
	assert.Nil(t, model)
}

func TestDashboardService_Load_CancelledContextDiscardsResults(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewDashboardService(api, notifier, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Slow fetches: the viewer has navigated away before they land.
	api.EXPECT().Events(mock.Anything, "tok").RunAndReturn(func(context.Context, string) ([]domain.Event, error) {
		time.Sleep(20 * time.Millisecond)
		return []domain.Event{{ID: 1}}, nil
	}).Maybe()
	api.EXPECT().Bookings(mock.Anything, "tok").RunAndReturn(func(context.Context, string) ([]domain.Booking, error) {
		time.Sleep(20 * time.Millisecond)
		return nil, nil
	}).Maybe()

	model, err := svc.Load(ctx, "tok", day("2025-07-13"))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, model)

	time.Sleep(50 * time.Millisecond) // let the goroutines drain into their buffers
}

func TestDashboardService_Load_OrphanBookingStillLoads(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewDashboardService(api, notifier, newTestLogger(t))

	api.EXPECT().Events(mock.Anything, "tok").Return([]domain.Event{
		{ID: 1, Date: day("2025-07-20"), Sessions: []domain.Session{{ID: 10}}},
	}, nil)
	api.EXPECT().Bookings(mock.Anything, "tok").Return([]domain.Booking{
		{ID: 9, EventID: 77, SessionID: 700},
	}, nil)

	model, err := svc.Load(context.Background(), "tok", day("2025-07-13"))

	require.NoError(t, err)
	assert.False(t, model.Booked(1, 10))
	assert.Len(t, model.Orphans(), 1)
}

func TestDashboardService_Book_Success(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewDashboardService(api, notifier, newTestLogger(t))

	created := domain.Booking{ID: 99, EventID: 1, SessionID: 10, Status: domain.BookingStatusConfirmed}
	api.EXPECT().Book(mock.Anything, "tok", int64(2), int64(10), int64(1)).Return(created, nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, created).Return()

	booking, err := svc.Book(context.Background(), "tok", "2", 10, 1)

	require.NoError(t, err)
	assert.EqualValues(t, 10, booking.SessionID)
	assert.EqualValues(t, 1, booking.EventID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestDashboardService_Book_MalformedUserID(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewDashboardService(api, notifier, newTestLogger(t))

	_, err := svc.Book(context.Background(), "tok", "not-a-number", 10, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDashboardService_Book_FailureNotifiesAndPropagates(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewDashboardService(api, notifier, newTestLogger(t))

	api.EXPECT().Book(mock.Anything, "tok", int64(2), int64(10), int64(1)).
		Return(domain.Booking{}, domain.ErrAlreadyBooked)
	notifier.EXPECT().NotifyBookingFailed(mock.Anything, int64(10), int64(1), mock.Anything).Return()

	_, err := svc.Book(context.Background(), "tok", "2", 10, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)

	time.Sleep(50 * time.Millisecond)
}
