package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/domain"
	"eventdesk/internal/service/ports/mocks"
)

func TestFacilitatorService_Sessions(t *testing.T) {
	api := mocks.NewMockSessionAPI(t)
	svc := NewFacilitatorService(api, newTestLogger(t))

	sessions := []domain.ManagedSession{
		{ID: 10, Name: "Morning", Bookings: []domain.SessionBooking{{ID: 5, UserID: 2}}},
	}
	api.EXPECT().Sessions(mock.Anything, "tok").Return(sessions, nil)

	got, err := svc.Sessions(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, sessions, got)
}

func TestFacilitatorService_Update_Success(t *testing.T) {
	api := mocks.NewMockSessionAPI(t)
	svc := NewFacilitatorService(api, newTestLogger(t))

	input := domain.UpdateSessionInput{
		Client: "John Doe",
		Date:   "2025-07-15",
		Time:   "10:00 AM",
		Status: domain.SessionStatusConfirmed,
	}
	api.EXPECT().UpdateSession(mock.Anything, "tok", int64(10), input).Return(nil)

	require.NoError(t, svc.Update(context.Background(), "tok", 10, input))
}

func TestFacilitatorService_Update_UnknownStatusRejected(t *testing.T) {
	api := mocks.NewMockSessionAPI(t)
	svc := NewFacilitatorService(api, newTestLogger(t))

	err := svc.Update(context.Background(), "tok", 10, domain.UpdateSessionInput{
		Status: domain.SessionStatus("Maybe"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFacilitatorService_Update_DateWithoutTimeRejected(t *testing.T) {
	api := mocks.NewMockSessionAPI(t)
	svc := NewFacilitatorService(api, newTestLogger(t))

	err := svc.Update(context.Background(), "tok", 10, domain.UpdateSessionInput{
		Date: "2025-07-15",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFacilitatorService_Update_UpstreamErrorPropagates(t *testing.T) {
	api := mocks.NewMockSessionAPI(t)
	svc := NewFacilitatorService(api, newTestLogger(t))

	api.EXPECT().UpdateSession(mock.Anything, "tok", int64(99), mock.Anything).
		Return(domain.ErrSessionNotFound)

	err := svc.Update(context.Background(), "tok", 99, domain.UpdateSessionInput{Client: "X"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestFacilitatorService_Cancel(t *testing.T) {
	api := mocks.NewMockSessionAPI(t)
	svc := NewFacilitatorService(api, newTestLogger(t))

	api.EXPECT().CancelSession(mock.Anything, "tok", int64(10)).Return(nil)

	require.NoError(t, svc.Cancel(context.Background(), "tok", 10))
}
