package ports

import (
	"context"

	"eventdesk/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, booking domain.Booking)
	NotifyBookingFailed(ctx context.Context, sessionID, eventID int64, reason string)
}
