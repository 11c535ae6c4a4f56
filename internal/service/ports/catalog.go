package ports

import (
	"context"

	"eventdesk/internal/domain"
)

type CatalogAPI interface {
	Events(ctx context.Context, token string) ([]domain.Event, error)
	Bookings(ctx context.Context, token string) ([]domain.Booking, error)
	Book(ctx context.Context, token string, userID, sessionID, eventID int64) (domain.Booking, error)
}
