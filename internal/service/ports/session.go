package ports

import (
	"context"

	"eventdesk/internal/domain"
)

type SessionAPI interface {
	Sessions(ctx context.Context, token string) ([]domain.ManagedSession, error)
	UpdateSession(ctx context.Context, token string, id int64, input domain.UpdateSessionInput) error
	CancelSession(ctx context.Context, token string, id int64) error
}
