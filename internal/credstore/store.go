// Package credstore persists the logged-in user's credentials: token,
// user id and role. It is the only writer of that state; everything
// else reads it through the auth resolver.
package credstore

import (
	"context"

	"eventdesk/internal/domain"
)

// Store is the persisted credential state. Load never fails on absent
// keys: missing fields come back empty, which downstream gates read as
// "unauthenticated". No token validation happens here.
type Store interface {
	Load(ctx context.Context) (domain.Credentials, error)
	Save(ctx context.Context, creds domain.Credentials) error
	Clear(ctx context.Context) error
}
