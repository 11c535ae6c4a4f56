// Package auth derives the viewer's auth state from the credential
// store and decides what a guarded navigation is allowed to render.
package auth

import (
	"context"

	"github.com/wb-go/wbf/logger"

	"eventdesk/internal/credstore"
	"eventdesk/internal/domain"
)

// State is the resolved auth snapshot a view lifecycle works from.
// The zero value is NOT a valid resolved state; use Pending for the
// not-yet-resolved case.
type State struct {
	IsLoading bool
	Token     string
	UserID    string
	Role      domain.Role
}

// Pending is the state before the one-shot resolution has run.
func Pending() State {
	return State{IsLoading: true, Role: domain.RoleUnknown}
}

// Resolver produces a State from the credential store. Resolution is
// one-shot per view lifecycle: a Save or Clear that happens after
// Resolve returns is not observed until the next Resolve. That
// staleness window is deliberate.
type Resolver struct {
	store credstore.Store
	log   logger.Logger
}

func NewResolver(store credstore.Store, log logger.Logger) *Resolver {
	return &Resolver{store: store, log: log}
}

// Resolve performs exactly one store read. A failed read resolves to an
// unauthenticated state rather than an error: the guard then fails
// closed to the login view.
func (r *Resolver) Resolve(ctx context.Context) State {
	creds, err := r.store.Load(ctx)
	if err != nil {
		r.log.Error("credential load failed",
			logger.String("error", err.Error()),
		)
		return State{Role: domain.RoleUnknown}
	}

	return State{
		Token:  creds.Token,
		UserID: creds.UserID,
		Role:   creds.Role,
	}
}
