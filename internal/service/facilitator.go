package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"eventdesk/internal/domain"
	"eventdesk/internal/service/ports"
)

// FacilitatorService backs the facilitator dashboard: sessions with
// their registrants, plus the edit and cancel operations.
type FacilitatorService struct {
	api ports.SessionAPI
	log logger.Logger
}

func NewFacilitatorService(api ports.SessionAPI, log logger.Logger) *FacilitatorService {
	return &FacilitatorService{api: api, log: log}
}

func (s *FacilitatorService) Sessions(ctx context.Context, token string) ([]domain.ManagedSession, error) {
	return s.api.Sessions(ctx, token)
}

func (s *FacilitatorService) Update(ctx context.Context, token string, id int64, input domain.UpdateSessionInput) error {
	if input.Status != "" && !input.Status.Valid() {
		return fmt.Errorf("%w: unknown session status %q", domain.ErrValidation, input.Status)
	}
	// The API composes date and time into one timestamp; a lone half
	// would silently drop the change.
	if (input.Date == "") != (input.Time == "") {
		return fmt.Errorf("%w: date and time must be provided together", domain.ErrValidation)
	}

	if err := s.api.UpdateSession(ctx, token, id, input); err != nil {
		return err
	}

	s.log.Info("session updated", logger.Int64("session_id", id))
	return nil
}

func (s *FacilitatorService) Cancel(ctx context.Context, token string, id int64) error {
	if err := s.api.CancelSession(ctx, token, id); err != nil {
		return err
	}

	s.log.Info("session cancelled", logger.Int64("session_id", id))
	return nil
}
