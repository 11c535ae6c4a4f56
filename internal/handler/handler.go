package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"

	"eventdesk/internal/auth"
	"eventdesk/internal/domain"
	"eventdesk/internal/handler/dto"
	"eventdesk/internal/middleware"
	"eventdesk/internal/reconcile"
)

type AuthSvc interface {
	Login(ctx context.Context, username, password, role string) (domain.Credentials, error)
	Register(ctx context.Context, input domain.RegisterInput) error
	Logout(ctx context.Context) error
}

type DashboardSvc interface {
	Load(ctx context.Context, token string, now time.Time) (*reconcile.Model, error)
	Book(ctx context.Context, token, userID string, sessionID, eventID int64) (domain.Booking, error)
}

type FacilitatorSvc interface {
	Sessions(ctx context.Context, token string) ([]domain.ManagedSession, error)
	Update(ctx context.Context, token string, id int64, input domain.UpdateSessionInput) error
	Cancel(ctx context.Context, token string, id int64) error
}

type Handler struct {
	authService        AuthSvc
	dashboardService   DashboardSvc
	facilitatorService FacilitatorSvc
	now                func() time.Time
}

func NewHandler(authService AuthSvc, dashboardService DashboardSvc, facilitatorService FacilitatorSvc) *Handler {
	return &Handler{
		authService:        authService,
		dashboardService:   dashboardService,
		facilitatorService: facilitatorService,
		now:                time.Now,
	}
}

// Auth

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	creds, err := h.authService.Login(c.Request.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		UserID: creds.UserID,
		Role:   string(creds.Role),
	})
}

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	}

	if err := h.authService.Register(c.Request.Context(), input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"status": "registered"})
}

func (h *Handler) Logout(c *ginext.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "logged out"})
}

// Dashboard routes on the resolved role: bookers get the event catalog
// reconciled against their bookings, facilitators get their managed
// sessions. A role outside the known set renders the neutral loading
// view rather than either dashboard.
func (h *Handler) Dashboard(c *ginext.Context) {
	state, ok := middleware.AuthState(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
		return
	}

	switch auth.ViewFor(state.Role) {
	case auth.ViewUserDashboard:
		h.userDashboard(c, state)
	case auth.ViewFacilitatorDashboard:
		h.facilitatorDashboard(c, state)
	default:
		c.JSON(http.StatusOK, ginext.H{"view": auth.ViewLoading.String()})
	}
}

func (h *Handler) userDashboard(c *ginext.Context, state auth.State) {
	model, err := h.dashboardService.Load(c.Request.Context(), state.Token, h.now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	filter := domain.ParseTimeFilter(c.Query("filter"))
	c.JSON(http.StatusOK, dto.ToUserDashboardResponse(auth.ViewUserDashboard.String(), model, filter))
}

func (h *Handler) facilitatorDashboard(c *ginext.Context, state auth.State) {
	sessions, err := h.facilitatorService.Sessions(c.Request.Context(), state.Token)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFacilitatorDashboardResponse(auth.ViewFacilitatorDashboard.String(), sessions))
}

func (h *Handler) Book(c *ginext.Context) {
	state, ok := middleware.AuthState(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
		return
	}
	if state.Role != domain.RoleUser {
		h.handleError(c, domain.ErrForbidden)
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.dashboardService.Book(c.Request.Context(), state.Token, state.UserID, req.SessionID, req.EventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// Sessions (facilitator only)

func (h *Handler) UpdateSession(c *ginext.Context) {
	state, id, ok := h.facilitatorSession(c)
	if !ok {
		return
	}

	var req dto.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateSessionInput{
		Client: req.Client,
		Date:   req.Date,
		Time:   req.Time,
		Status: domain.SessionStatus(req.Status),
	}

	if err := h.facilitatorService.Update(c.Request.Context(), state.Token, id, input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

func (h *Handler) CancelSession(c *ginext.Context) {
	state, id, ok := h.facilitatorSession(c)
	if !ok {
		return
	}

	if err := h.facilitatorService.Cancel(c.Request.Context(), state.Token, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) facilitatorSession(c *ginext.Context) (auth.State, int64, bool) {
	state, ok := middleware.AuthState(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
		return auth.State{}, 0, false
	}
	if state.Role != domain.RoleFacilitator {
		h.handleError(c, domain.ErrForbidden)
		return auth.State{}, 0, false
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return auth.State{}, 0, false
	}

	return state, id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyBooked),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUpstream):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
