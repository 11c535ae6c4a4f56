package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	storemocks "eventdesk/internal/credstore/mocks"
	"eventdesk/internal/domain"
	"eventdesk/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestAuthService_Login_SavesCredentials(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := storemocks.NewMockStore(t)
	svc := NewAuthService(api, store, newTestLogger(t))

	creds := domain.Credentials{Token: "tok", UserID: "42", Role: domain.RoleUser}
	api.EXPECT().Login(mock.Anything, "alice", "secret", domain.RoleUser).Return(creds, nil)
	store.EXPECT().Save(mock.Anything, creds).Return(nil)

	got, err := svc.Login(context.Background(), "alice", "secret", "User")

	require.NoError(t, err)
	assert.Equal(t, creds, got)
}

func TestAuthService_Login_UnknownRoleRejectedLocally(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := storemocks.NewMockStore(t)
	svc := NewAuthService(api, store, newTestLogger(t))

	// No API call, no save: a role outside the closed set never leaves
	// the process.
	_, err := svc.Login(context.Background(), "alice", "secret", "Admin")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Login_APIFailureDoesNotSave(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := storemocks.NewMockStore(t)
	svc := NewAuthService(api, store, newTestLogger(t))

	api.EXPECT().Login(mock.Anything, "alice", "wrong", domain.RoleUser).
		Return(domain.Credentials{}, domain.ErrInvalidCredentials)

	_, err := svc.Login(context.Background(), "alice", "wrong", "User")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_SaveFailureSurfaces(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := storemocks.NewMockStore(t)
	svc := NewAuthService(api, store, newTestLogger(t))

	creds := domain.Credentials{Token: "tok", UserID: "1", Role: domain.RoleFacilitator}
	api.EXPECT().Login(mock.Anything, "fia", "secret", domain.RoleFacilitator).Return(creds, nil)
	store.EXPECT().Save(mock.Anything, creds).Return(errors.New("disk full"))

	_, err := svc.Login(context.Background(), "fia", "secret", "Facilitator")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save credentials")
}

func TestAuthService_Register_UserNeedsUsername(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := storemocks.NewMockStore(t)
	svc := NewAuthService(api, store, newTestLogger(t))

	err := svc.Register(context.Background(), domain.RegisterInput{
		Email:    "a@b.c",
		Password: "pw",
		Role:     domain.RoleUser,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Register_FacilitatorNeedsNameAndPhone(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := storemocks.NewMockStore(t)
	svc := NewAuthService(api, store, newTestLogger(t))

	err := svc.Register(context.Background(), domain.RegisterInput{
		Email:    "f@b.c",
		Password: "pw",
		Name:     "Fia",
		Role:     domain.RoleFacilitator,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Register_Success(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := storemocks.NewMockStore(t)
	svc := NewAuthService(api, store, newTestLogger(t))

	input := domain.RegisterInput{
		Email:    "a@b.c",
		Username: "alice",
		Password: "pw",
		Role:     domain.RoleUser,
	}
	api.EXPECT().Register(mock.Anything, input).Return(nil)

	require.NoError(t, svc.Register(context.Background(), input))
}

func TestAuthService_Logout_ClearsStore(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := storemocks.NewMockStore(t)
	svc := NewAuthService(api, store, newTestLogger(t))

	store.EXPECT().Clear(mock.Anything).Return(nil)

	require.NoError(t, svc.Logout(context.Background()))
}
