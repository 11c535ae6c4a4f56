package ports

import (
	"context"

	"eventdesk/internal/domain"
)

type AuthAPI interface {
	Login(ctx context.Context, username, password string, role domain.Role) (domain.Credentials, error)
	Register(ctx context.Context, input domain.RegisterInput) error
}
