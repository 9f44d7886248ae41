package ports

import (
	"context"

	"github.com/sounddesk/client-portal/internal/core/domain"
)

// Caller is the authenticated identity attached to a request by the auth
// middleware and threaded into every service call that needs an ownership or
// role check.
type Caller struct {
	ID      string
	IsAdmin bool
}

// Claims is the verified content of a bearer token.
type Claims struct {
	UserID  string
	IsAdmin bool
}

// AuthResult bundles a signed token with the public account fields.
type AuthResult struct {
	Token  string
	Client *domain.Client
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	TokenVerifier
}

// TokenVerifier is the narrow interface the auth middleware depends on.
type TokenVerifier interface {
	VerifyToken(token string) (*Claims, error)
}
