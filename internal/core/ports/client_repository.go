package ports

import (
	"context"

	"github.com/sounddesk/client-portal/internal/core/domain"
)

// ClientRepository persists accounts (admin and clients alike).
type ClientRepository interface {
	// Create inserts a new account. Returns domain.ErrEmailTaken when the
	// email (stored lowercased) is already present.
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	// FindAdmin returns the single admin account, domain.ErrAdminNotFound
	// when none has registered yet.
	FindAdmin(ctx context.Context) (*domain.Client, error)
	// FindByProjectID resolves the owner of a project document.
	FindByProjectID(ctx context.Context, projectID string) (*domain.Client, error)
	// ListClients returns all non-admin accounts.
	ListClients(ctx context.Context) ([]domain.Client, error)
	// NextSignupSeq atomically increments and returns the registration
	// sequence. The caller that receives 1 is the admin; the check-then-create
	// race of counting documents is not possible here.
	NextSignupSeq(ctx context.Context) (int64, error)
	SetProject(ctx context.Context, clientID, projectID string) error
	// DeleteAll removes every account and resets the signup sequence, so the
	// next registration after a wipe becomes the admin again.
	DeleteAll(ctx context.Context) error
}
