package ports

import (
	"context"

	"github.com/sounddesk/client-portal/internal/core/domain"
)

// ClientSummary is the admin dashboard projection of a client.
type ClientSummary struct {
	ID          string
	Name        string
	Status      domain.ClientStatus
	ProjectName string
	Unread      int64
}

type ProjectService interface {
	// ListClients is admin-only.
	ListClients(ctx context.Context, caller Caller) ([]ClientSummary, error)
	// GetProject requires the caller to be the admin or the client itself.
	GetProject(ctx context.Context, caller Caller, clientID string) (*domain.Project, error)
	GetProgress(ctx context.Context, caller Caller, clientID string) (*domain.Progress, error)
	UpdateProject(ctx context.Context, caller Caller, projectID string, patch ProjectPatch) (*domain.Project, error)
}
