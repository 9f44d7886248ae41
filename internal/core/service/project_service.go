package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/sounddesk/client-portal/internal/api/metrics"
	"github.com/sounddesk/client-portal/internal/core/domain"
	"github.com/sounddesk/client-portal/internal/core/ports"
)

// ProjectService implements the client list and project read/update
// operations. Authorization is enforced here, not in the HTTP gate: every
// operation checks "caller is admin or owns the resource" explicitly.
type ProjectService struct {
	clients  ports.ClientRepository
	projects ports.ProjectRepository
	unread   ports.UnreadCounter
	logger   zerolog.Logger
}

func NewProjectService(clients ports.ClientRepository, projects ports.ProjectRepository, unread ports.UnreadCounter, logger zerolog.Logger) *ProjectService {
	return &ProjectService{clients: clients, projects: projects, unread: unread, logger: logger}
}

// canAccess is the per-resource guard reused across operations.
func canAccess(caller ports.Caller, ownerID string) bool {
	return caller.IsAdmin || caller.ID == ownerID
}

// ListClients returns the dashboard projection of every non-admin account,
// with project name and the caller's unread message count per client.
func (s *ProjectService) ListClients(ctx context.Context, caller ports.Caller) ([]ports.ClientSummary, error) {
	if !caller.IsAdmin {
		return nil, domain.ErrForbidden
	}

	clients, err := s.clients.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(clients))
	for _, c := range clients {
		if c.ProjectID != "" {
			ids = append(ids, c.ProjectID)
		}
	}
	names, err := s.projects.FindNamesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.ClientSummary, 0, len(clients))
	for _, c := range clients {
		unread, err := s.unread.Count(ctx, caller.ID, c.ID)
		if err != nil {
			// counter is best-effort; the list must not fail on it
			s.logger.Warn().Err(err).Str("client_id", c.ID).Msg("unread count unavailable")
			unread = 0
		}
		summaries = append(summaries, ports.ClientSummary{
			ID:          c.ID,
			Name:        c.Name,
			Status:      c.Status,
			ProjectName: names[c.ProjectID],
			Unread:      unread,
		})
	}
	return summaries, nil
}

// GetProject resolves a client's project document. Missing client, missing
// project reference and missing document all surface as not-found.
func (s *ProjectService) GetProject(ctx context.Context, caller ports.Caller, clientID string) (*domain.Project, error) {
	if !canAccess(caller, clientID) {
		return nil, domain.ErrForbidden
	}

	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	if client.ProjectID == "" {
		return nil, domain.ErrProjectNotFound
	}

	return s.projects.FindByID(ctx, client.ProjectID)
}

// GetProgress computes the derived percent-complete view server-side.
func (s *ProjectService) GetProgress(ctx context.Context, caller ports.Caller, clientID string) (*domain.Progress, error) {
	project, err := s.GetProject(ctx, caller, clientID)
	if err != nil {
		return nil, err
	}
	progress := project.Progress()
	return &progress, nil
}

// UpdateProject applies a shallow top-level patch. Non-admin callers must own
// the project. When the patch carries a version it is compare-and-swapped;
// otherwise the write is last-writer-wins, as the original frontend expects.
func (s *ProjectService) UpdateProject(ctx context.Context, caller ports.Caller, projectID string, patch ports.ProjectPatch) (*domain.Project, error) {
	if !caller.IsAdmin {
		owner, err := s.clients.FindByProjectID(ctx, projectID)
		if err != nil {
			if errors.Is(err, domain.ErrClientNotFound) {
				return nil, domain.ErrForbidden
			}
			return nil, err
		}
		if owner.ID != caller.ID {
			return nil, domain.ErrForbidden
		}
	}

	if patch.Production != nil {
		if err := domain.ValidateTracks(patch.Production.Tracks); err != nil {
			return nil, err
		}
	}

	updated, err := s.projects.Update(ctx, projectID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrVersionConflict) {
			metrics.ProjectUpdatesTotal.WithLabelValues("conflict").Inc()
		}
		return nil, err
	}

	metrics.ProjectUpdatesTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("project_id", projectID).Int64("version", updated.Version).Msg("project updated")
	return updated, nil
}
