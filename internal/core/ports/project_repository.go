package ports

import (
	"context"

	"github.com/sounddesk/client-portal/internal/core/domain"
)

// ProjectPatch is a shallow top-level overlay: nil fields are left untouched,
// non-nil fields replace the stored value wholesale. This mirrors the
// original portal's save behavior (the frontend posts the full document).
//
// Version, when set, is compared against the stored document before the write
// and the update fails with domain.ErrVersionConflict on mismatch. When nil,
// the write is last-writer-wins.
type ProjectPatch struct {
	Name       *string                 `json:"name"`
	Active     *bool                   `json:"active"`
	Version    *int64                  `json:"version"`
	Scope      *domain.Scope           `json:"scope"`
	Production *domain.ProductionPhase `json:"html"`
	Visual     *domain.VisualPhase     `json:"css"`
	Release    *domain.ReleasePhase    `json:"js"`
}

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// FindNamesByIDs resolves project ids to names in one query, for the
	// client list projection.
	FindNamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
	// Update applies the patch and bumps the version counter. Returns the
	// updated document.
	Update(ctx context.Context, id string, patch ProjectPatch) (*domain.Project, error)
	DeleteAll(ctx context.Context) error
}
