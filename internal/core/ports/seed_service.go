package ports

import "context"

// SeedService resets the stores and loads the sample client and project.
type SeedService interface {
	Seed(ctx context.Context) (string, error)
}
