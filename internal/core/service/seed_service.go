package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sounddesk/client-portal/internal/api/metrics"
	"github.com/sounddesk/client-portal/internal/core/domain"
	"github.com/sounddesk/client-portal/internal/core/ports"
)

// SeedService wipes the stores and loads the sample "Midnight Frequencies"
// project with its client. Seeding leaves the signup sequence reset, so the
// next registration still becomes the admin.
type SeedService struct {
	clients  ports.ClientRepository
	projects ports.ProjectRepository
	messages ports.MessageRepository
	logger   zerolog.Logger
}

func NewSeedService(clients ports.ClientRepository, projects ports.ProjectRepository, messages ports.MessageRepository, logger zerolog.Logger) *SeedService {
	return &SeedService{clients: clients, projects: projects, messages: messages, logger: logger}
}

func (s *SeedService) Seed(ctx context.Context) (string, error) {
	if err := s.messages.DeleteAll(ctx); err != nil {
		return "", err
	}
	if err := s.clients.DeleteAll(ctx); err != nil {
		return "", err
	}
	if err := s.projects.DeleteAll(ctx); err != nil {
		return "", err
	}

	project, err := s.projects.Create(ctx, sampleProject())
	if err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	client := &domain.Client{
		Name:         "Jordan Smith",
		Email:        "jordan.smith@example.com",
		PasswordHash: string(hash),
		IsAdmin:      false,
		Status:       domain.StatusPaymentDue,
		ProjectID:    project.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.clients.Create(ctx, client); err != nil {
		return "", err
	}

	metrics.SeedsTotal.Inc()
	s.logger.Info().Str("project_id", project.ID).Msg("database seeded")
	return "Database seeded successfully with a sample client and project.", nil
}

func touchpoints(names ...string) []domain.Touchpoint {
	tps := make([]domain.Touchpoint, len(names))
	for i, n := range names {
		tps[i] = domain.Touchpoint{Name: n, InScope: true}
	}
	return tps
}

func sampleProject() *domain.Project {
	now := time.Now().UTC()
	return &domain.Project{
		Name:    "Midnight Frequencies",
		Active:  true,
		Version: 1,
		Scope:   domain.Scope{Production: true, Visual: true, Release: false},
		Production: domain.ProductionPhase{
			ProjectFoundation:    touchpoints("References Collected", "Project/Assignment Clarity", "Understand Flow/Process", "Core Creative Purpose Defined"),
			InstrumentalProgress: touchpoints("Main Instrumental Complete", "Arrangement Finalized", "Sound Design Elements", "Transitions & Builds"),
			VocalProduction:      touchpoints("Lead Vocal Recording", "Harmony Layers", "Vocal Arrangement", "Vocal Effects & Processing"),
			MixAndMaster:         touchpoints("Rough Mix Complete", "Final Mix Approved", "Master Reference Check", "Final Master Delivery"),
			Documentation:        touchpoints("Session 1 Notes Complete", "Creative Direction Document"),
			Tracks: []domain.Track{
				{TrackNumber: 1, InScope: true, Status: domain.TrackNotStarted},
				{TrackNumber: 2, InScope: true, Status: domain.TrackNotStarted},
				{TrackNumber: 3, InScope: true, Status: domain.TrackNotStarted},
			},
		},
		Visual: domain.VisualPhase{
			VisualIdentity:       touchpoints("Color Palette Finalized", "Typography Selection", "Logo/Brand Mark", "Visual Style Guide"),
			AlbumArtwork:         touchpoints("Cover Art Concept", "Cover Art Execution", "Individual Track Art", "Alternative Formats"),
			PromotionalMaterials: touchpoints("Social Media Templates", "Press Photos/Imagery", "Merchandise Designs", "Website/EPK Materials"),
			VisualConsistency:    touchpoints("Brand Guidelines Document", "Asset Library Organization", "Usage Rights Documentation", "Final Asset Package"),
		},
		Release: domain.ReleasePhase{
			MarketStrategy:      touchpoints("Target Audience Defined", "Platform Strategy", "Release Timeline", "Marketing Budget Plan"),
			DistributionSetup:   touchpoints("Distributor Selection", "Metadata Preparation", "ISRC/UPC Codes", "Release Scheduling"),
			SocialMedia:         touchpoints("Platform Optimization", "Content Calendar", "Engagement Strategy", "Analytics Setup"),
			PerformanceTracking: touchpoints("Streaming Analytics", "Revenue Tracking", "Audience Insights", "Performance Reports"),
			Monetization:        touchpoints("Streaming Optimization", "Sync Licensing Prep", "Merchandise Strategy", "Revenue Diversification"),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
