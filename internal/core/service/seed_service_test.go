package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sounddesk/client-portal/internal/core/domain"
)

func TestSeedService_Seed(t *testing.T) {
	ctx := context.Background()
	clients := newStubClientRepo()
	projects := newStubProjectRepo()
	messages := newStubMessageRepo()

	// pre-existing data must be wiped
	if _, err := clients.Create(ctx, &domain.Client{Name: "Old", Email: "old@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := messages.Create(ctx, &domain.Message{SenderID: "a", ReceiverID: "b", Content: "stale"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	svc := NewSeedService(clients, projects, messages, zerolog.Nop())
	msg, err := svc.Seed(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if msg != "Database seeded successfully with a sample client and project." {
		t.Fatalf("unexpected message: %q", msg)
	}

	if _, err := clients.FindByEmail(ctx, "old@example.com"); err != domain.ErrClientNotFound {
		t.Fatalf("old client survived seeding: %v", err)
	}

	jordan, err := clients.FindByEmail(ctx, "jordan.smith@example.com")
	if err != nil {
		t.Fatalf("sample client missing: %v", err)
	}
	if jordan.Name != "Jordan Smith" || jordan.IsAdmin {
		t.Fatalf("unexpected sample client: %+v", jordan)
	}
	if jordan.Status != domain.StatusPaymentDue {
		t.Fatalf("expected PAYMENT DUE, got %q", jordan.Status)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(jordan.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("sample password does not verify: %v", err)
	}

	project, err := projects.FindByID(ctx, jordan.ProjectID)
	if err != nil {
		t.Fatalf("sample project missing: %v", err)
	}
	if project.Name != "Midnight Frequencies" {
		t.Fatalf("unexpected project name: %q", project.Name)
	}
	if !project.Scope.Production || !project.Scope.Visual || project.Scope.Release {
		t.Fatalf("unexpected scope: %+v", project.Scope)
	}
	if len(project.Production.Tracks) != 3 {
		t.Fatalf("expected 3 tracks, got %d", len(project.Production.Tracks))
	}
	for _, track := range project.Production.Tracks {
		if track.Status != domain.TrackNotStarted {
			t.Fatalf("expected not-started tracks, got %+v", track)
		}
	}
}

func TestSeedService_NextRegistrationAfterSeedBecomesAdmin(t *testing.T) {
	ctx := context.Background()
	clients := newStubClientRepo()
	projects := newStubProjectRepo()
	messages := newStubMessageRepo()

	seeder := NewSeedService(clients, projects, messages, zerolog.Nop())
	if _, err := seeder.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	auth := NewAuthService(clients, "secret", 0, zerolog.Nop())
	result, err := auth.Register(ctx, "Admin", "admin@example.com", "pass")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !result.Client.IsAdmin {
		t.Fatalf("first registration after seed must become admin")
	}
}
