package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sounddesk/client-portal/internal/core/domain"
	"github.com/sounddesk/client-portal/internal/core/ports"
)

// Stub services recording the last call, shared by the handler tests.

type stubAuthService struct {
	result *ports.AuthResult
	err    error

	lastName, lastEmail, lastPassword string
}

func (s *stubAuthService) Register(_ context.Context, name, email, password string) (*ports.AuthResult, error) {
	s.lastName, s.lastEmail, s.lastPassword = name, email, password
	return s.result, s.err
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*ports.AuthResult, error) {
	s.lastEmail, s.lastPassword = email, password
	return s.result, s.err
}

func (s *stubAuthService) VerifyToken(string) (*ports.Claims, error) {
	return nil, domain.ErrInvalidToken
}

type stubProjectService struct {
	summaries []ports.ClientSummary
	project   *domain.Project
	progress  *domain.Progress
	err       error

	lastCaller    ports.Caller
	lastClientID  string
	lastProjectID string
	lastPatch     ports.ProjectPatch
}

func (s *stubProjectService) ListClients(_ context.Context, caller ports.Caller) ([]ports.ClientSummary, error) {
	s.lastCaller = caller
	return s.summaries, s.err
}

func (s *stubProjectService) GetProject(_ context.Context, caller ports.Caller, clientID string) (*domain.Project, error) {
	s.lastCaller, s.lastClientID = caller, clientID
	return s.project, s.err
}

func (s *stubProjectService) GetProgress(_ context.Context, caller ports.Caller, clientID string) (*domain.Progress, error) {
	s.lastCaller, s.lastClientID = caller, clientID
	return s.progress, s.err
}

func (s *stubProjectService) UpdateProject(_ context.Context, caller ports.Caller, projectID string, patch ports.ProjectPatch) (*domain.Project, error) {
	s.lastCaller, s.lastProjectID, s.lastPatch = caller, projectID, patch
	return s.project, s.err
}

type stubMessageService struct {
	message *domain.Message
	thread  []domain.Message
	conv    *ports.MyConversation
	err     error

	lastCaller   ports.Caller
	lastReceiver string
	lastContent  string
	lastClientID string
}

func (s *stubMessageService) Send(_ context.Context, caller ports.Caller, receiverID, content string) (*domain.Message, error) {
	s.lastCaller, s.lastReceiver, s.lastContent = caller, receiverID, content
	return s.message, s.err
}

func (s *stubMessageService) Conversation(_ context.Context, caller ports.Caller, clientID string) ([]domain.Message, error) {
	s.lastCaller, s.lastClientID = caller, clientID
	return s.thread, s.err
}

func (s *stubMessageService) MyConversation(_ context.Context, caller ports.Caller) (*ports.MyConversation, error) {
	s.lastCaller = caller
	return s.conv, s.err
}

type stubSeedService struct {
	msg string
	err error
}

func (s *stubSeedService) Seed(context.Context) (string, error) {
	return s.msg, s.err
}

// newTestContext builds an echo context with the validator installed and, when
// caller is non-empty, the auth claims the middleware would have set.
func newTestContext(t *testing.T, method, body string, caller ports.Caller) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if caller.ID != "" {
		c.Set("user_id", caller.ID)
		c.Set("is_admin", caller.IsAdmin)
	}
	return c, rec
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	if he.Code != code {
		t.Fatalf("expected status %d, got %d (%v)", code, he.Code, he.Message)
	}
}
