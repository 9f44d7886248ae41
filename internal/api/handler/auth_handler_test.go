package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/sounddesk/client-portal/internal/core/domain"
	"github.com/sounddesk/client-portal/internal/core/ports"
)

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{result: &ports.AuthResult{
		Token:  "tok123",
		Client: &domain.Client{ID: "client_1", Name: "Alice", Email: "alice@example.com", IsAdmin: true},
	}}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost,
		`{"name":"Alice","email":"alice@example.com","password":"pass123"}`, ports.Caller{})

	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["token"] != "tok123" || resp["_id"] != "client_1" || resp["isAdmin"] != true {
		t.Fatalf("unexpected response: %v", resp)
	}
	if svc.lastEmail != "alice@example.com" || svc.lastPassword != "pass123" {
		t.Fatalf("service received %q/%q", svc.lastEmail, svc.lastPassword)
	}
}

func TestAuthHandler_Register_ValidationFailures(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := []string{
		`{"email":"alice@example.com","password":"pass"}`, // no name
		`{"name":"Alice","password":"pass"}`,              // no email
		`{"name":"Alice","email":"not-an-email","password":"pass"}`,
		`{"name":"Alice","email":"alice@example.com"}`, // no password
	}
	for _, body := range cases {
		c, _ := newTestContext(t, http.MethodPost, body, ports.Caller{})
		assertHTTPError(t, h.Register(c), http.StatusBadRequest)
	}
}

func TestAuthHandler_Register_MalformedJSON(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, `{"name":`, ports.Caller{})
	assertHTTPError(t, h.Register(c), http.StatusBadRequest)
}

func TestAuthHandler_Register_ServiceErrorPassthrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrEmailTaken})

	c, _ := newTestContext(t, http.MethodPost,
		`{"name":"Alice","email":"alice@example.com","password":"pass"}`, ports.Caller{})
	if err := h.Register(c); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken passthrough, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{result: &ports.AuthResult{
		Token:  "tok456",
		Client: &domain.Client{ID: "client_2", Name: "Jordan", Email: "jordan@example.com"},
	}}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost,
		`{"email":"jordan@example.com","password":"password123"}`, ports.Caller{})

	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["token"] != "tok456" || resp["isAdmin"] != false {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestAuthHandler_Login_BadCredentialsPassthrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	c, _ := newTestContext(t, http.MethodPost,
		`{"email":"jordan@example.com","password":"wrong"}`, ports.Caller{})
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials passthrough, got %v", err)
	}
}
