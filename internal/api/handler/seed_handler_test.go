package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/sounddesk/client-portal/internal/core/ports"
)

func TestSeedHandler_Seed(t *testing.T) {
	h := NewSeedHandler(&stubSeedService{msg: "Database seeded successfully with a sample client and project."})

	c, rec := newTestContext(t, http.MethodGet, "", ports.Caller{})
	if err := h.Seed(c); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["message"] == "" {
		t.Fatalf("expected message in body, got %v", resp)
	}
}

func TestSeedHandler_Seed_ErrorPassthrough(t *testing.T) {
	boom := errors.New("mongo down")
	h := NewSeedHandler(&stubSeedService{err: boom})

	c, _ := newTestContext(t, http.MethodGet, "", ports.Caller{})
	if err := h.Seed(c); err != boom {
		t.Fatalf("expected error passthrough, got %v", err)
	}
}
