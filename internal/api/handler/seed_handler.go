package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sounddesk/client-portal/internal/core/ports"
)

type SeedHandler struct {
	seed ports.SeedService
}

func NewSeedHandler(seed ports.SeedService) *SeedHandler {
	return &SeedHandler{seed: seed}
}

// Seed wipes the stores and loads the sample client and project. This is a
// development bootstrap path and the only write route outside the auth gate.
//
// @Summary      Seed the database
// @Tags         seed
// @Produce      json
// @Success      201  {object}  map[string]string
// @Failure      500  {object}  errorResponse
// @Router       /api/seed [get]
func (h *SeedHandler) Seed(c echo.Context) error {
	msg, err := h.seed.Seed(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": msg})
}
