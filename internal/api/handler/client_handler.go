package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sounddesk/client-portal/internal/core/ports"
)

// ClientHandler serves the admin dashboard views: client list, project
// documents and derived progress.
type ClientHandler struct {
	projects ports.ProjectService
}

func NewClientHandler(projects ports.ProjectService) *ClientHandler {
	return &ClientHandler{projects: projects}
}

type clientProjectRef struct {
	Name string `json:"name"`
}

type clientSummaryResponse struct {
	ID      string            `json:"_id"`
	Name    string            `json:"name"`
	Status  string            `json:"status"`
	Project *clientProjectRef `json:"project,omitempty"`
	Unread  int64             `json:"unread"`
}

// List returns every non-admin client with name, status and project name.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   clientSummaryResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	summaries, err := h.projects.ListClients(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	resp := make([]clientSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		item := clientSummaryResponse{
			ID:     s.ID,
			Name:   s.Name,
			Status: string(s.Status),
			Unread: s.Unread,
		}
		if s.ProjectName != "" {
			item.Project = &clientProjectRef{Name: s.ProjectName}
		}
		resp = append(resp, item)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetProject returns a client's full project document.
//
// @Summary      Get a client's project
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path      string  true  "Client id"
// @Success      200       {object}  domain.Project
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/clients/{clientId}/project [get]
func (h *ClientHandler) GetProject(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	project, err := h.projects.GetProject(c.Request().Context(), caller, c.Param("clientId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// GetProgress returns percent-complete per phase and overall.
//
// @Summary      Get a client's project progress
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path      string  true  "Client id"
// @Success      200       {object}  domain.Progress
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/clients/{clientId}/progress [get]
func (h *ClientHandler) GetProgress(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	progress, err := h.projects.GetProgress(c.Request().Context(), caller, c.Param("clientId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, progress)
}
