package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sounddesk/client-portal/internal/core/ports"
)

type ProjectHandler struct {
	projects ports.ProjectService
}

func NewProjectHandler(projects ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// Update applies a shallow top-level patch to a project document. Fields
// absent from the body are left untouched; a "version" field, when present,
// is compare-and-swapped so concurrent edits fail with 409 instead of
// silently overwriting each other.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string             true  "Project id"
// @Param        body       body      ports.ProjectPatch true  "Partial project fields"
// @Success      200        {object}  domain.Project
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Failure      409        {object}  errorResponse
// @Router       /api/projects/{projectId} [post]
func (h *ProjectHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var patch ports.ProjectPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.projects.UpdateProject(c.Request().Context(), caller, c.Param("projectId"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
