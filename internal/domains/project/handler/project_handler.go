package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/domains/project/service"
	"portfolio-backend/internal/shared/response"
)

// ProjectHandler handles HTTP requests for the project domain.
type ProjectHandler struct {
	service service.Service
}

func NewProjectHandler(svc service.Service) *ProjectHandler {
	return &ProjectHandler{service: svc}
}

// Create handles POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req model.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	project, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusCreated, project)
}

// List handles GET /projects?featured=true|false
func (h *ProjectHandler) List(c *gin.Context) {
	var featured *bool
	switch c.Query("featured") {
	case "true":
		v := true
		featured = &v
	case "false":
		v := false
		featured = &v
	}

	projects, err := h.service.List(c.Request.Context(), featured)
	if err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	if projects == nil {
		projects = []*model.Project{}
	}
	response.Success(c, http.StatusOK, projects)
}

// GetByID handles GET /projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	project, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, project)
}

// Update handles PATCH /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	var req model.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	project, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, project)
}

// Delete handles DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	c.Status(http.StatusNoContent)
}
