package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/skill/model"
	"portfolio-backend/internal/domains/skill/service"
	"portfolio-backend/internal/shared/response"
)

// SkillHandler handles HTTP requests for the skill domain.
type SkillHandler struct {
	service service.Service
}

func NewSkillHandler(svc service.Service) *SkillHandler {
	return &SkillHandler{service: svc}
}

// Create handles POST /skills
func (h *SkillHandler) Create(c *gin.Context) {
	var req model.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	skill, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusCreated, skill)
}

// List handles GET /skills?category=
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	if skills == nil {
		skills = []*model.Skill{}
	}
	response.Success(c, http.StatusOK, skills)
}

// ByCategory handles GET /skills/by-category
func (h *SkillHandler) ByCategory(c *gin.Context) {
	grouped, err := h.service.GroupByCategory(c.Request.Context())
	if err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, grouped)
}

// GetByID handles GET /skills/:id
func (h *SkillHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid skill id")
		return
	}

	skill, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, skill)
}

// Update handles PATCH /skills/:id
func (h *SkillHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid skill id")
		return
	}

	var req model.UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	skill, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, skill)
}

// Delete handles DELETE /skills/:id
func (h *SkillHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid skill id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	c.Status(http.StatusNoContent)
}
