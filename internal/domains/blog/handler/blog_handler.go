package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/blog/model"
	"portfolio-backend/internal/domains/blog/service"
	"portfolio-backend/internal/shared/response"
)

// BlogHandler handles HTTP requests for the blog domain.
type BlogHandler struct {
	service  service.Service
	siteURL  string
	siteName string
}

func NewBlogHandler(svc service.Service, siteURL, siteName string) *BlogHandler {
	return &BlogHandler{service: svc, siteURL: siteURL, siteName: siteName}
}

// Create handles POST /blogs
func (h *BlogHandler) Create(c *gin.Context) {
	var req model.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	blog, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusCreated, blog)
}

// List handles GET /blogs?published=true|false
func (h *BlogHandler) List(c *gin.Context) {
	published := parseBoolFilter(c.Query("published"))

	blogs, err := h.service.List(c.Request.Context(), published)
	if err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	if blogs == nil {
		blogs = []*model.Blog{}
	}
	response.Success(c, http.StatusOK, blogs)
}

// Stats handles GET /blogs/stats
func (h *BlogHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// GetBySlug handles GET /blogs/:slug and bumps the view counter.
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	blog, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, blog)
}

// Update handles PATCH /blogs/:id
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid blog id")
		return
	}

	var req model.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	blog, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, blog)
}

// Delete handles DELETE /blogs/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid blog id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseBoolFilter turns ?flag=true|false into *bool, anything else into nil.
func parseBoolFilter(value string) *bool {
	switch value {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}
