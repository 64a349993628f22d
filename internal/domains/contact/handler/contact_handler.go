package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/contact/model"
	"portfolio-backend/internal/domains/contact/service"
	"portfolio-backend/internal/shared/response"
)

// ContactHandler handles HTTP requests for contact form messages.
type ContactHandler struct {
	service service.Service
}

func NewContactHandler(svc service.Service) *ContactHandler {
	return &ContactHandler{service: svc}
}

// Create handles POST /contact
func (h *ContactHandler) Create(c *gin.Context) {
	var req model.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	contact, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusCreated, contact)
}

// List handles GET /contact
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.service.List(c.Request.Context())
	if err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	if contacts == nil {
		contacts = []*model.Contact{}
	}
	response.Success(c, http.StatusOK, contacts)
}

// MarkRead handles PATCH /contact/:id/read
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid contact id")
		return
	}

	contact, err := h.service.MarkRead(c.Request.Context(), id)
	if err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, contact)
}

// Delete handles DELETE /contact/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid contact id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	c.Status(http.StatusNoContent)
}
