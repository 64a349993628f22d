package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/admin/model"
	"portfolio-backend/internal/domains/admin/service"
	"portfolio-backend/internal/shared/response"
)

// AdminHandler handles authentication endpoints.
type AdminHandler struct {
	service service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{service: svc}
}

// Login handles POST /auth/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
