package company

import (
	"errors"
	"net/http"

	"serviceflow/internal/middleware"
	"serviceflow/internal/pkg/response"
	"serviceflow/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/company-info/:userId", h.GetCompanyInfo)
	rg.PUT("/company-info/:userId", h.UpdateCompanyInfo)
}

// ownUserID refuses requests for someone else's profile unless the
// caller is an admin.
func ownUserID(c *gin.Context) (string, bool) {
	userID := c.Param("userId")
	if userID != middleware.CallerID(c) && !middleware.IsAdmin(c) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Cannot access another user's company info")
		return "", false
	}
	return userID, true
}

func (h *Handler) GetCompanyInfo(c *gin.Context) {
	userID, ok := ownUserID(c)
	if !ok {
		return
	}

	ci, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"companyInfo": ci})
}

func (h *Handler) UpdateCompanyInfo(c *gin.Context) {
	userID, ok := ownUserID(c)
	if !ok {
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid request body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid company info", errs)
		return
	}

	ci, err := h.service.Update(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"companyInfo": ci})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Company info not found")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process company info")
	}
}
