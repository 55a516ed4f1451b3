package clients

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
	rg.POST("/clients", h.CreateClient)
	rg.GET("/clients", h.ListClients)
	rg.PUT("/clients/:id", h.UpdateClient)
	rg.DELETE("/clients/:id", h.DeleteClient)
}

func (h *Handler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Missing required fields: type, name, document")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid client data", errs)
		return
	}

	userID := middleware.CallerID(c)
	if req.UserID != "" && req.UserID != userID && middleware.IsAdmin(c) {
		userID = req.UserID
	}

	client, err := h.service.CreateClient(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"client": client})
}

func (h *Handler) ListClients(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		userID = middleware.CallerID(c)
	}
	if userID != middleware.CallerID(c) && !middleware.IsAdmin(c) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Cannot access another user's clients")
		return
	}

	list, err := h.service.ListClients(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"clients": list})
}

func (h *Handler) UpdateClient(c *gin.Context) {
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid request body")
		return
	}

	client, err := h.service.UpdateClient(
		c.Request.Context(),
		c.Param("id"),
		middleware.CallerID(c),
		middleware.IsAdmin(c),
		req,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"client": client})
}

func (h *Handler) DeleteClient(c *gin.Context) {
	err := h.service.DeleteClient(
		c.Request.Context(),
		c.Param("id"),
		middleware.CallerID(c),
		middleware.IsAdmin(c),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Client deleted"})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid client data")
	case errors.Is(err, ErrBadDocument):
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Document failed CPF/CNPJ validation")
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "The specified user does not exist")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this client")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process client")
	}
}
