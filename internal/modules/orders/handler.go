package orders

import (
	"errors"
	"net/http"

	"serviceflow/internal/middleware"
	"serviceflow/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/service-orders", h.CreateOrder)
	rg.GET("/service-orders", h.ListOrders)
	rg.PUT("/service-orders/:id", h.UpdateOrder)
	rg.DELETE("/service-orders/:id", h.DeleteOrder)
	rg.GET("/dashboard/stats", h.DashboardStats)
}

// scopedUserID resolves the user id a list/read call is scoped to: the
// query parameter when present, the token subject otherwise. A non-admin
// asking for someone else's data is refused.
func scopedUserID(c *gin.Context) (string, bool) {
	userID := c.Query("userId")
	if userID == "" {
		return middleware.CallerID(c), true
	}
	if userID != middleware.CallerID(c) && !middleware.IsAdmin(c) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Cannot access another user's data")
		return "", false
	}
	return userID, true
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid request body")
		return
	}

	userID := middleware.CallerID(c)
	if req.UserID != "" && req.UserID != userID && middleware.IsAdmin(c) {
		userID = req.UserID
	}

	order, err := h.service.CreateOrder(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"order": order})
}

func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := scopedUserID(c)
	if !ok {
		return
	}

	list, err := h.service.ListOrders(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"orders": list})
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid request body")
		return
	}

	order, err := h.service.UpdateOrder(
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

	response.Success(c, http.StatusOK, gin.H{"order": order})
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	err := h.service.DeleteOrder(
		c.Request.Context(),
		c.Param("id"),
		middleware.CallerID(c),
		middleware.IsAdmin(c),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Service order deleted"})
}

func (h *Handler) DashboardStats(c *gin.Context) {
	userID, ok := scopedUserID(c)
	if !ok {
		return
	}

	stats, err := h.service.GetDashboardStats(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid service order data")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service order not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this service order")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process service order")
	}
}
