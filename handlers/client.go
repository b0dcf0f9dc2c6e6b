package handlers

import (
	"errors"
	"net/http"

	clientRepo "clinic/database/repository/client"
	clientSvc "clinic/services/client"
	"clinic/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler serves patient profile endpoints.
type ClientHandler struct {
	Service clientSvc.ClientService
}

func NewClientHandler(svc clientSvc.ClientService) *ClientHandler {
	return &ClientHandler{Service: svc}
}

// GetClientHandler handles GET /api/user/:user_id.
func (h *ClientHandler) GetClientHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.Param("user_id")

	cli, err := h.Service.GetClient(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "NOT_FOUND"})
			return
		}
		logger.Error("failed to fetch client", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "SERVER_ERROR", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cli)
}

// RegisterClientHandler handles POST /api/user.
func (h *ClientHandler) RegisterClientHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		UserID    string `json:"user_id"`
		FullName  string `json:"full_name"`
		BirthDate string `json:"birth_date"`
		Phone     string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id required"})
		return
	}

	cli, err := h.Service.RegisterClient(c.Request.Context(), req.UserID, req.FullName, req.BirthDate, req.Phone)
	if err != nil {
		logger.Error("failed to register client", zap.String("userID", req.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "SERVER_ERROR", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cli)
}

// UpdateClientHandler handles PUT /api/user/:user_id.
func (h *ClientHandler) UpdateClientHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.Param("user_id")

	var req struct {
		FullName  string `json:"full_name"`
		BirthDate string `json:"birth_date"`
		Phone     string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.UpdateClient(c.Request.Context(), userID, req.FullName, req.BirthDate, req.Phone); err != nil {
		logger.Error("failed to update client", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "SERVER_ERROR", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
