package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/radiowatch/radiowatch/pkg/api/types"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	store Snapshotter
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store Snapshotter) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health handles GET /health
// @Summary      Health check
// @Description  Returns service status and the current device count
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:    "healthy",
		Devices:   h.store.Len(),
		Timestamp: time.Now().Unix(),
	})
}
