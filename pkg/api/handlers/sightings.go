package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/radiowatch/radiowatch/pkg/api/types"
	"github.com/radiowatch/radiowatch/pkg/device"
	"github.com/radiowatch/radiowatch/pkg/journal"
)

// SightingReader reads journaled sightings. Satisfied by *journal.DB.
type SightingReader interface {
	RecentSightings(ctx context.Context, mac string, limit int) ([]journal.Sighting, error)
}

// SightingsHandler serves journaled device history
type SightingsHandler struct {
	reader SightingReader
}

// NewSightingsHandler creates a new sightings handler. A nil reader
// means the journal is disabled.
func NewSightingsHandler(reader SightingReader) *SightingsHandler {
	return &SightingsHandler{reader: reader}
}

// Sightings handles GET /devices/:mac/sightings
// @Summary      Journaled sightings for a device
// @Description  Returns recent journal rows for one hardware address, newest first
// @Tags         devices
// @Produce      json
// @Param        mac    path   string  true   "Device hardware address"
// @Param        limit  query  int     false  "Maximum rows to return"
// @Success      200    {object}  types.SightingsResponse
// @Failure      404    {object}  types.ErrorResponse  "Journal disabled"
// @Failure      500    {object}  types.ErrorResponse  "Journal error"
// @Router       /devices/{mac}/sightings [get]
func (h *SightingsHandler) Sightings(c *gin.Context) {
	if h.reader == nil {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:   "journal_disabled",
			Message: "snapshot journal is not configured",
		})
		return
	}

	mac := device.NormalizeAddr(c.Param("mac"))

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	sightings, err := h.reader.RecentSightings(c.Request.Context(), mac, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "journal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.SightingsResponse{
		MAC:       mac,
		Sightings: sightings,
		Count:     len(sightings),
	})
}
