package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/radiowatch/radiowatch/pkg/api/types"
	"github.com/radiowatch/radiowatch/pkg/device"
	"github.com/radiowatch/radiowatch/pkg/device/schema"
)

// Ingester accepts observations into the store. Satisfied by
// *device.Store.
type Ingester interface {
	Update(obs device.Observation)
}

// ObservationsHandler accepts observations pushed by remote probes
type ObservationsHandler struct {
	store     Ingester
	validator *schema.Validator
}

// NewObservationsHandler creates a new observations handler
func NewObservationsHandler(store Ingester, validator *schema.Validator) *ObservationsHandler {
	return &ObservationsHandler{store: store, validator: validator}
}

// Ingest handles POST /observations
// @Summary      Push an observation
// @Description  Accepts one device sighting from a remote probe. The payload is schema-checked; incomplete observations are accepted and silently dropped by the store.
// @Tags         observations
// @Accept       json
// @Produce      json
// @Param        request  body      types.ObservationRequest  true  "Observation"
// @Success      202      {object}  types.ObservationResponse
// @Failure      400      {object}  types.ErrorResponse  "Malformed payload"
// @Router       /observations [post]
func (h *ObservationsHandler) Ingest(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "failed to read request body",
		})
		return
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "body must be a JSON object",
		})
		return
	}

	if err := h.validator.Validate(payload); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_observation",
			Message: err.Error(),
		})
		return
	}

	var req types.ObservationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return
	}

	obs := device.Observation{
		Type:   device.Type(req.Type),
		Addr:   req.MAC,
		Signal: req.SignalDBM,
	}
	if req.Name != nil {
		obs.Name = *req.Name
	}
	if req.SSID != nil {
		obs.SSID = *req.SSID
	}

	// The store applies its own drop rules; a structurally valid but
	// incomplete observation is accepted here and dropped there.
	h.store.Update(obs)

	c.JSON(http.StatusAccepted, types.ObservationResponse{Status: "accepted"})
}
