package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/radiowatch/radiowatch/pkg/api/types"
	"github.com/radiowatch/radiowatch/pkg/device"
)

// Snapshotter provides the live device view. Satisfied by
// *device.Store.
type Snapshotter interface {
	Snapshot() []device.View
	Len() int
}

// DevicesHandler handles snapshot read endpoints
type DevicesHandler struct {
	store Snapshotter
}

// NewDevicesHandler creates a new devices handler
func NewDevicesHandler(store Snapshotter) *DevicesHandler {
	return &DevicesHandler{store: store}
}

// ListDevices handles GET /devices
// @Summary      List observed devices
// @Description  Returns a point-in-time snapshot of every observed device, Wi-Fi first, strongest signal first
// @Tags         devices
// @Produce      json
// @Success      200  {object}  types.ListDevicesResponse
// @Router       /devices [get]
func (h *DevicesHandler) ListDevices(c *gin.Context) {
	snapshot := h.store.Snapshot()

	views := make([]types.DeviceView, 0, len(snapshot))
	for _, v := range snapshot {
		views = append(views, types.DeviceView{
			View:        v,
			LastSeenISO: time.Unix(v.LastSeen, 0).UTC().Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, types.ListDevicesResponse{
		Devices:    views,
		Count:      len(views),
		ServerTime: time.Now().Unix(),
	})
}
