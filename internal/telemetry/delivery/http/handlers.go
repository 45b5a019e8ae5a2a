package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carbontrack-api/internal/telemetry"
	pkgErrors "carbontrack-api/pkg/errors"
	"carbontrack-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	telemetry.ErrMissingFields: pkgErrors.NewHTTPError(http.StatusBadRequest, "Missing required data"),
}

type widgetReq struct {
	UserID         string   `json:"userId"`
	UserEmail      string   `json:"userEmail"`
	CPULoad        float64  `json:"cpuLoad"`
	BatteryPercent float64  `json:"batteryPercent"`
	CO2Emission    *float64 `json:"co2Emission"`
}

type widgetResp struct {
	Message         string  `json:"message"`
	CurrentEmission float64 `json:"currentEmission"`
}

// Widget
// @Summary      Ingest one widget telemetry sample
// @Description  Persists the sample as an ambient-telemetry record. Samples at or above 1 kg re-send an alert on every ingest; there is no latch on this path.
// @Tags         emission
// @Accept       json
// @Produce      json
// @Param        body body widgetReq true "Telemetry sample"
// @Success      200 {object} widgetResp
// @Failure      400 {object} response.Resp
// @Router       /api/v1/emission/widget [post]
func (h handler) Widget(c *gin.Context) {
	ctx := c.Request.Context()

	var req widgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "telemetry.delivery.http.Widget.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, telemetry.ErrMissingFields, errorMapping)
		return
	}

	if req.UserID == "" || req.CO2Emission == nil {
		response.ErrorWithMap(c, telemetry.ErrMissingFields, errorMapping)
		return
	}

	o, err := h.uc.Ingest(ctx, telemetry.IngestInput{
		UserID:         req.UserID,
		UserEmail:      req.UserEmail,
		CPULoad:        req.CPULoad,
		BatteryPercent: req.BatteryPercent,
		CO2Kg:          *req.CO2Emission,
	})
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, widgetResp{
		Message:         o.Message,
		CurrentEmission: o.CurrentEmission,
	})
}
