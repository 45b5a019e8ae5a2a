package http

import (
	"github.com/gin-gonic/gin"

	"carbontrack-api/internal/alert"
	"carbontrack-api/internal/middleware"
	"carbontrack-api/pkg/response"
)

// CheckTotal
// @Summary      Evaluate the caller's emission total against the alert thresholds
// @Description  Returns the lifetime total plus which alerts fired. The first-threshold alert fires once per user; the critical alert re-fires on every check above the threshold.
// @Tags         alert
// @Accept       json
// @Produce      json
// @Param        body body checkTotalReq true "User to evaluate"
// @Security     BearerAuth
// @Success      200 {object} checkTotalResp
// @Failure      400 {object} response.Resp
// @Router       /api/v1/alert/check-total [post]
func (h handler) CheckTotal(c *gin.Context) {
	ctx := c.Request.Context()

	var req checkTotalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "alert.delivery.http.CheckTotal.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, alert.ErrMissingOwner, errorMapping)
		return
	}

	o, err := h.uc.Evaluate(ctx, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newCheckTotalResp(o))
}

// GetSettings
// @Summary      Read the alert threshold configuration
// @Description  Creates the default configuration on first access.
// @Tags         alert
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} settingsResp
// @Router       /api/v1/alert/settings [get]
func (h handler) GetSettings(c *gin.Context) {
	ctx := c.Request.Context()

	cfg, err := h.uc.GetSettings(ctx)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newSettingsResp(cfg))
}

// UpdateSettings
// @Summary      Update the alert threshold configuration
// @Description  Admin only. Fields left out of the body keep their current values.
// @Tags         alert
// @Accept       json
// @Produce      json
// @Param        body body updateSettingsReq true "Fields to overwrite"
// @Security     BearerAuth
// @Success      200 {object} settingsResp
// @Failure      400 {object} response.Resp
// @Router       /api/v1/alert/settings [post]
func (h handler) UpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "alert.delivery.http.UpdateSettings.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, alert.ErrNonPositiveThreshold, errorMapping)
		return
	}

	cfg, err := h.uc.UpdateSettings(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newSettingsResp(cfg))
}
