package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carbontrack-api/internal/prediction"
	pkgErrors "carbontrack-api/pkg/errors"
	"carbontrack-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	prediction.ErrMissingOwner: pkgErrors.NewHTTPError(http.StatusBadRequest, "Missing userId"),
}

// Predict
// @Summary      Project emissions from the trailing 7-day average
// @Tags         predict
// @Accept       json
// @Produce      json
// @Param        body body predictReq true "User to project"
// @Security     BearerAuth
// @Success      200 {object} predictResp
// @Failure      400 {object} response.Resp
// @Router       /api/v1/predict/predict [post]
func (h handler) Predict(c *gin.Context) {
	ctx := c.Request.Context()

	var req predictReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "prediction.delivery.http.Predict.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, prediction.ErrMissingOwner, errorMapping)
		return
	}

	o, err := h.uc.Forecast(ctx, req.UserID)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newPredictResp(o))
}

// Trend
// @Summary      Extrapolate the next record from all-history deltas
// @Tags         predict
// @Accept       json
// @Produce      json
// @Param        body body predictReq true "User to project"
// @Security     BearerAuth
// @Success      200 {object} trendResp
// @Failure      400 {object} response.Resp
// @Router       /api/v1/predict/trend [post]
func (h handler) Trend(c *gin.Context) {
	ctx := c.Request.Context()

	var req predictReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "prediction.delivery.http.Trend.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, prediction.ErrMissingOwner, errorMapping)
		return
	}

	o, err := h.uc.Trend(ctx, req.UserID)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newTrendResp(o))
}
