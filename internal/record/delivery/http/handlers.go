package http

import (
	"github.com/gin-gonic/gin"

	"carbontrack-api/internal/middleware"
	"carbontrack-api/internal/record"
	"carbontrack-api/pkg/paginator"
	"carbontrack-api/pkg/response"
)

// Calculate
// @Summary      Calculate device emission
// @Description  Computes kg CO2 from a device's power draw and usage hours, scores its efficiency and stores the record.
// @Tags         footprint
// @Accept       json
// @Produce      json
// @Param        body body calculateReq true "Device usage"
// @Security     BearerAuth
// @Success      200 {object} calculateResp
// @Router       /api/v1/footprint/calculate [post]
func (h handler) Calculate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req calculateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "record.delivery.http.Calculate.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, record.ErrInvalidInput, errorMapping)
		return
	}

	o, err := h.uc.Calculate(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, calculateResp{
		Message:   "Calculation saved successfully!",
		Footprint: newRecordItem(o.Record),
	})
}

// LogWaste
// @Summary      Log waste disposal emission
// @Tags         footprint
// @Accept       json
// @Produce      json
// @Param        body body wasteReq true "Waste disposal"
// @Security     BearerAuth
// @Success      200 {object} calculateResp
// @Router       /api/v1/footprint/waste [post]
func (h handler) LogWaste(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req wasteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "record.delivery.http.LogWaste.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, record.ErrInvalidAmount, errorMapping)
		return
	}

	o, err := h.uc.LogWaste(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, calculateResp{
		Message:   "Waste record added successfully",
		Footprint: newRecordItem(o.Record),
	})
}

// History
// @Summary      List the caller's emission records, newest first
// @Tags         footprint
// @Produce      json
// @Param        page query int false "Page"
// @Param        limit query int false "Items per page"
// @Param        category query string false "Filter by source category"
// @Security     BearerAuth
// @Success      200 {object} historyResp
// @Router       /api/v1/footprint/history [get]
func (h handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "record.delivery.http.History.ShouldBindQuery: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	o, err := h.uc.History(ctx, sc, record.HistoryInput{
		PaginateQuery: paginator.PaginateQuery{Page: req.Page, Limit: req.Limit},
		Category:      req.Category,
	})
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newHistoryResp(o))
}

// Delete
// @Summary      Delete one emission record
// @Tags         footprint
// @Produce      json
// @Param        id path string true "Record ID"
// @Security     BearerAuth
// @Success      200 {object} response.Resp
// @Router       /api/v1/footprint/{id} [delete]
func (h handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, gin.H{"message": "Record deleted successfully"})
}
