package http

import (
	"time"

	"carbontrack-api/internal/model"
	"carbontrack-api/internal/record"
	"carbontrack-api/pkg/paginator"
)

type calculateReq struct {
	DeviceType  string  `json:"deviceType" binding:"required"`
	PowerRating float64 `json:"powerRating" binding:"required"`
	UsageHours  float64 `json:"usageHours" binding:"required"`
}

func (req calculateReq) toInput() record.CalculateInput {
	return record.CalculateInput{
		DeviceType:  req.DeviceType,
		PowerRating: req.PowerRating,
		UsageHours:  req.UsageHours,
	}
}

type wasteReq struct {
	WasteType     string  `json:"wasteType" binding:"required"`
	TreatmentType string  `json:"treatmentType" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Unit          string  `json:"unit" binding:"required"`
}

func (req wasteReq) toInput() record.WasteInput {
	return record.WasteInput{
		WasteType:     req.WasteType,
		TreatmentType: req.TreatmentType,
		Amount:        req.Amount,
		Unit:          req.Unit,
	}
}

type historyReq struct {
	Page     int    `form:"page"`
	Limit    int64  `form:"limit"`
	Category string `form:"category"`
}

type recordItem struct {
	ID             string    `json:"id"`
	SourceCategory string    `json:"sourceCategory"`
	CO2Emission    float64   `json:"co2Emission"`
	DeviceType     string    `json:"deviceType,omitempty"`
	PowerRating    float64   `json:"powerRating,omitempty"`
	UsageHours     float64   `json:"usageHours,omitempty"`
	Efficiency     int       `json:"efficiency,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func newRecordItem(rec model.EmissionRecord) recordItem {
	return recordItem{
		ID:             rec.ID,
		SourceCategory: string(rec.SourceCategory),
		CO2Emission:    rec.CO2Kg,
		DeviceType:     rec.DeviceType,
		PowerRating:    rec.PowerRating,
		UsageHours:     rec.UsageHours,
		Efficiency:     rec.Efficiency,
		CreatedAt:      rec.CreatedAt,
	}
}

type calculateResp struct {
	Message   string     `json:"message"`
	Footprint recordItem `json:"footprint"`
}

type historyResp struct {
	Records []recordItem        `json:"records"`
	Meta    paginator.Paginator `json:"meta"`
}

func newHistoryResp(o record.HistoryOutput) historyResp {
	items := make([]recordItem, 0, len(o.Records))
	for _, rec := range o.Records {
		items = append(items, newRecordItem(rec))
	}

	return historyResp{
		Records: items,
		Meta:    o.Paginator,
	}
}
