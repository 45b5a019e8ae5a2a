package http

import (
	"math"

	"carbontrack-api/internal/prediction"
)

type predictReq struct {
	UserID string `json:"userId"`
}

// predictResp mirrors the dashboard contract. The days-to-threshold fields
// are pointers because an unreachable threshold serializes as null; Go's
// JSON encoder rejects +Inf outright.
type predictResp struct {
	DailyAvg     float64  `json:"dailyAvg"`
	Tomorrow     float64  `json:"tomorrow"`
	Next7Days    float64  `json:"next7days"`
	TotalOverall float64  `json:"totalOverall"`
	DaysTo20Kg   *float64 `json:"daysTo20Kg"`
	DaysTo30Kg   *float64 `json:"daysTo30Kg"`
}

func newPredictResp(o prediction.ForecastOutput) predictResp {
	return predictResp{
		DailyAvg:     o.DailyAvg,
		Tomorrow:     o.Tomorrow,
		Next7Days:    o.Next7Days,
		TotalOverall: o.TotalOverall,
		DaysTo20Kg:   finiteOrNull(o.DaysTo20Kg),
		DaysTo30Kg:   finiteOrNull(o.DaysTo30Kg),
	}
}

func finiteOrNull(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

type trendResp struct {
	Predicted *float64 `json:"predicted"`
	Direction string   `json:"direction"`
	Advisory  string   `json:"advisory"`
}

func newTrendResp(o prediction.TrendOutput) trendResp {
	return trendResp{
		Predicted: o.Predicted,
		Direction: o.Direction,
		Advisory:  o.Advisory,
	}
}
