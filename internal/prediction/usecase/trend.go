package usecase

import (
	"context"
	"math"

	"carbontrack-api/internal/prediction"
)

// Trend averages the successive record deltas over the full history and
// adds that average to the most recent value. Unlike Forecast it sees every
// record ever logged, not just the trailing week.
func (uc *implUsecase) Trend(ctx context.Context, ownerID string) (prediction.TrendOutput, error) {
	if ownerID == "" {
		return prediction.TrendOutput{}, prediction.ErrMissingOwner
	}

	recs, err := uc.recordUC.ListAscending(ctx, ownerID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.prediction.usecase.Trend.recordUC.ListAscending: %v", err)
		return prediction.TrendOutput{}, err
	}

	if len(recs) < 2 {
		return prediction.TrendOutput{
			Direction: prediction.TrendStable,
			Advisory:  prediction.AdvisoryInsufficientData,
		}, nil
	}

	var deltaSum float64
	for i := 1; i < len(recs); i++ {
		deltaSum += recs[i].CO2Kg - recs[i-1].CO2Kg
	}
	avgDelta := deltaSum / float64(len(recs)-1)

	last := recs[len(recs)-1].CO2Kg
	predicted := math.Round((last+avgDelta)*100) / 100

	out := prediction.TrendOutput{Predicted: &predicted}
	switch {
	case avgDelta > 2:
		out.Direction = prediction.TrendIncreasing
		out.Advisory = prediction.AdvisoryIncreasing
	case avgDelta < -1:
		out.Direction = prediction.TrendDecreasing
		out.Advisory = prediction.AdvisoryDecreasing
	default:
		out.Direction = prediction.TrendStable
		out.Advisory = prediction.AdvisoryStable
	}

	return out, nil
}
