package usecase

import (
	"context"
	"math"

	"carbontrack-api/internal/prediction"
)

// Forecast is the naive persistence-of-trend model: tomorrow repeats the
// trailing daily average, the next week repeats it seven times.
func (uc *implUsecase) Forecast(ctx context.Context, ownerID string) (prediction.ForecastOutput, error) {
	if ownerID == "" {
		return prediction.ForecastOutput{}, prediction.ErrMissingOwner
	}

	agg, err := uc.recordUC.Aggregate(ctx, ownerID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.prediction.usecase.Forecast.recordUC.Aggregate: %v", err)
		return prediction.ForecastOutput{}, err
	}

	return prediction.ForecastOutput{
		DailyAvg:     agg.DailyAverage,
		Tomorrow:     agg.DailyAverage,
		Next7Days:    agg.DailyAverage * 7,
		TotalOverall: agg.LifetimeTotal,
		DaysTo20Kg:   daysToThreshold(prediction.ExampleThreshold20Kg, agg.LifetimeTotal, agg.DailyAverage),
		DaysTo30Kg:   daysToThreshold(prediction.ExampleThreshold30Kg, agg.LifetimeTotal, agg.DailyAverage),
	}, nil
}

// daysToThreshold returns how many days of the current average rate remain
// until the lifetime total reaches t. Zero or negative means the threshold
// is already passed; +Inf means it is unreachable at a zero rate. Callers
// surface the raw value, interpretation is the client's job.
func daysToThreshold(t, lifetimeTotal, dailyAvg float64) float64 {
	if dailyAvg <= 0 {
		return math.Inf(1)
	}
	return (t - lifetimeTotal) / dailyAvg
}
