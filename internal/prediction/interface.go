package prediction

import "context"

// UseCase exposes the two emission predictors. Forecast projects from the
// trailing-7-day average; Trend extrapolates from the day-over-day deltas
// across the full history. They answer different questions and both feed
// different dashboard panels.
type UseCase interface {
	Forecast(ctx context.Context, ownerID string) (ForecastOutput, error)
	Trend(ctx context.Context, ownerID string) (TrendOutput, error)
}
