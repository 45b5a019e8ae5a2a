package alert

import (
	"context"

	"carbontrack-api/internal/model"
)

// UseCase is the emission alert engine: the per-user threshold evaluation
// with its one-shot first-threshold latch, and the admin-tunable threshold
// settings behind it.
type UseCase interface {
	// Evaluate runs the threshold state machine for one user. The first
	// threshold fires at most once per user ever; the critical threshold
	// fires on every call while the total stays above it.
	Evaluate(ctx context.Context, ip EvaluateInput) (EvaluateOutput, error)

	GetSettings(ctx context.Context) (model.ThresholdConfig, error)
	UpdateSettings(ctx context.Context, sc model.Scope, ip UpdateSettingsInput) (model.ThresholdConfig, error)
}
