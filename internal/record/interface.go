package record

import (
	"context"

	"carbontrack-api/internal/model"
)

// UseCase covers the emission record store: intake of computed CO2 values,
// owner-scoped history, deletion, and the read-only aggregation consumed by
// the alert evaluator and the predictor.
type UseCase interface {
	Calculate(ctx context.Context, sc model.Scope, ip CalculateInput) (RecordOutput, error)
	LogWaste(ctx context.Context, sc model.Scope, ip WasteInput) (RecordOutput, error)
	Ingest(ctx context.Context, ip IngestInput) (RecordOutput, error)
	History(ctx context.Context, sc model.Scope, ip HistoryInput) (HistoryOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Aggregate computes the lifetime total, the trailing-7-day total and
	// the daily average for one owner. Pure read, no side effects.
	Aggregate(ctx context.Context, ownerID string) (model.EmissionAggregate, error)

	// ListAscending returns every record for the owner ordered oldest
	// first. The delta-trend predictor consumes this.
	ListAscending(ctx context.Context, ownerID string) ([]model.EmissionRecord, error)
}
