package repository

import (
	"context"
	"time"

	"carbontrack-api/internal/model"
)

// Repository persists emission records and answers the aggregate sums the
// alert and prediction layers read.
type Repository interface {
	Create(ctx context.Context, opt CreateRecordOption) (model.EmissionRecord, error)
	Detail(ctx context.Context, id string) (model.EmissionRecord, error)
	List(ctx context.Context, opt ListRecordOption) ([]model.EmissionRecord, int64, error)
	ListAsc(ctx context.Context, ownerID string) ([]model.EmissionRecord, error)
	Delete(ctx context.Context, id string) error

	SumAll(ctx context.Context, ownerID string) (float64, error)
	SumSince(ctx context.Context, ownerID string, since time.Time) (float64, error)
}
