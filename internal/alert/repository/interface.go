package repository

import (
	"context"

	"carbontrack-api/internal/model"
)

// Repository persists the single-row threshold configuration and the
// per-user alert latches.
type Repository interface {
	// GetConfig returns the threshold configuration, creating the default
	// row on first access.
	GetConfig(ctx context.Context) (model.ThresholdConfig, error)
	SetConfig(ctx context.Context, opt SetConfigOption) (model.ThresholdConfig, error)

	// GetOrCreateState loads the user's alert state, creating the initial
	// not-notified row when absent.
	GetOrCreateState(ctx context.Context, ownerID string) (model.UserAlertState, error)

	// MarkFirstSent atomically flips firstThresholdSent from false to
	// true. It reports whether this call performed the transition; false
	// means another evaluation already latched the flag.
	MarkFirstSent(ctx context.Context, ownerID string) (bool, error)

	// Touch refreshes the state row's updated_at.
	Touch(ctx context.Context, ownerID string) error
}
