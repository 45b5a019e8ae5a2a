package model

import "time"

// Default thresholds applied when the configuration row is created lazily.
const (
	DefaultFirstThreshold    = 10.0
	DefaultCriticalThreshold = 15.0
)

// ThresholdConfig is the single admin-editable alerting configuration.
// It is created on first read with the defaults above and updated only
// through the admin settings endpoint.
type ThresholdConfig struct {
	Enabled           bool      `json:"enabled" db:"enabled"`
	FirstThreshold    float64   `json:"first_threshold" db:"first_threshold"`
	CriticalThreshold float64   `json:"critical_threshold" db:"critical_threshold"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// DefaultThresholdConfig returns the configuration used when none exists yet.
func DefaultThresholdConfig() ThresholdConfig {
	return ThresholdConfig{
		Enabled:           true,
		FirstThreshold:    DefaultFirstThreshold,
		CriticalThreshold: DefaultCriticalThreshold,
	}
}

// UserAlertState tracks the per-user first-threshold latch. The latch moves
// false -> true exactly once and never reverts, even if the user later
// deletes records and drops back under the threshold. The critical
// threshold keeps no state; it re-fires on every evaluation.
type UserAlertState struct {
	OwnerID            string    `json:"owner_id" db:"owner_id"`
	FirstThresholdSent bool      `json:"first_threshold_sent" db:"first_threshold_sent"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}
