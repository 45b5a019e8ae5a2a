package repository

// SetConfigOption overwrites only non-nil fields.
type SetConfigOption struct {
	Enabled           *bool
	FirstThreshold    *float64
	CriticalThreshold *float64
}
