package alert

import "errors"

var (
	ErrMissingOwner         = errors.New("userId and userEmail are required")
	ErrThresholdOrder       = errors.New("criticalThreshold must be greater than or equal to firstThreshold")
	ErrNonPositiveThreshold = errors.New("thresholds must be positive numbers")
)
