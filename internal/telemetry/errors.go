package telemetry

import "errors"

var ErrMissingFields = errors.New("userId and co2Emission are required")
