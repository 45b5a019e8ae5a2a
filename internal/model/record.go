package model

import "time"

// SourceCategory identifies where an emission record came from.
type SourceCategory string

const (
	SourceDeviceUsage      SourceCategory = "device-usage"
	SourceWasteDisposal    SourceCategory = "waste-disposal"
	SourceAmbientTelemetry SourceCategory = "ambient-telemetry"
)

// Valid reports whether the category is one of the known sources.
func (s SourceCategory) Valid() bool {
	switch s {
	case SourceDeviceUsage, SourceWasteDisposal, SourceAmbientTelemetry:
		return true
	}
	return false
}

// EmissionRecord is one computed CO2 entry owned by a single user.
// Records are immutable once created; the owner may delete them.
type EmissionRecord struct {
	ID             string         `json:"id" db:"id"`
	OwnerID        string         `json:"owner_id" db:"owner_id"`
	SourceCategory SourceCategory `json:"source_category" db:"source_category"`
	CO2Kg          float64        `json:"co2_kg" db:"co2_kg"`

	// Device-usage intake fields; zero-valued for other categories.
	DeviceType  string  `json:"device_type,omitempty" db:"device_type"`
	PowerRating float64 `json:"power_rating,omitempty" db:"power_rating"`
	UsageHours  float64 `json:"usage_hours,omitempty" db:"usage_hours"`
	Efficiency  int     `json:"efficiency,omitempty" db:"efficiency"`

	// Telemetry fields; zero-valued for other categories.
	CPULoad        float64 `json:"cpu_load,omitempty" db:"cpu_load"`
	BatteryPercent float64 `json:"battery_percent,omitempty" db:"battery_percent"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// EmissionAggregate is the read-model produced by the aggregator.
// DailyAverage divides the trailing window by a full 7 days; a sparse week
// is diluted on purpose.
type EmissionAggregate struct {
	LifetimeTotal  float64 `json:"lifetime_total"`
	Last7DaysTotal float64 `json:"last_7_days_total"`
	DailyAverage   float64 `json:"daily_average"`
}
