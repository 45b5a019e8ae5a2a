package record

import (
	"carbontrack-api/internal/model"
	"carbontrack-api/pkg/paginator"
)

// CalculateInput is the device-usage intake. Power is watts, usage is hours.
type CalculateInput struct {
	DeviceType  string
	PowerRating float64
	UsageHours  float64
}

// WasteInput is the waste-disposal intake. Amount is interpreted per Unit
// (kg or tons) and converted to kilograms before the factor table applies.
type WasteInput struct {
	WasteType     string
	TreatmentType string
	Amount        float64
	Unit          string
}

// IngestInput is the unauthenticated widget telemetry intake. The widget
// reports its own CO2 estimate alongside the sensor readings it derived it
// from.
type IngestInput struct {
	UserID         string
	CO2Kg          float64
	CPULoad        float64
	BatteryPercent float64
}

type HistoryInput struct {
	PaginateQuery paginator.PaginateQuery
	Category      string
}

type HistoryOutput struct {
	Records   []model.EmissionRecord
	Paginator paginator.Paginator
}

type RecordOutput struct {
	Record model.EmissionRecord
}
