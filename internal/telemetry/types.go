package telemetry

// SpikeThresholdKg is the fixed per-sample alert threshold for widget
// telemetry. Intentionally separate from the admin-tunable evaluator
// thresholds.
const SpikeThresholdKg = 1.0

type IngestInput struct {
	UserID         string
	UserEmail      string
	CPULoad        float64
	BatteryPercent float64
	CO2Kg          float64
}

type IngestOutput struct {
	Message         string
	CurrentEmission float64
	SpikeFired      bool
}
