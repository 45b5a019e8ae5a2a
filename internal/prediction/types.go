package prediction

// Example call sites for DaysToThreshold, surfaced on the dashboard.
const (
	ExampleThreshold20Kg = 20.0
	ExampleThreshold30Kg = 30.0
)

// Trend directions with their fixed advisory messages.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"

	AdvisoryIncreasing       = "Your CO2 footprint is increasing. Consider reducing daily usage or switching to energy-efficient devices."
	AdvisoryDecreasing       = "Great job! Your CO2 impact is reducing - keep it up!"
	AdvisoryStable           = "Stable usage. Try optimizing further for a greener impact."
	AdvisoryInsufficientData = "Add more data to generate accurate predictions."
)

// ForecastOutput carries the persistence-of-trend projection. DaysTo20Kg
// and DaysTo30Kg are +Inf when the daily average is zero (threshold
// unreachable at the current rate) and may be zero or negative when the
// threshold is already passed.
type ForecastOutput struct {
	DailyAvg     float64
	Tomorrow     float64
	Next7Days    float64
	TotalOverall float64
	DaysTo20Kg   float64
	DaysTo30Kg   float64
}

// TrendOutput carries the delta-trend projection. Predicted is nil when
// fewer than two records exist.
type TrendOutput struct {
	Predicted *float64
	Direction string
	Advisory  string
}
