package alert

// Notification severities carried to the mailer and the live feed.
const (
	SeverityFirstThreshold = "first-threshold"
	SeverityCritical       = "critical"
	SeveritySpike          = "spike"
)

type EvaluateInput struct {
	OwnerID    string
	OwnerEmail string
}

type EvaluateOutput struct {
	LifetimeTotal float64
	FirstFired    bool
	CriticalFired bool

	// Active thresholds, echoed for client display.
	FirstThreshold    float64
	CriticalThreshold float64
}

// UpdateSettingsInput overwrites only the fields that are present.
type UpdateSettingsInput struct {
	Enabled           *bool
	FirstThreshold    *float64
	CriticalThreshold *float64
}
