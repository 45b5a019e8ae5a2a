package alert

// Policy decides whether a CO2 value should trigger a notification. The
// engine runs two stateful-vs-stateless variants side by side: the one-shot
// first-threshold latch and the recurring critical reminder. The widget
// ingestion path carries a third, fixed-threshold spike policy. They stay
// separate because their firing semantics genuinely differ.
type Policy interface {
	// ShouldFire reports whether value crosses the policy's threshold,
	// given whether this policy has already fired for the user.
	ShouldFire(value float64, alreadyFired bool) bool

	Severity() string
}

// LatchedThresholdPolicy fires exactly once: crossing the threshold after
// having fired before is ignored.
type LatchedThresholdPolicy struct {
	Threshold float64
}

func (p LatchedThresholdPolicy) ShouldFire(value float64, alreadyFired bool) bool {
	return value >= p.Threshold && !alreadyFired
}

func (p LatchedThresholdPolicy) Severity() string { return SeverityFirstThreshold }

// RecurringThresholdPolicy fires on every evaluation while the value holds
// at or above the threshold, regardless of prior firings.
type RecurringThresholdPolicy struct {
	Threshold float64
}

func (p RecurringThresholdPolicy) ShouldFire(value float64, _ bool) bool {
	return value >= p.Threshold
}

func (p RecurringThresholdPolicy) Severity() string { return SeverityCritical }

// SpikePolicy is the stateless single-sample check used on widget telemetry.
// Every sample at or above the threshold re-fires.
type SpikePolicy struct {
	Threshold float64
}

func (p SpikePolicy) ShouldFire(value float64, _ bool) bool {
	return value >= p.Threshold
}

func (p SpikePolicy) Severity() string { return SeveritySpike }
