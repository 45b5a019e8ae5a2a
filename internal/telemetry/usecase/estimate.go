package usecase

// Power model mirrored from the desktop widget so server-side consumers can
// reproduce its per-minute estimate: a fixed baseline, a CPU share scaled
// by load, a small drain penalty while discharging.
const (
	basePowerWatts  = 25.0
	cpuPowerWatts   = 45.0
	dischargeWatts  = 5.0
	gridKgCO2PerKWh = 0.475
	minutesToHours  = 1.0 / 60.0
)

// EstimatePerMinute returns the kg CO2 estimate for one minute of activity
// at the given CPU load.
func EstimatePerMinute(cpuLoadPercent float64, charging bool) float64 {
	watts := basePowerWatts + (cpuLoadPercent/100)*cpuPowerWatts
	if !charging {
		watts += dischargeWatts
	}
	return (watts / 1000) * gridKgCO2PerKWh * minutesToHours
}
