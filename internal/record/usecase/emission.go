// Package usecase computes CO2 figures for device usage, waste disposal and
// widget telemetry, and serves the aggregate sums consumed by the alert
// evaluator and the predictor.
package usecase

import "math"

// gridEmissionFactor is the kg of CO2 emitted per kWh drawn from the grid.
const gridEmissionFactor = 0.82

// wasteBaseFactors maps waste type to kg CO2 per kg of waste.
var wasteBaseFactors = map[string]float64{
	"Laptop":      200,
	"Desktop":     350,
	"Monitor":     150,
	"Battery":     8,
	"Cable":       2,
	"Motherboard": 120,
}

// wasteTreatmentModifiers scale the base factor by disposal route. Unknown
// treatments fall back to 1.
var wasteTreatmentModifiers = map[string]float64{
	"Recycled": 0.8,
	"Disposed": 1.2,
	"Donated":  0.6,
	"Reused":   0.4,
}

// deviceEmission converts watts and hours into kg CO2, rounded to three
// decimals. Non-finite or negative intermediate values collapse to 0.
func deviceEmission(powerWatts, usageHours float64) float64 {
	kWh := powerWatts * usageHours / 1000
	co2 := kWh * gridEmissionFactor
	return clampEmission(co2)
}

// efficiencyRating scores 5 (best) to 1 (worst) from kg CO2 per hour of use.
func efficiencyRating(co2Kg, usageHours float64) int {
	rate := co2Kg / usageHours
	switch {
	case rate <= 0.3:
		return 5
	case rate <= 0.6:
		return 4
	case rate <= 1.0:
		return 3
	case rate <= 2.0:
		return 2
	default:
		return 1
	}
}

// wasteEmission converts an amount of waste into kg CO2. Amount is in kg,
// callers convert tons beforehand.
func wasteEmission(wasteType, treatmentType string, amountKg float64) float64 {
	base := wasteBaseFactors[wasteType]
	modifier, ok := wasteTreatmentModifiers[treatmentType]
	if !ok {
		modifier = 1
	}
	return clampEmission(base * amountKg * modifier)
}

// clampEmission rounds to three decimals and floors non-finite or negative
// values at zero.
func clampEmission(co2 float64) float64 {
	if math.IsNaN(co2) || math.IsInf(co2, 0) || co2 < 0 {
		return 0
	}
	return math.Round(co2*1000) / 1000
}
