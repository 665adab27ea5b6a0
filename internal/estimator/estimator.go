// Package estimator computes solar system sizing and financial projections
// from two raw inputs: average monthly energy consumption (kWh) and available
// roof area (m²). It is a pure computation package: deterministic, no I/O,
// no hidden state, safe for concurrent use.
//
// The model is intentionally a rough linear heuristic, not an engineering
// simulation. All constants are national averages for residential solar in
// Brazil and live in this file so a future configuration surface has a single
// place to hook into.
//
// Numeric policy:
//   - Currency outputs are rounded to 2 decimal places (reais). Use ToCents
//     to convert to integer minor units before persisting.
//   - PaybackPeriodMonths rounds to the nearest whole month.
//   - If monthly savings round down to zero cents the payback ratio is
//     undefined; Result.PaybackUndefined is set instead of dividing by zero.
package estimator

import (
	"errors"
	"math"
)

// Model constants. Averages for the Brazilian residential market.
const (
	// WattsPerSquareMeter is the assumed panel yield per m² of usable roof.
	WattsPerSquareMeter = 150.0

	// CostPerKw is the average installed system price in R$ per kW.
	CostPerKw = 5000.0

	// PricePerKwh is the average grid energy price in R$ per kWh.
	PricePerKwh = 0.70

	// CO2KgPerKwh is the proxy factor for avoided emissions, kg CO2 per kWh
	// of consumption offset by the system.
	CO2KgPerKwh = 0.5
)

// ErrInvalidInput is returned when either estimate argument is non-positive
// or non-finite (NaN/Inf).
var ErrInvalidInput = errors.New("estimator: inputs must be positive finite numbers")

// Result is the transient output of Estimate. It is never persisted as its
// own entity; budget submissions flatten the monetary fields into minor-unit
// columns (see domain.Budget).
type Result struct {
	// SystemSizeKw is the recommended system size in kW.
	SystemSizeKw float64 `json:"system_size_kw"`
	// EstimatedCost is the installed system price in R$.
	EstimatedCost float64 `json:"estimated_cost"`
	// EstimatedMonthlySavings is the projected monthly bill reduction in R$.
	EstimatedMonthlySavings float64 `json:"estimated_monthly_savings"`
	// PaybackPeriodMonths is cost divided by monthly savings, rounded to the
	// nearest month. Zero when PaybackUndefined is true.
	PaybackPeriodMonths int `json:"payback_period_months"`
	// PaybackUndefined reports that monthly savings rounded to zero cents,
	// making the payback ratio meaningless.
	PaybackUndefined bool `json:"payback_undefined,omitempty"`
	// AnnualSavings is EstimatedMonthlySavings projected over 12 months.
	AnnualSavings float64 `json:"annual_savings"`
	// CO2ReductionKgPerMonth is the avoided-emissions proxy in kg/month.
	CO2ReductionKgPerMonth float64 `json:"co2_reduction_kg_per_month"`
}

// Estimate derives a Result from monthly consumption (kWh) and roof area (m²).
//
// Both inputs must be positive finite numbers; otherwise ErrInvalidInput is
// returned. Calling Estimate twice with identical inputs yields identical
// output.
func Estimate(monthlyConsumptionKwh, roofAreaM2 float64) (Result, error) {
	if !validInput(monthlyConsumptionKwh) || !validInput(roofAreaM2) {
		return Result{}, ErrInvalidInput
	}

	systemSizeKw := round2(roofAreaM2 * WattsPerSquareMeter / 1000)
	estimatedCost := round2(systemSizeKw * CostPerKw)
	monthlySavings := round2(monthlyConsumptionKwh * PricePerKwh)

	r := Result{
		SystemSizeKw:            systemSizeKw,
		EstimatedCost:           estimatedCost,
		EstimatedMonthlySavings: monthlySavings,
		AnnualSavings:           round2(monthlySavings * 12),
		CO2ReductionKgPerMonth:  round2(monthlyConsumptionKwh * CO2KgPerKwh),
	}

	// Guard against a zero denominator. Unreachable with valid inputs
	// (savings >= R$0.01 whenever consumption >= 0.01 kWh) but the ratio
	// must never divide by zero.
	if ToCents(monthlySavings) == 0 {
		r.PaybackUndefined = true
		return r, nil
	}
	r.PaybackPeriodMonths = int(math.Round(estimatedCost / monthlySavings))
	return r, nil
}

// ToCents converts a value in reais to integer centavos, rounding to the
// nearest cent. Minor-unit integers are the persisted representation of all
// monetary fields to avoid floating-point drift.
func ToCents(reais float64) int64 {
	return int64(math.Round(reais * 100))
}

// FromCents converts integer centavos back to reais.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

func validInput(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
