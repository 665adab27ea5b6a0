package estimator

import (
	"errors"
	"math"
	"testing"
)

func TestEstimate_ReferenceVectors(t *testing.T) {
	cases := []struct {
		name        string
		consumption float64
		area        float64
		want        Result
	}{
		{
			name:        "300kWh_50m2",
			consumption: 300,
			area:        50,
			want: Result{
				SystemSizeKw:            7.5,
				EstimatedCost:           37500.00,
				EstimatedMonthlySavings: 210.00,
				PaybackPeriodMonths:     179,
				AnnualSavings:           2520.00,
				CO2ReductionKgPerMonth:  150.00,
			},
		},
		{
			name:        "1000kWh_200m2",
			consumption: 1000,
			area:        200,
			want: Result{
				SystemSizeKw:            30.0,
				EstimatedCost:           150000.00,
				EstimatedMonthlySavings: 700.00,
				PaybackPeriodMonths:     214,
				AnnualSavings:           8400.00,
				CO2ReductionKgPerMonth:  500.00,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Estimate(tc.consumption, tc.area)
			if err != nil {
				t.Fatalf("Estimate: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Estimate(%v, %v) = %+v, want %+v", tc.consumption, tc.area, got, tc.want)
			}
		})
	}
}

func TestEstimate_SystemSizeProportionalToArea(t *testing.T) {
	for _, area := range []float64{1, 10, 33, 50, 120.5, 999} {
		got, err := Estimate(300, area)
		if err != nil {
			t.Fatalf("area=%v: %v", area, err)
		}
		want := math.Round(area*0.15*100) / 100
		if got.SystemSizeKw != want {
			t.Errorf("area=%v: SystemSizeKw = %v, want %v", area, got.SystemSizeKw, want)
		}
	}
}

func TestEstimate_SavingsProportionalToConsumption(t *testing.T) {
	for _, c := range []float64{1, 100, 250, 333, 1000} {
		got, err := Estimate(c, 50)
		if err != nil {
			t.Fatalf("consumption=%v: %v", c, err)
		}
		want := math.Round(c*0.70*100) / 100
		if got.EstimatedMonthlySavings != want {
			t.Errorf("consumption=%v: savings = %v, want %v", c, got.EstimatedMonthlySavings, want)
		}
	}
}

func TestEstimate_InvalidInputs(t *testing.T) {
	bad := []struct {
		name              string
		consumption, area float64
	}{
		{"zero_consumption", 0, 50},
		{"zero_area", 300, 0},
		{"negative_consumption", -1, 50},
		{"negative_area", 300, -10},
		{"nan", math.NaN(), 50},
		{"inf", 300, math.Inf(1)},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Estimate(tc.consumption, tc.area); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestEstimate_PaybackGuard(t *testing.T) {
	// 0.004 kWh/month yields savings of R$0.0028, which rounds to zero cents.
	got, err := Estimate(0.004, 50)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if !got.PaybackUndefined {
		t.Fatal("expected PaybackUndefined when savings round to zero cents")
	}
	if got.PaybackPeriodMonths != 0 {
		t.Fatalf("PaybackPeriodMonths = %d, want 0", got.PaybackPeriodMonths)
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	a, err := Estimate(427, 63)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Estimate(427, 63)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("identical inputs produced different outputs: %+v vs %+v", a, b)
	}
}

func TestCentsRoundTrip(t *testing.T) {
	cases := []struct {
		reais float64
		cents int64
	}{
		{37500.00, 3750000},
		{210.00, 21000},
		{0.005, 1}, // rounds half up
		{0.004, 0},
		{699.995, 70000},
	}
	for _, tc := range cases {
		if got := ToCents(tc.reais); got != tc.cents {
			t.Errorf("ToCents(%v) = %d, want %d", tc.reais, got, tc.cents)
		}
	}
	if got := FromCents(21000); got != 210.00 {
		t.Errorf("FromCents(21000) = %v, want 210.00", got)
	}
}
