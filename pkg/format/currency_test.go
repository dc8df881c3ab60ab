package format

import (
	"math"
	"testing"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"zero", 0, "$0.00"},
		{"small positive", 75, "$75.00"},
		{"thousands separator", 72000, "$72,000.00"},
		{"millions", 2000000, "$2,000,000.00"},
		{"negative", -1234.56, "-$1,234.56"},
		{"cents rounding", 99.999, "$100.00"},
		{"sub-cent negative rounds to zero", -0.004, "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	if got := NumericCurrency(-72000); got != "-72,000.00" {
		t.Errorf("NumericCurrency(-72000) = %q, expected %q", got, "-72,000.00")
	}
	if got := NumericCurrency(500); got != "500.00" {
		t.Errorf("NumericCurrency(500) = %q, expected %q", got, "500.00")
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		expected string
	}{
		{"fraction", 0.35, "35.0%"},
		{"multiple of principal", 2.5, "250.0%"},
		{"negative", -1, "-100.0%"},
		{"unbounded renders saturation symbol", math.Inf(1), "∞"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.rate); got != tt.expected {
				t.Errorf("Percent(%v) = %q, expected %q", tt.rate, got, tt.expected)
			}
		})
	}
}

func TestMonths(t *testing.T) {
	if got := Months(4.125); got != "4.1 months" {
		t.Errorf("Months(4.125) = %q, expected %q", got, "4.1 months")
	}
	if got := Months(math.Inf(1)); got != "∞" {
		t.Errorf("Months(+Inf) = %q, expected %q", got, "∞")
	}
	if got := Months(0); got != "0.0 months" {
		t.Errorf("Months(0) = %q, expected %q", got, "0.0 months")
	}
}
