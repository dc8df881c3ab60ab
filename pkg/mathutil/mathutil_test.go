package mathutil

import (
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"already two decimals", 1234.56, 1234.56},
		{"rounds up", 0.005, 0.01},
		{"rounds down", 0.004, 0.0},
		{"negative value", -1.005, -1.0},
		{"zero", 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.input); got != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNonNegative(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"positive passes through", 42.5, 42.5},
		{"zero passes through", 0.0, 0.0},
		{"negative floors to zero", -17.3, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NonNegative(tt.input); got != tt.expected {
				t.Errorf("NonNegative(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAtLeast(t *testing.T) {
	tests := []struct {
		name     string
		minimum  float64
		input    float64
		expected float64
	}{
		{"above minimum passes through", 1, 3, 3},
		{"below minimum floors", 1, 0, 1},
		{"negative floors", 1, -2, 1},
		{"equal to minimum", 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AtLeast(tt.minimum, tt.input); got != tt.expected {
				t.Errorf("AtLeast(%v, %v) = %v, expected %v", tt.minimum, tt.input, got, tt.expected)
			}
		})
	}
}

func TestPercentConversions(t *testing.T) {
	if got := FromPercent(35); got != 0.35 {
		t.Errorf("FromPercent(35) = %v, expected 0.35", got)
	}
	if got := ToPercent(0.35); !WithinTolerance(got, 35, 1e-9) {
		t.Errorf("ToPercent(0.35) = %v, expected 35", got)
	}
	if got := FromPercent(0); got != 0 {
		t.Errorf("FromPercent(0) = %v, expected 0", got)
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0.005) {
		t.Error("IsZero(0.005) should be true within currency tolerance")
	}
	if IsZero(0.02) {
		t.Error("IsZero(0.02) should be false")
	}
}
