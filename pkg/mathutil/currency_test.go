package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
		{"Nearly two cents", 0.019, 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRoundToNearest(t *testing.T) {
	tests := []struct {
		name      string
		input     float64
		increment float64
		expected  float64
	}{
		{"Half rounds up", 22500, 1000, 23000},
		{"Below half rounds down", 22499, 1000, 22000},
		{"Exact multiple", 9000, 1000, 9000},
		{"Five hundred grid", 11250, 500, 11500},
		{"Fifty thousand grid", 340000, 50000, 350000},
		{"Zero", 0, 1000, 0},
		{"Small value rounds to zero", 499, 1000, 0},
		{"Non-positive increment passes through", 1234.5, 0, 1234.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundToNearest(tt.input, tt.increment)
			if result != tt.expected {
				t.Errorf("RoundToNearest(%v, %v) = %v, expected %v", tt.input, tt.increment, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Exactly zero", 0.0, true},
		{"Very small negative", -0.001, true},
		{"Exactly tolerance", 0.01, true},
		{"Just above tolerance", 0.02, false},
		{"Large positive", 100.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsZero(tt.input); result != tt.expected {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(3, 7); got != 3 {
		t.Errorf("Min(3, 7) = %v, expected 3", got)
	}
	if got := Min(-1, -2); got != -2 {
		t.Errorf("Min(-1, -2) = %v, expected -2", got)
	}
	if got := Max(3, 7); got != 7 {
		t.Errorf("Max(3, 7) = %v, expected 7", got)
	}
	if got := Max(5000, 5000); got != 5000 {
		t.Errorf("Max(5000, 5000) = %v, expected 5000", got)
	}
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		value, pct, expected float64
	}{
		{100000, 30, 30000},
		{100000, 15, 15000},
		{0, 50, 0},
		{250, 0, 0},
	}

	for _, tt := range tests {
		result := ApplyPercentage(tt.value, tt.pct)
		if !WithinTolerance(result, tt.expected, 0.0001) {
			t.Errorf("ApplyPercentage(%v, %v) = %v, expected %v", tt.value, tt.pct, result, tt.expected)
		}
	}
}
