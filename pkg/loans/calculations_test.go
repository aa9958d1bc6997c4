package loans

import (
	"math"
	"testing"

	"github.com/iwvelando/quote-engine/pkg/mathutil"
)

func TestCalculateMonthlyPayment(t *testing.T) {
	tests := []struct {
		name               string
		principal          float64
		annualInterestRate float64
		termMonths         int
		expected           float64
	}{
		{
			name:               "Floor loan at default rate",
			principal:          5000,
			annualInterestRate: 12.9,
			termMonths:         36,
			expected:           168.23,
		},
		{
			name:               "Floor loan at good rate",
			principal:          5000,
			annualInterestRate: 8.9,
			termMonths:         36,
			expected:           158.77,
		},
		{
			name:               "Medium loan",
			principal:          23000,
			annualInterestRate: 8.9,
			termMonths:         48,
			expected:           571.26,
		},
		{
			name:               "Maximum loan",
			principal:          50000,
			annualInterestRate: 5.9,
			termMonths:         60,
			expected:           964.32,
		},
		{
			name:               "Zero interest divides evenly",
			principal:          12000,
			annualInterestRate: 0.0,
			termMonths:         60,
			expected:           200,
		},
		{
			name:               "Zero principal",
			principal:          0,
			annualInterestRate: 12.9,
			termMonths:         36,
			expected:           0,
		},
		{
			name:               "Non-positive term",
			principal:          5000,
			annualInterestRate: 12.9,
			termMonths:         0,
			expected:           0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateMonthlyPayment(tt.principal, tt.annualInterestRate, tt.termMonths)
			if !mathutil.WithinTolerance(result, tt.expected, 0.001) {
				t.Errorf("CalculateMonthlyPayment() = %.4f, expected %.2f", result, tt.expected)
			}
		})
	}
}

func TestCalculateMonthlyPaymentZeroRateIsNotRounded(t *testing.T) {
	result := CalculateMonthlyPayment(10000, 0, 3)
	if math.Abs(result-10000.0/3.0) > 1e-9 {
		t.Errorf("expected unrounded %.6f, got %.6f", 10000.0/3.0, result)
	}
}

func TestCalculateInterestPayment(t *testing.T) {
	tests := []struct {
		name               string
		remainingPrincipal float64
		annualInterestRate float64
		expected           float64
	}{
		{"Standard interest", 200000, 6.0, 1000.0},
		{"Car loan interest", 15000, 4.5, 56.25},
		{"Zero interest", 10000, 0.0, 0.0},
		{"High interest", 5000, 24.0, 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateInterestPayment(tt.remainingPrincipal, tt.annualInterestRate)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("CalculateInterestPayment() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}

func TestTotalInterest(t *testing.T) {
	if got := TotalInterest(5000, 168.23, 36); !mathutil.WithinTolerance(got, 1056.28, 0.001) {
		t.Errorf("TotalInterest() = %.2f, expected 1056.28", got)
	}
	if got := TotalInterest(12000, 200, 60); got != 0 {
		t.Errorf("TotalInterest() on zero-rate loan = %.2f, expected 0", got)
	}
	if got := TotalInterest(5000, 100, 0); got != 0 {
		t.Errorf("TotalInterest() with zero term = %.2f, expected 0", got)
	}
}
