package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Zero", 0, "$0"},
		{"Below a thousand", 999, "$999"},
		{"Thousands separator", 22500, "$22,500"},
		{"Floor loan amount", 5000, "$5,000"},
		{"Million", 1000000, "$1,000,000"},
		{"Rounds half up", 1234.5, "$1,235"},
		{"Rounds down", 1234.49, "$1,234"},
		{"Negative", -2500, "-$2,500"},
		{"Negative rounding to zero has no sign", -0.2, "$0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestCurrencyDecimal(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Zero", 0, "$0.00"},
		{"Whole dollars", 195, "$195.00"},
		{"Cents", 571.26, "$571.26"},
		{"Thousands separator", 1035.49, "$1,035.49"},
		{"Single cent digit", 39.5, "$39.50"},
		{"Rounds decimal representation half up", 1.005, "$1.01"},
		{"Large", 1234567.891, "$1,234,567.89"},
		{"Negative", -1234.56, "-$1,234.56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrencyDecimal(tt.amount); got != tt.expected {
				t.Errorf("CurrencyDecimal(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := map[float64]string{
		0:        "0.00",
		1234.5:   "1,234.50",
		-1234.56: "-1,234.56",
		100000:   "100,000.00",
	}

	for amount, expected := range tests {
		if got := NumericCurrency(amount); got != expected {
			t.Errorf("NumericCurrency(%v) = %q, expected %q", amount, got, expected)
		}
	}
}

func TestNumberAndPercent(t *testing.T) {
	tests := []struct {
		value   float64
		number  string
		percent string
	}{
		{8.9, "8.9", "8.9%"},
		{0, "0", "0%"},
		{2, "2", "2%"},
		{1.5, "1.5", "1.5%"},
		{0.5, "0.5", "0.5%"},
		{24.9, "24.9", "24.9%"},
	}

	for _, tt := range tests {
		if got := Number(tt.value); got != tt.number {
			t.Errorf("Number(%v) = %q, expected %q", tt.value, got, tt.number)
		}
		if got := Percent(tt.value); got != tt.percent {
			t.Errorf("Percent(%v) = %q, expected %q", tt.value, got, tt.percent)
		}
	}
}
