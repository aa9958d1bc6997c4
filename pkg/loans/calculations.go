// Package loans provides common loan processing utilities.
package loans

import (
	"math"

	"github.com/iwvelando/quote-engine/pkg/constants"
	"github.com/iwvelando/quote-engine/pkg/mathutil"
)

// MonthlyRate converts an annual percentage rate into the periodic monthly
// rate, e.g. 12 -> 0.01.
func MonthlyRate(annualInterestRate float64) float64 {
	return annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// CalculateMonthlyPayment calculates the monthly payment for a loan using the
// standard amortization formula, rounded to cents. A zero rate divides the
// principal evenly across the term without rounding.
func CalculateMonthlyPayment(principal, annualInterestRate float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}

	periodicInterestRate := MonthlyRate(annualInterestRate)
	if periodicInterestRate == 0 {
		return principal / float64(termMonths)
	}

	power := math.Pow(1.00+periodicInterestRate, float64(termMonths))
	payment := principal * (periodicInterestRate * power) / (power - 1.00)
	return mathutil.Round(payment)
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualInterestRate float64) float64 {
	return remainingPrincipal * MonthlyRate(annualInterestRate)
}

// TotalInterest returns the interest paid over the life of a loan given its
// level monthly payment.
func TotalInterest(principal, monthlyPayment float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}
	return mathutil.Round(monthlyPayment*float64(termMonths) - principal)
}
