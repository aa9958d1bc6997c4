package quote

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// IncomeProfile is the income step of the onboarding wizard. Values arrive as
// the form layer captured them and are classified on use.
type IncomeProfile struct {
	EmploymentStatus string `json:"employmentStatus" yaml:"employmentStatus"`
	AnnualIncome     string `json:"annualIncome" yaml:"annualIncome"`
	CreditScoreRange string `json:"creditScoreRange" yaml:"creditScoreRange"`
}

// PreferenceProfile is the preferences step of the onboarding wizard. Only
// OfferType influences pricing.
type PreferenceProfile struct {
	OfferType         string `json:"offerType" yaml:"offerType"`
	ContactPreference string `json:"contactPreference" yaml:"contactPreference"`
	TermsAccepted     bool   `json:"termsAccepted" yaml:"termsAccepted"`
}

// Employment returns the classified employment status.
func (p IncomeProfile) Employment() EmploymentStatus {
	return ParseEmploymentStatus(p.EmploymentStatus)
}

// CreditScore returns the classified credit score range.
func (p IncomeProfile) CreditScore() CreditScoreRange {
	return ParseCreditScoreRange(p.CreditScoreRange)
}

// Income returns the parsed annual income.
func (p IncomeProfile) Income() float64 {
	return ParseIncome(p.AnnualIncome)
}

var leadingNumber = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)`)

// ParseIncome converts a free-form income string such as "$75,000" into a
// number. Every character other than digits and '.' is dropped and the
// longest leading decimal number is used; anything unparsable is 0.
func ParseIncome(income string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, income)

	match := leadingNumber.FindString(cleaned)
	if match == "" {
		return 0
	}

	// Overflowing digit runs parse to +Inf and are capped by the calculators.
	value, err := strconv.ParseFloat(match, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return value
}
