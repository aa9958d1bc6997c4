package quote

import (
	"github.com/iwvelando/quote-engine/pkg/constants"
	"github.com/iwvelando/quote-engine/pkg/mathutil"
)

// CalculateInsuranceOffer prices term life coverage at ten times income scaled
// by the employment multiplier, capped and rounded to the nearest $50,000.
//
// Coverage at or below the minimum is quoted at the minimum with the base rate
// as its premium and a fixed 20 year term.
func CalculateInsuranceOffer(profile IncomeProfile) InsuranceOffer {
	income := profile.Income()
	multiplier := profile.Employment().Multiplier()

	calculatedCoverage := mathutil.Min(income*constants.InsuranceIncomeMultiple*multiplier, constants.InsuranceMaxCoverage)
	coverageAmount := mathutil.RoundToNearest(calculatedCoverage, constants.InsuranceRoundingIncrement)
	baseRate := profile.CreditScore().InsuranceBaseRate()
	monthlyPremium := mathutil.Round(baseRate * (coverageAmount / constants.InsuranceRateUnit))

	offer := InsuranceOffer{
		Type:           OfferTypeInsurance,
		Title:          insuranceTitle,
		CoverageAmount: coverageAmount,
		MonthlyPremium: mathutil.Max(monthlyPremium, constants.InsuranceMinPremium),
		TermYears:      insuranceTerm(coverageAmount),
		Icon:           insuranceIcon,
	}

	if coverageAmount <= constants.InsuranceMinCoverage {
		offer.CoverageAmount = constants.InsuranceMinCoverage
		offer.MonthlyPremium = baseRate
		offer.TermYears = constants.InsuranceFloorTermYears
	}

	return offer
}

func insuranceTerm(coverage float64) int {
	switch {
	case coverage <= constants.InsuranceShortTermCeiling:
		return constants.InsuranceShortTermYears
	case coverage <= constants.InsuranceMediumTermCeiling:
		return constants.InsuranceMediumTermYears
	default:
		return constants.InsuranceLongTermYears
	}
}
