package quote

import (
	"github.com/iwvelando/quote-engine/pkg/constants"
	"github.com/iwvelando/quote-engine/pkg/loans"
	"github.com/iwvelando/quote-engine/pkg/mathutil"
)

// CalculateLoanOffer prices a personal loan at 30% of income scaled by the
// employment multiplier, capped at the published maximum and rounded to the
// nearest thousand.
//
// The term tier is chosen before the minimum amount is applied, while the
// payment of a floored loan is recomputed on the minimum amount.
func CalculateLoanOffer(profile IncomeProfile) LoanOffer {
	income := profile.Income()
	multiplier := profile.Employment().Multiplier()

	maxAmount := mathutil.Min(income*constants.LoanIncomeRatio*multiplier, constants.LoanMaxAmount)
	approvedAmount := mathutil.RoundToNearest(maxAmount, constants.LoanRoundingIncrement)
	apr := profile.CreditScore().LoanAPR()
	term := loanTerm(approvedAmount)
	monthlyPayment := loans.CalculateMonthlyPayment(approvedAmount, apr, term)

	if approvedAmount <= constants.LoanMinAmount {
		approvedAmount = constants.LoanMinAmount
		monthlyPayment = loans.CalculateMonthlyPayment(constants.LoanMinAmount, apr, term)
	}

	return LoanOffer{
		Type:           OfferTypeLoan,
		Title:          loanTitle,
		MaxAmount:      constants.LoanMaxAmount,
		ApprovedAmount: approvedAmount,
		APR:            apr,
		MonthlyPayment: monthlyPayment,
		Term:           term,
		Icon:           loanIcon,
	}
}

func loanTerm(amount float64) int {
	switch {
	case amount <= constants.LoanShortTermCeiling:
		return constants.LoanShortTerm
	case amount <= constants.LoanMediumTermCeiling:
		return constants.LoanMediumTerm
	default:
		return constants.LoanLongTerm
	}
}
