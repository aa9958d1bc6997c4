package quote

import (
	"github.com/iwvelando/quote-engine/pkg/constants"
	"github.com/iwvelando/quote-engine/pkg/mathutil"
)

// CalculateCreditCardOffer prices a credit card with a limit of 15% of income
// scaled by the employment multiplier, capped and rounded to the nearest $500.
func CalculateCreditCardOffer(profile IncomeProfile) CreditCardOffer {
	income := profile.Income()
	multiplier := profile.Employment().Multiplier()
	score := profile.CreditScore()

	calculatedLimit := mathutil.Min(income*constants.CardIncomeRatio*multiplier, constants.CardMaxLimit)
	creditLimit := mathutil.RoundToNearest(calculatedLimit, constants.CardRoundingIncrement)
	regularAPR := score.CardAPR()

	offer := CreditCardOffer{
		Type:        OfferTypeCreditCard,
		Title:       cardTitle,
		CreditLimit: mathutil.Max(creditLimit, constants.CardMinLimit),
		RegularAPR:  regularAPR,
		Icon:        cardIcon,
	}

	switch score {
	case CreditExcellent:
		offer.IntroAPR, offer.IntroPeriod, offer.CashBack = 0, 21, 2
	case CreditGood:
		offer.IntroAPR, offer.IntroPeriod, offer.CashBack = 0, 15, 1.5
	case CreditFair:
		offer.IntroAPR, offer.IntroPeriod, offer.CashBack = 0, 12, 1
	default:
		// No promotional period below fair credit.
		offer.IntroAPR, offer.IntroPeriod, offer.CashBack = regularAPR, 0, 0.5
	}

	return offer
}
