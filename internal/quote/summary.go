package quote

import (
	"fmt"

	"github.com/iwvelando/quote-engine/pkg/format"
)

// Summary is the display projection of an offer.
type Summary struct {
	Title   string `json:"title"`
	Amount  string `json:"amount"`
	Rate    string `json:"rate"`
	Icon    string `json:"icon"`
	Details string `json:"details"`
}

// GetOfferSummary renders the headline strings for an offer. A nil offer
// yields an empty Summary.
func GetOfferSummary(offer Offer) Summary {
	switch o := offer.(type) {
	case *LoanOffer:
		if o == nil {
			return Summary{}
		}
		return GetOfferSummary(*o)
	case *CreditCardOffer:
		if o == nil {
			return Summary{}
		}
		return GetOfferSummary(*o)
	case *InsuranceOffer:
		if o == nil {
			return Summary{}
		}
		return GetOfferSummary(*o)
	case LoanOffer:
		return Summary{
			Title:   o.Title,
			Amount:  format.Currency(o.ApprovedAmount),
			Rate:    format.Percent(o.APR) + " APR",
			Icon:    o.Icon,
			Details: fmt.Sprintf("%d months • %s/mo", o.Term, format.CurrencyDecimal(o.MonthlyPayment)),
		}
	case CreditCardOffer:
		s := Summary{
			Title:   o.Title,
			Amount:  format.Currency(o.CreditLimit) + " Limit",
			Rate:    format.Percent(o.RegularAPR) + " APR",
			Icon:    o.Icon,
			Details: format.Percent(o.CashBack) + " cash back",
		}
		if o.IntroPeriod > 0 {
			s.Rate = format.Percent(o.IntroAPR) + " Intro APR"
			s.Details = fmt.Sprintf("%d months intro • %s cash back", o.IntroPeriod, format.Percent(o.CashBack))
		}
		return s
	case InsuranceOffer:
		return Summary{
			Title:   o.Title,
			Amount:  format.Currency(o.CoverageAmount) + " Coverage",
			Rate:    format.CurrencyDecimal(o.MonthlyPremium) + "/month",
			Icon:    o.Icon,
			Details: fmt.Sprintf("%d year term", o.TermYears),
		}
	default:
		return Summary{}
	}
}

// ComparisonOption is one card of the side-by-side offer comparison.
type ComparisonOption struct {
	ID        OfferType `json:"id"`
	Title     string    `json:"title"`
	Icon      string    `json:"icon"`
	Tagline   string    `json:"tagline"`
	Features  []string  `json:"features"`
	Rate      string    `json:"rate"`
	Amount    string    `json:"amount"`
	Term      string    `json:"term"`
	Highlight string    `json:"highlight"`
}

// CompareOffers projects a full offer set into comparison options ordered
// loan, credit card, insurance.
func CompareOffers(all AllOffers) []ComparisonOption {
	loan, card, insurance := all.Loan, all.CreditCard, all.Insurance

	cardFeature := format.Percent(card.RegularAPR) + " APR"
	cardRate := format.Percent(card.RegularAPR) + " APR"
	if card.IntroPeriod > 0 {
		cardFeature = fmt.Sprintf("0%% intro APR for %d months", card.IntroPeriod)
		cardRate = fmt.Sprintf("0%% intro, then %s", format.Percent(card.RegularAPR))
	}

	return []ComparisonOption{
		{
			ID:      OfferTypeLoan,
			Title:   "Personal Loan",
			Icon:    loan.Icon,
			Tagline: "Flexible funds for any purpose",
			Features: []string{
				format.CurrencyDecimal(loan.MonthlyPayment) + "/month payment",
				"No collateral required",
				"Quick approval process",
				"Use for any purpose",
			},
			Rate:      format.Percent(loan.APR) + " APR",
			Amount:    format.Currency(loan.ApprovedAmount),
			Term:      fmt.Sprintf("%d months", loan.Term),
			Highlight: "Best for large purchases",
		},
		{
			ID:      OfferTypeCreditCard,
			Title:   "Credit Card",
			Icon:    card.Icon,
			Tagline: "Rewards on every purchase",
			Features: []string{
				cardFeature,
				format.Percent(card.CashBack) + " cash back on purchases",
				"No annual fee",
				"Build credit history",
			},
			Rate:      cardRate,
			Amount:    format.Currency(card.CreditLimit) + " limit",
			Term:      "Revolving credit",
			Highlight: "Best for everyday spending",
		},
		{
			ID:      OfferTypeInsurance,
			Title:   "Life Insurance",
			Icon:    insurance.Icon,
			Tagline: "Protect what matters most",
			Features: []string{
				format.CurrencyDecimal(insurance.MonthlyPremium) + "/month premium",
				"Guaranteed acceptance",
				"Lock in low rates",
				"Tax-free death benefit",
			},
			Rate:      format.CurrencyDecimal(insurance.MonthlyPremium) + "/month",
			Amount:    format.Currency(insurance.CoverageAmount) + " coverage",
			Term:      fmt.Sprintf("%d year term", insurance.TermYears),
			Highlight: "Best for family protection",
		},
	}
}
