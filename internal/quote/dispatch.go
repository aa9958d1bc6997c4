package quote

// CalculateOffer prices the offer kind selected in the preferences. An empty
// or unrecognized selection is quoted as a loan.
func CalculateOffer(income IncomeProfile, preferences PreferenceProfile) Offer {
	switch OfferType(preferences.OfferType) {
	case OfferTypeLoan:
		return CalculateLoanOffer(income)
	case OfferTypeCreditCard:
		return CalculateCreditCardOffer(income)
	case OfferTypeInsurance:
		return CalculateInsuranceOffer(income)
	default:
		return CalculateLoanOffer(income)
	}
}

// CalculateAllOffers prices every offer kind independently.
func CalculateAllOffers(income IncomeProfile) AllOffers {
	return AllOffers{
		Loan:       CalculateLoanOffer(income),
		CreditCard: CalculateCreditCardOffer(income),
		Insurance:  CalculateInsuranceOffer(income),
	}
}

// Offers returns the comparison set in display order.
func (a AllOffers) Offers() []Offer {
	return []Offer{a.Loan, a.CreditCard, a.Insurance}
}
