// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/quote-engine/internal/quote"
)

// FindOffer finds the first offer of the given kind in offers.
// Returns nil if none matches.
func FindOffer(offers []quote.Offer, kind quote.OfferType) quote.Offer {
	for _, offer := range offers {
		if offer != nil && offer.Kind() == kind {
			return offer
		}
	}
	return nil
}

// StandardIncome is the reference applicant used across package tests:
// employed, $75,000 a year, good credit.
func StandardIncome() quote.IncomeProfile {
	return quote.IncomeProfile{
		EmploymentStatus: "employed",
		AnnualIncome:     "75000",
		CreditScoreRange: "good",
	}
}
