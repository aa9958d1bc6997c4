package testutil

import (
	"testing"

	"github.com/iwvelando/quote-engine/internal/quote"
)

func TestFindOffer(t *testing.T) {
	offers := quote.CalculateAllOffers(StandardIncome()).Offers()

	tests := []struct {
		kind  quote.OfferType
		found bool
	}{
		{quote.OfferTypeLoan, true},
		{quote.OfferTypeCreditCard, true},
		{quote.OfferTypeInsurance, true},
		{quote.OfferType("mortgage"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			offer := FindOffer(offers, tt.kind)
			if !tt.found {
				if offer != nil {
					t.Errorf("FindOffer(%q) = %v, expected nil", tt.kind, offer)
				}
				return
			}
			if offer == nil {
				t.Fatalf("FindOffer(%q) returned nil", tt.kind)
			}
			if offer.Kind() != tt.kind {
				t.Errorf("FindOffer(%q) returned %q", tt.kind, offer.Kind())
			}
		})
	}

	if FindOffer(nil, quote.OfferTypeLoan) != nil {
		t.Error("expected nil for empty offers")
	}
	if FindOffer([]quote.Offer{nil}, quote.OfferTypeLoan) != nil {
		t.Error("expected nil offers to be skipped")
	}
}

func TestStandardIncome(t *testing.T) {
	loan := quote.CalculateLoanOffer(StandardIncome())
	if loan.ApprovedAmount != 23000 || loan.Term != 48 {
		t.Errorf("unexpected reference loan %+v", loan)
	}
}
