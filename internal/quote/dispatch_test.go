package quote

import "testing"

func TestCalculateOfferDispatch(t *testing.T) {
	income := profile("75000", "employed", "good")

	tests := []struct {
		offerType string
		expected  Offer
	}{
		{"loan", CalculateLoanOffer(income)},
		{"credit-card", CalculateCreditCardOffer(income)},
		{"insurance", CalculateInsuranceOffer(income)},
		{"", CalculateLoanOffer(income)},
		{"mortgage", CalculateLoanOffer(income)},
		{"Credit-Card", CalculateLoanOffer(income)},
	}

	for _, tt := range tests {
		t.Run(tt.offerType, func(t *testing.T) {
			got := CalculateOffer(income, PreferenceProfile{OfferType: tt.offerType})
			if got != tt.expected {
				t.Errorf("CalculateOffer(%q) = %+v, expected %+v", tt.offerType, got, tt.expected)
			}
		})
	}
}

func TestCalculateOfferKind(t *testing.T) {
	income := profile("50000", "retired", "fair")
	kinds := map[string]OfferType{
		"loan":        OfferTypeLoan,
		"credit-card": OfferTypeCreditCard,
		"insurance":   OfferTypeInsurance,
		"":            OfferTypeLoan,
	}

	for offerType, kind := range kinds {
		if got := CalculateOffer(income, PreferenceProfile{OfferType: offerType}).Kind(); got != kind {
			t.Errorf("CalculateOffer(%q).Kind() = %q, expected %q", offerType, got, kind)
		}
	}
}

func TestCalculateAllOffers(t *testing.T) {
	income := profile("100000", "unemployed", "poor")
	all := CalculateAllOffers(income)

	if all.Loan != CalculateLoanOffer(income) {
		t.Errorf("loan offer mismatch: %+v", all.Loan)
	}
	if all.CreditCard != CalculateCreditCardOffer(income) {
		t.Errorf("credit card offer mismatch: %+v", all.CreditCard)
	}
	if all.Insurance != CalculateInsuranceOffer(income) {
		t.Errorf("insurance offer mismatch: %+v", all.Insurance)
	}

	offers := all.Offers()
	if len(offers) != 3 {
		t.Fatalf("expected 3 offers, got %d", len(offers))
	}
	expectedKinds := []OfferType{OfferTypeLoan, OfferTypeCreditCard, OfferTypeInsurance}
	for i, offer := range offers {
		if offer.Kind() != expectedKinds[i] {
			t.Errorf("offer %d kind = %q, expected %q", i, offer.Kind(), expectedKinds[i])
		}
	}
}
