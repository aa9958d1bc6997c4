// Package quote computes illustrative loan, credit card, and life insurance
// offers from an applicant's income profile.
//
// Every function in this package is pure: the same profile always produces
// the same offer, nothing is cached, and unknown classifications fall back to
// conservative defaults instead of failing.
package quote

// Offer is one of LoanOffer, CreditCardOffer, or InsuranceOffer.
type Offer interface {
	Kind() OfferType
	isOffer()
}

// LoanOffer is a personal loan quote.
type LoanOffer struct {
	Type           OfferType `json:"type"`
	Title          string    `json:"title"`
	MaxAmount      float64   `json:"maxAmount"`
	ApprovedAmount float64   `json:"approvedAmount"`
	APR            float64   `json:"apr"`
	MonthlyPayment float64   `json:"monthlyPayment"`
	Term           int       `json:"term"` // months
	Icon           string    `json:"icon"`
}

// CreditCardOffer is a credit card quote.
type CreditCardOffer struct {
	Type        OfferType `json:"type"`
	Title       string    `json:"title"`
	CreditLimit float64   `json:"creditLimit"`
	IntroAPR    float64   `json:"introApr"`
	RegularAPR  float64   `json:"regularApr"`
	IntroPeriod int       `json:"introPeriod"` // months
	CashBack    float64   `json:"cashBack"`    // percentage
	Icon        string    `json:"icon"`
}

// InsuranceOffer is a term life insurance quote.
type InsuranceOffer struct {
	Type           OfferType `json:"type"`
	Title          string    `json:"title"`
	CoverageAmount float64   `json:"coverageAmount"`
	MonthlyPremium float64   `json:"monthlyPremium"`
	TermYears      int       `json:"termYears"`
	Icon           string    `json:"icon"`
}

// AllOffers holds one offer of each kind for side-by-side comparison.
type AllOffers struct {
	Loan       LoanOffer       `json:"loan"`
	CreditCard CreditCardOffer `json:"creditCard"`
	Insurance  InsuranceOffer  `json:"insurance"`
}

func (LoanOffer) Kind() OfferType       { return OfferTypeLoan }
func (CreditCardOffer) Kind() OfferType { return OfferTypeCreditCard }
func (InsuranceOffer) Kind() OfferType  { return OfferTypeInsurance }

func (LoanOffer) isOffer()       {}
func (CreditCardOffer) isOffer() {}
func (InsuranceOffer) isOffer()  {}

const (
	loanTitle      = "Personal Loan"
	cardTitle      = "Premium Credit Card"
	insuranceTitle = "Life Insurance"

	loanIcon      = "💰"
	cardIcon      = "💳"
	insuranceIcon = "🛡️"
)
