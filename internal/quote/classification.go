package quote

// EmploymentStatus buckets an applicant's employment for affordability
// lookups. The zero value is EmploymentUnknown.
type EmploymentStatus int

const (
	EmploymentUnknown EmploymentStatus = iota
	EmploymentEmployed
	EmploymentSelfEmployed
	EmploymentUnemployed
	EmploymentRetired
)

// ParseEmploymentStatus maps the wizard value to an EmploymentStatus. Values
// outside the known set, including "", yield EmploymentUnknown.
func ParseEmploymentStatus(s string) EmploymentStatus {
	switch s {
	case "employed":
		return EmploymentEmployed
	case "self-employed":
		return EmploymentSelfEmployed
	case "unemployed":
		return EmploymentUnemployed
	case "retired":
		return EmploymentRetired
	default:
		return EmploymentUnknown
	}
}

func (e EmploymentStatus) String() string {
	switch e {
	case EmploymentEmployed:
		return "employed"
	case EmploymentSelfEmployed:
		return "self-employed"
	case EmploymentUnemployed:
		return "unemployed"
	case EmploymentRetired:
		return "retired"
	default:
		return ""
	}
}

// Multiplier is the affordability factor applied to every income-derived
// amount.
func (e EmploymentStatus) Multiplier() float64 {
	switch e {
	case EmploymentEmployed:
		return 1.0
	case EmploymentSelfEmployed:
		return 0.85
	case EmploymentRetired:
		return 0.7
	case EmploymentUnemployed:
		return 0.3
	default:
		return 0.5
	}
}

// CreditScoreRange buckets an applicant's self-reported credit score. The zero
// value is CreditUnknown, which prices like CreditFair for APRs.
type CreditScoreRange int

const (
	CreditUnknown CreditScoreRange = iota
	CreditExcellent
	CreditGood
	CreditFair
	CreditPoor
)

// ParseCreditScoreRange maps the wizard value to a CreditScoreRange. Values
// outside the known set, including "", yield CreditUnknown.
func ParseCreditScoreRange(s string) CreditScoreRange {
	switch s {
	case "excellent":
		return CreditExcellent
	case "good":
		return CreditGood
	case "fair":
		return CreditFair
	case "poor":
		return CreditPoor
	default:
		return CreditUnknown
	}
}

func (c CreditScoreRange) String() string {
	switch c {
	case CreditExcellent:
		return "excellent"
	case CreditGood:
		return "good"
	case CreditFair:
		return "fair"
	case CreditPoor:
		return "poor"
	default:
		return ""
	}
}

// LoanAPR is the personal loan annual percentage rate for the range.
func (c CreditScoreRange) LoanAPR() float64 {
	switch c {
	case CreditExcellent:
		return 5.9
	case CreditGood:
		return 8.9
	case CreditPoor:
		return 18.9
	default:
		return 12.9
	}
}

// CardAPR is the regular credit card annual percentage rate for the range.
func (c CreditScoreRange) CardAPR() float64 {
	switch c {
	case CreditExcellent:
		return 14.9
	case CreditGood:
		return 17.9
	case CreditPoor:
		return 24.9
	default:
		return 21.9
	}
}

// InsuranceBaseRate is the monthly premium per $100,000 of coverage.
func (c CreditScoreRange) InsuranceBaseRate() float64 {
	switch c {
	case CreditExcellent:
		return 19
	case CreditGood:
		return 29
	case CreditFair:
		return 45
	case CreditPoor:
		return 65
	default:
		return 39
	}
}

// OfferType discriminates the offer variants.
type OfferType string

const (
	OfferTypeLoan       OfferType = "loan"
	OfferTypeCreditCard OfferType = "credit-card"
	OfferTypeInsurance  OfferType = "insurance"
)
