package lead

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/quote-engine/internal/quote"
	"github.com/iwvelando/quote-engine/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func validApplication() Application {
	return Application{
		Personal: PersonalInfo{
			FirstName:   "Ana",
			LastName:    "O'Neil",
			DateOfBirth: "1990-04-12",
		},
		Income: quote.IncomeProfile{
			EmploymentStatus: "employed",
			AnnualIncome:     "$75,000",
			CreditScoreRange: "good",
		},
		Preferences: quote.PreferenceProfile{
			OfferType:         "loan",
			ContactPreference: "email",
			TermsAccepted:     true,
		},
	}
}

func TestApplicationValidate(t *testing.T) {
	t.Run("valid application", func(t *testing.T) {
		assert.NoError(t, validApplication().Validate(testNow))
	})

	t.Run("errors are prefixed by step", func(t *testing.T) {
		app := validApplication()
		app.Personal.FirstName = "A"
		app.Income.AnnualIncome = ""
		app.Preferences.TermsAccepted = false

		err := app.Validate(testNow)
		require.Error(t, err)

		var errs validation.Errors
		require.True(t, errors.As(err, &errs))
		assert.Len(t, errs, 3)
		assert.NotEmpty(t, errs.Message("personal.firstName"))
		assert.NotEmpty(t, errs.Message("income.annualIncome"))
		assert.NotEmpty(t, errs.Message("preferences.termsAccepted"))
	})

	t.Run("underage applicant", func(t *testing.T) {
		app := validApplication()
		app.Personal.DateOfBirth = "2010-01-01"

		var errs validation.Errors
		require.True(t, errors.As(app.Validate(testNow), &errs))
		assert.NotEmpty(t, errs.Message("personal.dateOfBirth"))
	})
}

func TestNew(t *testing.T) {
	local := time.FixedZone("UTC-5", -5*60*60)
	l := New(validApplication(), testNow.In(local))

	_, err := uuid.Parse(l.ID)
	assert.NoError(t, err)
	assert.True(t, l.CreatedAt.Equal(testNow))
	assert.Equal(t, time.UTC, l.CreatedAt.Location())
	assert.Equal(t, validApplication(), l.Application)

	other := New(validApplication(), testNow)
	assert.NotEqual(t, l.ID, other.ID)
}

func TestLeadOffer(t *testing.T) {
	l := New(validApplication(), testNow)

	loan, ok := l.Offer().(quote.LoanOffer)
	require.True(t, ok, "expected a loan offer, got %T", l.Offer())
	assert.Equal(t, 23000.0, loan.ApprovedAmount)
	assert.Equal(t, 48, loan.Term)

	l.Application.Preferences.OfferType = "insurance"
	ins, ok := l.Offer().(quote.InsuranceOffer)
	require.True(t, ok, "expected an insurance offer, got %T", l.Offer())
	assert.Equal(t, 750000.0, ins.CoverageAmount)
}
