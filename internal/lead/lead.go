// Package lead captures completed onboarding applications. Only the
// applicant's answers are stored; offers are recomputed from them on demand.
package lead

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/quote-engine/internal/quote"
	"github.com/iwvelando/quote-engine/pkg/validation"
)

// ErrNotFound is returned when no lead exists for an ID.
var ErrNotFound = errors.New("lead not found")

// PersonalInfo is the personal details step of the wizard.
type PersonalInfo struct {
	FirstName   string `json:"firstName" yaml:"firstName"`
	LastName    string `json:"lastName" yaml:"lastName"`
	DateOfBirth string `json:"dateOfBirth" yaml:"dateOfBirth"` // YYYY-MM-DD
}

// Application is a completed three-step wizard.
type Application struct {
	Personal    PersonalInfo            `json:"personal" yaml:"personal"`
	Income      quote.IncomeProfile     `json:"income" yaml:"income"`
	Preferences quote.PreferenceProfile `json:"preferences" yaml:"preferences"`
}

// Validate applies the wizard rules to every step. The returned error, when
// non-nil, is a validation.Errors with fields prefixed by step.
func (a Application) Validate(now time.Time) error {
	var errs validation.Errors
	errs.Merge("personal", validation.ValidatePersonalInfo(
		a.Personal.FirstName, a.Personal.LastName, a.Personal.DateOfBirth, now))
	errs.Merge("income", validation.ValidateIncomeDetails(
		a.Income.EmploymentStatus, a.Income.AnnualIncome, a.Income.CreditScoreRange))
	errs.Merge("preferences", validation.ValidatePreferences(
		a.Preferences.OfferType, a.Preferences.ContactPreference, a.Preferences.TermsAccepted))
	return errs.Err()
}

// Lead is a stored application.
type Lead struct {
	ID          string      `json:"id"`
	CreatedAt   time.Time   `json:"createdAt"`
	Application Application `json:"application"`
}

// New assigns an ID and creation time to an application.
func New(app Application, now time.Time) Lead {
	return Lead{
		ID:          uuid.NewString(),
		CreatedAt:   now.UTC(),
		Application: app,
	}
}

// Offer prices the offer the applicant selected.
func (l Lead) Offer() quote.Offer {
	return quote.CalculateOffer(l.Application.Income, l.Application.Preferences)
}

// Store persists leads.
type Store interface {
	Save(ctx context.Context, l Lead) error
	Get(ctx context.Context, id string) (Lead, error)
	// List returns up to limit leads, newest first.
	List(ctx context.Context, limit int) ([]Lead, error)
	Delete(ctx context.Context, id string) error
	Close() error
}
