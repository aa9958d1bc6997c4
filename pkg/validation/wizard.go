package validation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/iwvelando/quote-engine/pkg/datetime"
)

var (
	namePattern   = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)
	numericPrefix = regexp.MustCompile(`^\s*[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

	employmentStatuses = []string{"employed", "self-employed", "unemployed", "retired"}
	creditScoreRanges  = []string{"excellent", "good", "fair", "poor"}
	offerTypes         = []string{"loan", "credit-card", "insurance"}
	contactPreferences = []string{"email", "phone", "both"}
)

// MinimumAge is the youngest calendar-year age accepted for an applicant.
const MinimumAge = 18

// ValidatePersonalInfo checks the personal details step. now anchors the
// age and future-date checks.
func ValidatePersonalInfo(firstName, lastName, dateOfBirth string, now time.Time) Errors {
	var errs Errors
	validateName(&errs, "firstName", "First name", firstName)
	validateName(&errs, "lastName", "Last name", lastName)

	if dateOfBirth == "" {
		errs.Add("dateOfBirth", "Date of birth is required")
		return errs
	}
	dob, err := datetime.ParseDate(dateOfBirth)
	if err != nil {
		errs.Add("dateOfBirth", "Please enter a valid date of birth")
		return errs
	}
	if datetime.YearsBetween(dob, now) < MinimumAge {
		errs.Add("dateOfBirth", "You must be at least 18 years old")
	}
	if datetime.DateAfterDate(dob, now) {
		errs.Add("dateOfBirth", "Date of birth cannot be in the future")
	}
	return errs
}

func validateName(errs *Errors, field, label, value string) {
	length := utf8.RuneCountInString(value)
	switch {
	case length == 0:
		errs.Add(field, label+" is required")
	case length < 2:
		errs.Add(field, label+" must be at least 2 characters")
	case length > 50:
		errs.Add(field, label+" must be less than 50 characters")
	case !namePattern.MatchString(value):
		errs.Add(field, label+" can only contain letters, spaces, hyphens, and apostrophes")
	}
}

// ValidateIncomeDetails checks the income step.
func ValidateIncomeDetails(employmentStatus, annualIncome, creditScoreRange string) Errors {
	var errs Errors
	if !oneOf(employmentStatus, employmentStatuses) {
		errs.Add("employmentStatus", "Please select an employment status")
	}

	switch {
	case annualIncome == "":
		errs.Add("annualIncome", "Annual income is required")
	case !validIncome(annualIncome):
		errs.Add("annualIncome", "Please enter a valid income amount")
	}

	if !oneOf(creditScoreRange, creditScoreRanges) {
		errs.Add("creditScoreRange", "Please select a credit score range")
	}
	return errs
}

// ValidatePreferences checks the preferences step.
func ValidatePreferences(offerType, contactPreference string, termsAccepted bool) Errors {
	var errs Errors
	if !oneOf(offerType, offerTypes) {
		errs.Add("offerType", "Please select an offer type")
	}
	if !oneOf(contactPreference, contactPreferences) {
		errs.Add("contactPreference", "Please select a contact preference")
	}
	if !termsAccepted {
		errs.Add("termsAccepted", "You must accept the terms and conditions")
	}
	return errs
}

// validIncome accepts any value whose leading number, after removing commas
// and dollar signs, is non-negative.
func validIncome(income string) bool {
	cleaned := strings.NewReplacer(",", "", "$", "").Replace(income)
	match := strings.TrimSpace(numericPrefix.FindString(cleaned))
	if match == "" {
		return false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return false
	}
	return value >= 0
}

func oneOf(value string, allowed []string) bool {
	for _, candidate := range allowed {
		if value == candidate {
			return true
		}
	}
	return false
}
