package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/iwvelando/quote-engine/pkg/datetime"
)

var now = datetime.MustParseTime(datetime.DateLayout, "2026-10-19")

func TestValidatePersonalInfo(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		dob       string
		field     string
		message   string
	}{
		{"Valid", "Mary-Jane", "O'Neil", "1990-05-17", "", ""},
		{"Missing first name", "", "Smith", "1990-05-17", "firstName", "First name is required"},
		{"Short first name", "A", "Smith", "1990-05-17", "firstName", "First name must be at least 2 characters"},
		{"Long last name", "Ann", strings.Repeat("a", 51), "1990-05-17", "lastName", "Last name must be less than 50 characters"},
		{"Digits in name", "Ann3", "Smith", "1990-05-17", "firstName", "First name can only contain letters, spaces, hyphens, and apostrophes"},
		{"Missing date of birth", "Ann", "Smith", "", "dateOfBirth", "Date of birth is required"},
		{"Unparsable date of birth", "Ann", "Smith", "yesterday", "dateOfBirth", "Please enter a valid date of birth"},
		{"Too young", "Ann", "Smith", "2009-01-01", "dateOfBirth", "You must be at least 18 years old"},
		{"Calendar year age counts", "Ann", "Smith", "2008-12-31", "", ""},
		{"Future date reports age first", "Ann", "Smith", "2030-01-01", "dateOfBirth", "You must be at least 18 years old"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePersonalInfo(tt.firstName, tt.lastName, tt.dob, now)
			if tt.field == "" {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if got := errs.Message(tt.field); got != tt.message {
				t.Errorf("message for %s = %q, expected %q", tt.field, got, tt.message)
			}
		})
	}
}

func TestValidateIncomeDetails(t *testing.T) {
	tests := []struct {
		name       string
		employment string
		income     string
		credit     string
		field      string
		message    string
	}{
		{"Valid", "employed", "$75,000", "good", "", ""},
		{"Zero income is valid", "unemployed", "0", "poor", "", ""},
		{"Leading number is enough", "retired", "40000 per year", "fair", "", ""},
		{"Missing employment", "", "75000", "good", "employmentStatus", "Please select an employment status"},
		{"Unknown employment", "student", "75000", "good", "employmentStatus", "Please select an employment status"},
		{"Missing income", "employed", "", "good", "annualIncome", "Annual income is required"},
		{"Non-numeric income", "employed", "lots", "good", "annualIncome", "Please enter a valid income amount"},
		{"Negative income", "employed", "-100", "good", "annualIncome", "Please enter a valid income amount"},
		{"Missing credit score", "employed", "75000", "", "creditScoreRange", "Please select a credit score range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateIncomeDetails(tt.employment, tt.income, tt.credit)
			if tt.field == "" {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if got := errs.Message(tt.field); got != tt.message {
				t.Errorf("message for %s = %q, expected %q", tt.field, got, tt.message)
			}
		})
	}
}

func TestValidatePreferences(t *testing.T) {
	if errs := ValidatePreferences("insurance", "both", true); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	errs := ValidatePreferences("", "fax", false)
	expected := map[string]string{
		"offerType":         "Please select an offer type",
		"contactPreference": "Please select a contact preference",
		"termsAccepted":     "You must accept the terms and conditions",
	}
	if len(errs) != len(expected) {
		t.Fatalf("expected %d errors, got %v", len(expected), errs)
	}
	for field, message := range expected {
		if got := errs.Message(field); got != message {
			t.Errorf("message for %s = %q, expected %q", field, got, message)
		}
	}
}

func TestErrors(t *testing.T) {
	var errs Errors
	if errs.Err() != nil {
		t.Fatal("expected nil error for empty Errors")
	}

	errs.Add("firstName", "first")
	errs.Add("firstName", "second")
	if len(errs) != 1 || errs.Message("firstName") != "first" {
		t.Fatalf("expected first message to win, got %v", errs)
	}

	var merged Errors
	merged.Merge("personal", errs)
	merged.Merge("", Errors{{Field: "offerType", Message: "Please select an offer type"}})
	if merged.Message("personal.firstName") != "first" {
		t.Errorf("expected prefixed field, got %v", merged)
	}
	if merged.Message("offerType") == "" {
		t.Errorf("expected unprefixed field, got %v", merged)
	}

	err := merged.Err()
	var target Errors
	if !errors.As(err, &target) {
		t.Fatalf("expected errors.As to find Errors in %v", err)
	}
	if !strings.Contains(err.Error(), "personal.firstName: first") {
		t.Errorf("unexpected error text %q", err.Error())
	}
}

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"pretty", "csv", "json"} {
		if err := ValidateOutputFormat(format); err != nil {
			t.Errorf("ValidateOutputFormat(%q) unexpected error: %v", format, err)
		}
	}
	for _, format := range []string{"", "xml", "PRETTY"} {
		if err := ValidateOutputFormat(format); err == nil {
			t.Errorf("ValidateOutputFormat(%q) expected error", format)
		}
	}
}
