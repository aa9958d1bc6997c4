// Package config defines the CLI configuration (the applicant to quote plus
// logging and output options) and loads it from YAML.
package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/quote-engine/internal/quote"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for a quote-engine run.
type Configuration struct {
	Applicant Applicant     `yaml:"applicant"`
	Compare   bool          `yaml:"compare,omitempty"`
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// Applicant is the wizard data the engine prices.
type Applicant struct {
	Income      quote.IncomeProfile     `yaml:"income"`
	Preferences quote.PreferenceProfile `yaml:"preferences"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Environment variables prefixed QUOTE_ override file
// values, e.g. QUOTE_APPLICANT_INCOME_ANNUALINCOME.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix("quote")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration reports applicant values the engine will not
// recognise. They are warnings, not errors: unknown values are quoted with
// default assumptions.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string
	income := conf.Applicant.Income

	if income.EmploymentStatus != "" && income.Employment() == quote.EmploymentUnknown {
		warnings = append(warnings, fmt.Sprintf(
			"unrecognised employment status %q, using the default multiplier", income.EmploymentStatus))
	}
	if income.CreditScoreRange != "" && income.CreditScore() == quote.CreditUnknown {
		warnings = append(warnings, fmt.Sprintf(
			"unrecognised credit score range %q, using default rates", income.CreditScoreRange))
	}
	if strings.TrimSpace(income.AnnualIncome) == "" {
		warnings = append(warnings, "annual income is empty, offers will be quoted at their minimums")
	} else if !strings.ContainsAny(income.AnnualIncome, "0123456789") {
		warnings = append(warnings, fmt.Sprintf(
			"annual income %q has no leading number, treating it as 0", income.AnnualIncome))
	}

	switch quote.OfferType(conf.Applicant.Preferences.OfferType) {
	case "", quote.OfferTypeLoan, quote.OfferTypeCreditCard, quote.OfferTypeInsurance:
	default:
		warnings = append(warnings, fmt.Sprintf(
			"unrecognised offer type %q, quoting a loan", conf.Applicant.Preferences.OfferType))
	}

	return warnings
}
