package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iwvelando/quote-engine/internal/config"
	"github.com/iwvelando/quote-engine/internal/quote"
	"github.com/iwvelando/quote-engine/pkg/constants"
	"github.com/iwvelando/quote-engine/pkg/output"
	"github.com/iwvelando/quote-engine/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to applicant configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	compare := flag.Bool("compare", false, "quote every offer type and print a comparison")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	income := conf.Applicant.Income
	var (
		offers  []quote.Offer
		options []quote.ComparisonOption
	)
	if *compare || conf.Compare {
		all := quote.CalculateAllOffers(income)
		offers = all.Offers()
		options = quote.CompareOffers(all)
	} else {
		offers = []quote.Offer{quote.CalculateOffer(income, conf.Applicant.Preferences)}
	}

	logger.Debug("offers computed",
		zap.String("op", "main"),
		zap.Int("offers", len(offers)),
		zap.String("employment", income.Employment().String()),
		zap.String("creditScore", income.CreditScore().String()),
	)

	if err := output.Write(os.Stdout, outputFormat, offers, options); err != nil {
		logger.Fatal("failed to write output",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
