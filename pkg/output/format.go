// Package output provides utilities for formatting and displaying quote results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/quote-engine/internal/quote"
	"github.com/iwvelando/quote-engine/pkg/constants"
	"github.com/iwvelando/quote-engine/pkg/loans"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Write renders offers in the requested format. Comparison options are only
// rendered by the pretty and json formats and may be nil.
func Write(w io.Writer, format string, offers []quote.Offer, options []quote.ComparisonOption) error {
	switch format {
	case constants.OutputFormatPretty, "":
		return PrettyFormat(w, offers, options)
	case constants.OutputFormatCSV:
		return CsvFormat(w, offers)
	case constants.OutputFormatJSON:
		return JSONFormat(w, offers, options)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, offers []quote.Offer, options []quote.ComparisonOption) error {
	p := message.NewPrinter(language.English)
	for i, offer := range offers {
		summary := quote.GetOfferSummary(offer)
		if _, err := fmt.Fprintf(w, "--- %s %s ---\n", summary.Icon, summary.Title); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "Field              | Value\n")
		_, _ = fmt.Fprintf(w, "_____              | _____\n")
		for _, row := range prettyRows(offer) {
			_, _ = p.Fprintf(w, "%-18s | %s\n", row.label, row.value(p))
		}
		_, _ = fmt.Fprintf(w, "Summary: %s | %s | %s\n", summary.Amount, summary.Rate, summary.Details)
		if i < len(offers)-1 || len(options) > 0 {
			_, _ = fmt.Fprintf(w, "\n")
		}
	}

	if len(options) > 0 {
		_, _ = fmt.Fprintf(w, "--- Comparison ---\n")
		_, _ = fmt.Fprintf(w, "Option | Amount | Rate | Term | Highlight\n")
		_, _ = fmt.Fprintf(w, "______ | ______ | ____ | ____ | _________\n")
		for _, opt := range options {
			_, err := fmt.Fprintf(w, "%s %s | %s | %s | %s | %s\n",
				opt.Icon, opt.Title, opt.Amount, opt.Rate, opt.Term, opt.Highlight)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

type prettyRow struct {
	label string
	value func(p *message.Printer) string
}

func money(v float64) func(*message.Printer) string {
	return func(p *message.Printer) string { return p.Sprintf("$%.2f", v) }
}

func percent(v float64) func(*message.Printer) string {
	return func(*message.Printer) string { return strconv.FormatFloat(v, 'f', -1, 64) + "%" }
}

func text(s string) func(*message.Printer) string {
	return func(*message.Printer) string { return s }
}

func prettyRows(offer quote.Offer) []prettyRow {
	switch o := offer.(type) {
	case quote.LoanOffer:
		return []prettyRow{
			{"Approved amount", money(o.ApprovedAmount)},
			{"Maximum amount", money(o.MaxAmount)},
			{"APR", percent(o.APR)},
			{"Term", text(fmt.Sprintf("%d months", o.Term))},
			{"Monthly payment", money(o.MonthlyPayment)},
			{"First interest", money(loans.CalculateInterestPayment(o.ApprovedAmount, o.APR))},
			{"Total interest", money(loans.TotalInterest(o.ApprovedAmount, o.MonthlyPayment, o.Term))},
		}
	case quote.CreditCardOffer:
		return []prettyRow{
			{"Credit limit", money(o.CreditLimit)},
			{"Intro APR", percent(o.IntroAPR)},
			{"Intro period", text(fmt.Sprintf("%d months", o.IntroPeriod))},
			{"Regular APR", percent(o.RegularAPR)},
			{"Cash back", percent(o.CashBack)},
		}
	case quote.InsuranceOffer:
		return []prettyRow{
			{"Coverage", money(o.CoverageAmount)},
			{"Monthly premium", money(o.MonthlyPremium)},
			{"Term", text(fmt.Sprintf("%d years", o.TermYears))},
		}
	default:
		return nil
	}
}

var csvHeader = []string{"type", "title", "amount", "rate", "term", "monthly", "summary"}

// CsvFormat outputs in comma-separated value format, one row per offer.
// Rate is the APR for loans, the regular APR for cards and empty for
// insurance; term is in months, or years for insurance.
func CsvFormat(w io.Writer, offers []quote.Offer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, offer := range offers {
		if err := cw.Write(csvRecord(offer)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRecord(offer quote.Offer) []string {
	summary := quote.GetOfferSummary(offer)
	details := summary.Amount + " | " + summary.Rate + " | " + summary.Details
	fixed := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	short := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	switch o := offer.(type) {
	case quote.LoanOffer:
		return []string{string(o.Type), o.Title, fixed(o.ApprovedAmount), short(o.APR),
			strconv.Itoa(o.Term), fixed(o.MonthlyPayment), details}
	case quote.CreditCardOffer:
		return []string{string(o.Type), o.Title, fixed(o.CreditLimit), short(o.RegularAPR),
			strconv.Itoa(o.IntroPeriod), "", details}
	case quote.InsuranceOffer:
		return []string{string(o.Type), o.Title, fixed(o.CoverageAmount), "",
			strconv.Itoa(o.TermYears), fixed(o.MonthlyPremium), details}
	default:
		return []string{"", "", "", "", "", "", ""}
	}
}

// jsonOffer pairs an offer with its display summary.
type jsonOffer struct {
	Offer   quote.Offer   `json:"offer"`
	Summary quote.Summary `json:"summary"`
}

type jsonDocument struct {
	Offers  []jsonOffer              `json:"offers"`
	Compare []quote.ComparisonOption `json:"compare,omitempty"`
}

// JSONFormat outputs an indented JSON document of offers and their summaries.
func JSONFormat(w io.Writer, offers []quote.Offer, options []quote.ComparisonOption) error {
	doc := jsonDocument{Offers: make([]jsonOffer, 0, len(offers)), Compare: options}
	for _, offer := range offers {
		doc.Offers = append(doc.Offers, jsonOffer{Offer: offer, Summary: quote.GetOfferSummary(offer)})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}
