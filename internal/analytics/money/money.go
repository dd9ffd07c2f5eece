// Package money normalizes order amounts into the reporting currency.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RateTable holds exchange rates keyed by currency code, expressed as
// units of that currency per one unit of the base currency.
type RateTable struct {
	Base  string
	Rates map[string]decimal.Decimal
}

// Rate returns the exchange rate for a currency code, and whether the
// table knows it. The base currency always resolves to 1.
func (t RateTable) Rate(code string) (decimal.Decimal, bool) {
	code = strings.ToUpper(code)
	if code == strings.ToUpper(t.Base) {
		return decimal.NewFromInt(1), true
	}
	rate, ok := t.Rates[code]
	return rate, ok
}

// Converter normalizes amounts to a single reporting currency.
type Converter struct {
	reportingCurrency string
	rates             RateTable

	// OnMissingRate is invoked when a source currency is absent from the
	// rate table. The amount then passes through unconverted, which can
	// misstate totals; the hook exists so callers can surface that.
	OnMissingRate func(currencyCode string)
}

func NewConverter(reportingCurrency string, rates RateTable) *Converter {
	return &Converter{
		reportingCurrency: strings.ToUpper(reportingCurrency),
		rates:             rates,
	}
}

// ReportingCurrency returns the target currency code.
func (c *Converter) ReportingCurrency() string {
	return c.reportingCurrency
}

// Normalize converts an amount from the given currency into the
// reporting currency by dividing by the source currency's rate.
// Matching currencies pass through untouched, and so does an amount
// whose rate is unknown or zero.
func (c *Converter) Normalize(amount decimal.Decimal, fromCurrency string) decimal.Decimal {
	from := strings.ToUpper(fromCurrency)
	if from == c.reportingCurrency {
		return amount
	}
	rate, ok := c.rates.Rate(from)
	if !ok || rate.IsZero() {
		if c.OnMissingRate != nil {
			c.OnMissingRate(from)
		}
		return amount
	}
	return amount.Div(rate)
}

// NormalizeMinorUnits is Normalize over an integer minor-unit amount.
func (c *Converter) NormalizeMinorUnits(amount int64, fromCurrency string) decimal.Decimal {
	return c.Normalize(decimal.NewFromInt(amount), fromCurrency)
}
