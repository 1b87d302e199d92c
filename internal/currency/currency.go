// Package currency converts and formats prices between the supported
// currencies at a fixed INR/USD rate.
package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Code is an ISO 4217 currency code understood by the forecaster.
type Code string

const (
	INR Code = "INR"
	USD Code = "USD"
)

// INRPerUSD is the fixed exchange rate. There is no live rate lookup.
const INRPerUSD = 83.0

const (
	USDToINR = INRPerUSD
	INRToUSD = 1 / INRPerUSD
)

// Supported lists the accepted codes in display order.
var Supported = []Code{INR, USD}

// Parse normalises s into a supported code. An empty string yields fallback.
func Parse(s string, fallback Code) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return fallback, nil
	}
	for _, c := range Supported {
		if Code(s) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("unsupported currency: %s. Must be one of %v", s, Supported)
}

// Rate returns the multiplier that turns a price in from into a price in to.
func Rate(from, to Code) float64 {
	switch {
	case from == to:
		return 1
	case from == USD && to == INR:
		return USDToINR
	case from == INR && to == USD:
		return INRToUSD
	default:
		return 1
	}
}

// Convert expresses price, declared in from, in to.
func Convert(price float64, from, to Code) float64 {
	return price * Rate(from, to)
}

// Symbol returns the display symbol for c.
func Symbol(c Code) string {
	switch c {
	case INR:
		return "₹"
	case USD:
		return "$"
	default:
		return string(c) + " "
	}
}

// Round returns price rounded half away from zero to two places.
func Round(price float64) float64 {
	f, _ := decimal.NewFromFloat(price).Round(2).Float64()
	return f
}

// Format renders price with its symbol and two decimal places.
func Format(price float64, c Code) string {
	return Symbol(c) + decimal.NewFromFloat(price).StringFixed(2)
}
