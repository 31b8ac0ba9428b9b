// Package format renders user-facing numbers for the menu page.
package format

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Price formats a currency-agnostic magnitude as a whole-number price in the
// given currency and language, e.g. Price(1500, "ARS", "es") => "$ 1.500".
// Fractions are rounded away; the page never shows decimals.
func Price(amount float64, currency, lang string) string {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	printer := message.NewPrinter(matchLanguage(lang))
	grouped := printer.Sprintf("%d", int64(math.Round(amount)))
	return currencySymbol(currency) + " " + grouped
}

func matchLanguage(lang string) language.Tag {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return language.Spanish
	}
	return tag
}

func currencySymbol(code string) string {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "ARS", "USD", "CLP", "MXN":
		return "$"
	case "EUR":
		return "€"
	case "BRL":
		return "R$"
	default:
		return strings.ToUpper(strings.TrimSpace(code))
	}
}
