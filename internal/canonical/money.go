package canonical

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	isoCodeRE      = regexp.MustCompile(`\b[A-Z]{3}\b`)
	anyCodeTokenRE = regexp.MustCompile(`(?i)\b[a-z]{3}\b`)

	// Keeps "-" so a negative amount parses as negative and is rejected
	// below instead of silently flipping sign.
	nonAmountRE   = regexp.MustCompile(`[^0-9.-]`)
	decimalTailRE = regexp.MustCompile(`,[0-9]{2}$`)
)

// ParsePrice resolves the price text and the dedicated currency column into
// a non-negative amount and a currency code. Either half independently
// resolves to the null-marker when undetectable. The dedicated column wins
// over indicators embedded in the price text.
func (c *Canonicalizer) ParsePrice(value, currencyColumn string) (*decimal.Decimal, *string) {
	text := CoerceNull(value)
	column := CoerceNull(currencyColumn)

	var currency *string
	if column != nil {
		upper := strings.ToUpper(*column)
		currency = &upper
	} else if text != nil {
		currency = c.detectCurrency(*text)
	}

	if text == nil {
		return nil, currency
	}
	return c.parseAmount(*text), currency
}

// detectCurrency looks for an ISO-style code token first, then for a known
// symbol, scanning symbols in table order for determinism.
func (c *Canonicalizer) detectCurrency(text string) *string {
	if code := isoCodeRE.FindString(text); code != "" {
		return &code
	}
	for _, entry := range c.tables.CurrencySymbols {
		if strings.Contains(text, entry.Symbol) {
			code := entry.Code
			return &code
		}
	}
	return nil
}

// parseAmount strips currency indicators, resolves the decimal-separator
// convention, and parses the remaining digits into a non-negative decimal.
// The separator that appears last is the decimal separator when both are
// present; a lone separator is decimal when followed by exactly two digits.
func (c *Canonicalizer) parseAmount(text string) *decimal.Decimal {
	s := anyCodeTokenRE.ReplaceAllString(text, "")
	for _, entry := range c.tables.CurrencySymbols {
		s = strings.ReplaceAll(s, entry.Symbol, "")
	}
	s = strings.TrimSpace(s)

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			// EU convention: "." groups thousands, "," is the decimal mark.
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") == 1 && decimalTailRE.MatchString(s) {
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case strings.Count(s, ".") > 1:
		// Several dots can only be grouping.
		s = strings.ReplaceAll(s, ".", "")
	}

	s = nonAmountRE.ReplaceAllString(s, "")
	if s == "" || s == "." {
		return nil
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	if amount.IsNegative() {
		return nil
	}
	return &amount
}
