package canonical

import (
	"regexp"
	"strings"
)

var nonDigitRE = regexp.MustCompile(`[^0-9]`)

// Canonicalizer turns raw textual rows into typed canonical rows. Every
// parser is pure and total: no input string errors, unparseable values map
// to the null-marker.
type Canonicalizer struct {
	tables Tables
}

// New constructs a Canonicalizer around the given lookup tables.
func New(tables Tables) *Canonicalizer {
	return &Canonicalizer{tables: tables}
}

// Canonicalize derives the typed row for one raw row. Null coercion runs on
// every field before its type-specific parser.
func (c *Canonicalizer) Canonicalize(raw RawRow) CanonicalRow {
	price, currency := c.ParsePrice(raw.UnitPrice, raw.Currency)

	var country *string
	if v := CoerceNull(raw.Country); v != nil {
		upper := strings.ToUpper(*v)
		country = &upper
	}

	return CanonicalRow{
		OrderID:      c.ExtractOrderID(raw.OrderID),
		CustomerID:   CoerceNull(raw.CustomerID),
		CustomerName: CoerceNull(raw.CustomerName),
		Email:        CoerceNull(raw.Email),
		Phone:        c.NormalizePhone(raw.Phone, raw.Country),
		Country:      country,
		State:        CoerceNull(raw.State),
		City:         CoerceNull(raw.City),
		Address:      CoerceNull(raw.Address),
		PostalCode:   CoerceNull(raw.PostalCode),
		OrderDate:    c.ParseDate(raw.OrderDate),
		ShipDate:     c.ParseDate(raw.ShipDate),
		ShipMode:     CoerceNull(raw.ShipMode),
		ItemSKU:      CoerceNull(raw.ItemSKU),
		ItemName:     CoerceNull(raw.ItemName),
		Quantity:     c.ParseQuantity(raw.Quantity),
		UnitPrice:    price,
		Currency:     currency,
		DiscountCode: CoerceNull(raw.DiscountCode),
		OrderNotes:   CoerceNull(raw.OrderNotes),
	}
}

// ExtractOrderID strips every non-digit character from the raw identifier.
// An empty result is the null-marker.
func (c *Canonicalizer) ExtractOrderID(s string) *string {
	coerced := CoerceNull(s)
	if coerced == nil {
		return nil
	}
	digits := nonDigitRE.ReplaceAllString(*coerced, "")
	if digits == "" {
		return nil
	}
	return &digits
}
