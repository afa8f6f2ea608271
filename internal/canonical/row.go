package canonical

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// RawRow is the untouched textual representation of one input line. Cells are
// text-normalized at read time but carry no type information.
type RawRow struct {
	OrderID      string `json:"order_id"`
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Country      string `json:"country"`
	State        string `json:"state"`
	City         string `json:"city"`
	Address      string `json:"address"`
	PostalCode   string `json:"postal_code"`
	OrderDate    string `json:"order_date"`
	ShipDate     string `json:"ship_date"`
	ShipMode     string `json:"ship_mode"`
	ItemSKU      string `json:"item_sku"`
	ItemName     string `json:"item_name"`
	Quantity     string `json:"quantity"`
	UnitPrice    string `json:"unit_price"`
	Currency     string `json:"currency"`
	DiscountCode string `json:"discount_code"`
	OrderNotes   string `json:"order_notes"`
}

// PayloadJSON renders the raw field values as a JSON object with nulls for
// empty cells, for the bad-stream audit payload.
func (r RawRow) PayloadJSON() (string, error) {
	fields := map[string]*string{
		"order_id":      emptyToNil(r.OrderID),
		"customer_id":   emptyToNil(r.CustomerID),
		"customer_name": emptyToNil(r.CustomerName),
		"email":         emptyToNil(r.Email),
		"phone":         emptyToNil(r.Phone),
		"country":       emptyToNil(r.Country),
		"state":         emptyToNil(r.State),
		"city":          emptyToNil(r.City),
		"address":       emptyToNil(r.Address),
		"postal_code":   emptyToNil(r.PostalCode),
		"order_date":    emptyToNil(r.OrderDate),
		"ship_date":     emptyToNil(r.ShipDate),
		"ship_mode":     emptyToNil(r.ShipMode),
		"item_sku":      emptyToNil(r.ItemSKU),
		"item_name":     emptyToNil(r.ItemName),
		"quantity":      emptyToNil(r.Quantity),
		"unit_price":    emptyToNil(r.UnitPrice),
		"currency":      emptyToNil(r.Currency),
		"discount_code": emptyToNil(r.DiscountCode),
		"order_notes":   emptyToNil(r.OrderNotes),
	}
	encoded, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// CanonicalRow is the strongly-typed counterpart of one RawRow. A nil field
// is the null-marker: the value was missing or unparseable.
type CanonicalRow struct {
	OrderID      *string
	CustomerID   *string
	CustomerName *string
	Email        *string
	Phone        *string
	Country      *string
	State        *string
	City         *string
	Address      *string
	PostalCode   *string
	OrderDate    *time.Time
	ShipDate     *time.Time
	ShipMode     *string
	ItemSKU      *string
	ItemName     *string
	Quantity     *int64
	UnitPrice    *decimal.Decimal
	Currency     *string
	DiscountCode *string
	OrderNotes   *string
}

// DedupKey is the identity of an order line within a batch.
type DedupKey struct {
	OrderID string
	ItemSKU string
}

// Key returns the row's identity key. ok is false when either half is the
// null-marker; such rows never reach deduplication because validation has
// already rejected them.
func (c CanonicalRow) Key() (DedupKey, bool) {
	if c.OrderID == nil || c.ItemSKU == nil {
		return DedupKey{}, false
	}
	return DedupKey{OrderID: *c.OrderID, ItemSKU: *c.ItemSKU}, true
}

// Equal reports whether two canonical rows are field-for-field identical.
func (c CanonicalRow) Equal(other CanonicalRow) bool {
	return strPtrEqual(c.OrderID, other.OrderID) &&
		strPtrEqual(c.CustomerID, other.CustomerID) &&
		strPtrEqual(c.CustomerName, other.CustomerName) &&
		strPtrEqual(c.Email, other.Email) &&
		strPtrEqual(c.Phone, other.Phone) &&
		strPtrEqual(c.Country, other.Country) &&
		strPtrEqual(c.State, other.State) &&
		strPtrEqual(c.City, other.City) &&
		strPtrEqual(c.Address, other.Address) &&
		strPtrEqual(c.PostalCode, other.PostalCode) &&
		timePtrEqual(c.OrderDate, other.OrderDate) &&
		timePtrEqual(c.ShipDate, other.ShipDate) &&
		strPtrEqual(c.ShipMode, other.ShipMode) &&
		strPtrEqual(c.ItemSKU, other.ItemSKU) &&
		strPtrEqual(c.ItemName, other.ItemName) &&
		intPtrEqual(c.Quantity, other.Quantity) &&
		decimalPtrEqual(c.UnitPrice, other.UnitPrice) &&
		strPtrEqual(c.Currency, other.Currency) &&
		strPtrEqual(c.DiscountCode, other.DiscountCode) &&
		strPtrEqual(c.OrderNotes, other.OrderNotes)
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func intPtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func decimalPtrEqual(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
