package enums

import "fmt"

// ReasonCode identifies one data-quality failure on an input row. The order
// of declarations below is the order reasons are emitted in, so repeated runs
// over identical input produce identical reason lists.
type ReasonCode string

const (
	ReasonMissingOrderID       ReasonCode = "missing_order_id"
	ReasonInvalidOrderDate     ReasonCode = "invalid_order_date"
	ReasonShipBeforeOrder      ReasonCode = "ship_date_before_order_date"
	ReasonInvalidQuantity      ReasonCode = "invalid_quantity"
	ReasonInvalidUnitPrice     ReasonCode = "invalid_unit_price"
	ReasonMissingCurrency      ReasonCode = "missing_currency"
	ReasonMissingItemSKU       ReasonCode = "missing_item_sku"
	ReasonInvalidEmail         ReasonCode = "invalid_email"
	ReasonNoContactMethod      ReasonCode = "no_contact_method"
	ReasonMissingCustomer      ReasonCode = "missing_customer_identity"
	ReasonConflictingDuplicate ReasonCode = "conflicting_duplicate_key"
)

var validReasonCodes = []ReasonCode{
	ReasonMissingOrderID,
	ReasonInvalidOrderDate,
	ReasonShipBeforeOrder,
	ReasonInvalidQuantity,
	ReasonInvalidUnitPrice,
	ReasonMissingCurrency,
	ReasonMissingItemSKU,
	ReasonInvalidEmail,
	ReasonNoContactMethod,
	ReasonMissingCustomer,
	ReasonConflictingDuplicate,
}

// String implements fmt.Stringer.
func (r ReasonCode) String() string {
	return string(r)
}

// IsValid reports whether the reason code is recognized.
func (r ReasonCode) IsValid() bool {
	for _, candidate := range validReasonCodes {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseReasonCode converts a raw string into a ReasonCode.
func ParseReasonCode(value string) (ReasonCode, error) {
	for _, candidate := range validReasonCodes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid reason code %q", value)
}
