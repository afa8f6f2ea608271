package validate

import (
	"regexp"

	"github.com/angelmondragon/orderflow-etl/internal/canonical"
	"github.com/angelmondragon/orderflow-etl/pkg/enums"
)

// emailRE is a deliberately loose syntactic shape: local part, "@", domain
// containing a dot. No RFC grammar, no resolution.
var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Verdict tags a canonical row as accepted or rejected. An empty reason list
// means the row passed every rule.
type Verdict struct {
	Reasons []enums.ReasonCode
}

// Valid reports whether the row collected zero reasons.
func (v Verdict) Valid() bool {
	return len(v.Reasons) == 0
}

// Validate runs every rule unconditionally and collects failing reason codes
// in declaration order, so identical input always yields an identical list.
func Validate(row canonical.CanonicalRow) Verdict {
	var reasons []enums.ReasonCode

	if row.OrderID == nil {
		reasons = append(reasons, enums.ReasonMissingOrderID)
	}
	if row.OrderDate == nil {
		reasons = append(reasons, enums.ReasonInvalidOrderDate)
	}
	if row.OrderDate != nil && row.ShipDate != nil && row.ShipDate.Before(*row.OrderDate) {
		reasons = append(reasons, enums.ReasonShipBeforeOrder)
	}
	if row.Quantity == nil || *row.Quantity < 0 {
		reasons = append(reasons, enums.ReasonInvalidQuantity)
	}
	if row.UnitPrice == nil || row.UnitPrice.IsNegative() {
		reasons = append(reasons, enums.ReasonInvalidUnitPrice)
	}
	if row.Currency == nil {
		reasons = append(reasons, enums.ReasonMissingCurrency)
	}
	if row.ItemSKU == nil {
		reasons = append(reasons, enums.ReasonMissingItemSKU)
	}
	if row.Email != nil && !emailRE.MatchString(*row.Email) {
		reasons = append(reasons, enums.ReasonInvalidEmail)
	}
	if row.Email == nil && row.Phone == nil && row.Address == nil {
		reasons = append(reasons, enums.ReasonNoContactMethod)
	}
	if row.CustomerID == nil && row.CustomerName == nil {
		reasons = append(reasons, enums.ReasonMissingCustomer)
	}

	return Verdict{Reasons: reasons}
}
