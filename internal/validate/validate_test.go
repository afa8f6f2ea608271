package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/orderflow-etl/internal/canonical"
	"github.com/angelmondragon/orderflow-etl/pkg/enums"
)

var canon = canonical.New(canonical.DefaultTables())

func validRaw() canonical.RawRow {
	return canonical.RawRow{
		OrderID:    "123",
		CustomerID: "C-1",
		Email:      "buyer@example.com",
		OrderDate:  "2024-01-01",
		ShipDate:   "2024-01-05",
		ItemSKU:    "A1",
		Quantity:   "2",
		UnitPrice:  "$10.00",
	}
}

func TestValidateAccepts(t *testing.T) {
	verdict := Validate(canon.Canonicalize(validRaw()))
	require.True(t, verdict.Valid(), "unexpected reasons: %v", verdict.Reasons)
}

func TestValidateShipBeforeOrder(t *testing.T) {
	raw := validRaw()
	raw.OrderID = "00123"
	raw.OrderDate = "2024-01-05"
	raw.ShipDate = "2024-01-01"

	verdict := Validate(canon.Canonicalize(raw))
	require.False(t, verdict.Valid())
	assert.Equal(t, []enums.ReasonCode{enums.ReasonShipBeforeOrder}, verdict.Reasons)
}

func TestValidateEqualDatesPass(t *testing.T) {
	raw := validRaw()
	raw.ShipDate = raw.OrderDate

	verdict := Validate(canon.Canonicalize(raw))
	assert.True(t, verdict.Valid())
}

func TestValidateNoContactMethod(t *testing.T) {
	raw := validRaw()
	raw.Email = ""
	raw.Phone = ""
	raw.Address = ""

	verdict := Validate(canon.Canonicalize(raw))
	require.False(t, verdict.Valid())
	assert.Equal(t, []enums.ReasonCode{enums.ReasonNoContactMethod}, verdict.Reasons)
}

func TestValidateEmailShape(t *testing.T) {
	raw := validRaw()
	raw.Email = "not-an-email"

	verdict := Validate(canon.Canonicalize(raw))
	assert.Contains(t, verdict.Reasons, enums.ReasonInvalidEmail)

	// A present address keeps the contact rule satisfied even with a bad email.
	raw.Address = "1 Main St"
	verdict = Validate(canon.Canonicalize(raw))
	assert.NotContains(t, verdict.Reasons, enums.ReasonNoContactMethod)
}

func TestValidateCollectsAllReasonsInOrder(t *testing.T) {
	// Everything wrong at once: no check suppresses another.
	verdict := Validate(canon.Canonicalize(canonical.RawRow{Email: "bad"}))
	require.False(t, verdict.Valid())

	assert.Equal(t, []enums.ReasonCode{
		enums.ReasonMissingOrderID,
		enums.ReasonInvalidOrderDate,
		enums.ReasonInvalidQuantity,
		enums.ReasonInvalidUnitPrice,
		enums.ReasonMissingCurrency,
		enums.ReasonMissingItemSKU,
		enums.ReasonInvalidEmail,
		enums.ReasonMissingCustomer,
	}, verdict.Reasons)
}

func TestValidateDeterministic(t *testing.T) {
	row := canon.Canonicalize(canonical.RawRow{Email: "bad", Quantity: "-1"})

	first := Validate(row)
	second := Validate(row)
	assert.Equal(t, first.Reasons, second.Reasons)
}
