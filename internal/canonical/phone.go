package canonical

import (
	"regexp"
	"strings"
)

var nonPhoneRE = regexp.MustCompile(`[^0-9+]`)

// NormalizePhone is a best-effort cleanup, not a validation. It keeps digits
// and a leading "+", prepends the dialing prefix mapped from the auxiliary
// country field when the number lacks one, and strips leading zeros from the
// national portion. Empty or unparseable input is the null-marker.
func (c *Canonicalizer) NormalizePhone(phone, country string) *string {
	coerced := CoerceNull(phone)
	if coerced == nil {
		return nil
	}

	kept := nonPhoneRE.ReplaceAllString(*coerced, "")
	digits := nonDigitRE.ReplaceAllString(kept, "")

	// Already in international form.
	if strings.HasPrefix(kept, "+") && len(digits) >= 8 {
		normalized := "+" + digits
		return &normalized
	}

	var prefix string
	if ctry := CoerceNull(country); ctry != nil {
		prefix = c.tables.CountryDialing[strings.ToUpper(*ctry)]
	}
	national := strings.TrimLeft(digits, "0")
	if prefix != "" && national != "" {
		normalized := prefix + national
		return &normalized
	}

	if digits == "" {
		return nil
	}
	return &digits
}
