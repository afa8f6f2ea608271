package canonical

import (
	"regexp"
	"strconv"
	"strings"
)

var wholeNumberRE = regexp.MustCompile(`^[0-9]+$`)

// ParseQuantity accepts integer literals and the configured spelled-out
// cardinal words, case-insensitively. Fractional and negative values are the
// null-marker, not an error: validation then reports the field as missing.
func (c *Canonicalizer) ParseQuantity(s string) *int64 {
	coerced := CoerceNull(s)
	if coerced == nil {
		return nil
	}
	if n, ok := c.tables.NumberWords[strings.ToLower(*coerced)]; ok {
		return &n
	}
	if !wholeNumberRE.MatchString(*coerced) {
		return nil
	}
	n, err := strconv.ParseInt(*coerced, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
