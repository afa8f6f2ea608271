package canonical

import "time"

// ParseDate tries the configured layouts in order; the first full match that
// yields a valid calendar date wins. A timezone-carrying source is converted
// to UTC before the calendar date is taken. No match is the null-marker.
func (c *Canonicalizer) ParseDate(s string) *time.Time {
	coerced := CoerceNull(s)
	if coerced == nil {
		return nil
	}
	for _, layout := range c.tables.DateLayouts {
		parsed, err := time.Parse(layout, *coerced)
		if err != nil {
			continue
		}
		parsed = parsed.UTC()
		day := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
		return &day
	}
	return nil
}

// DateLayout is the canonical calendar-date format persisted downstream.
const DateLayout = "2006-01-02"

// FormatDate renders a canonical date as its persisted string, or nil for
// the null-marker.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(DateLayout)
	return &formatted
}
