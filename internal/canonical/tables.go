package canonical

// SymbolCurrency maps one currency symbol to its ISO-style code. Held in an
// ordered slice so detection scans deterministically.
type SymbolCurrency struct {
	Symbol string
	Code   string
}

// Tables holds the immutable lookup data injected into a Canonicalizer.
// Swapping a table never touches parsing logic.
type Tables struct {
	CountryDialing  map[string]string
	CurrencySymbols []SymbolCurrency
	NumberWords     map[string]int64
	DateLayouts     []string
}

// DefaultTables returns the lookup data the pipeline ships with.
func DefaultTables() Tables {
	return Tables{
		CountryDialing: map[string]string{
			"US": "+1", "CA": "+1", "GB": "+44", "UK": "+44", "FR": "+33",
			"DE": "+49", "ES": "+34", "CN": "+86", "JP": "+81", "IN": "+91",
		},
		CurrencySymbols: []SymbolCurrency{
			{Symbol: "$", Code: "USD"},
			{Symbol: "€", Code: "EUR"},
			{Symbol: "£", Code: "GBP"},
			{Symbol: "¥", Code: "JPY"},
			{Symbol: "元", Code: "CNY"},
			{Symbol: "円", Code: "JPY"},
		},
		NumberWords: map[string]int64{
			"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
			"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
			"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13,
			"fourteen": 14, "fifteen": 15, "sixteen": 16, "seventeen": 17,
			"eighteen": 18, "nineteen": 19, "twenty": 20,
		},
		// Non-padded components also accept zero-padded input, so "1/2/2006"
		// covers "01/05/2024" and "1/5/2024" alike. Month-first layouts sit
		// ahead of their day-first counterparts.
		DateLayouts: []string{
			"2006-01-02",
			"2006-01-02T15:04:05Z07:00",
			"2006-01-02T15:04:05",
			"2006-1-2",
			"2006/1/2",
			"1/2/2006",
			"2-1-2006",
			"1/2/06",
			"2/1/2006",
			"2/1/06",
		},
	}
}
