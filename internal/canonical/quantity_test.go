package canonical

import "testing"

func TestParseQuantity(t *testing.T) {
	c := New(DefaultTables())

	tests := []struct {
		in   string
		want int64
	}{
		{in: "two", want: 2},
		{in: "TWO", want: 2},
		{in: "twenty", want: 20},
		{in: "zero", want: 0},
		{in: "17", want: 17},
		{in: "0", want: 0},
	}
	for _, tt := range tests {
		got := c.ParseQuantity(tt.in)
		if got == nil {
			t.Fatalf("ParseQuantity(%q) = nil, want %d", tt.in, tt.want)
		}
		if *got != tt.want {
			t.Fatalf("ParseQuantity(%q) = %d, want %d", tt.in, *got, tt.want)
		}
	}
}

func TestParseQuantityNullMarker(t *testing.T) {
	c := New(DefaultTables())

	// Negative and fractional values are the null-marker, not an error and
	// not a negative quantity.
	for _, in := range []string{"", "n/a", "-3", "2.5", "many", "1e3"} {
		if got := c.ParseQuantity(in); got != nil {
			t.Fatalf("ParseQuantity(%q) = %d, want nil", in, *got)
		}
	}
}
