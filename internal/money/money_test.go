package money

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseOrZero(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain integer", input: "42", want: "42"},
		{name: "two decimals", input: "150.50", want: "150.5"},
		{name: "negative", input: "-3.25", want: "-3.25"},
		{name: "surrounding whitespace", input: " 7.5 ", want: "7.5"},
		{name: "empty string", input: "", want: "0"},
		{name: "garbage", input: "not-a-number", want: "0"},
		{name: "trailing decimal point", input: "12.", want: "12"},
		{name: "double dot", input: "1.2.3", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseOrZero(tt.input)
			if got.String() != tt.want {
				t.Errorf("ParseOrZero(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestBaseUnitsRoundTrip(t *testing.T) {
	// ToBaseUnits(ToMajorUnits(x)) == x for any integer x.
	for _, base := range []int64{0, 1, 99, 100, 15050, -250, 1234567890} {
		major := ToMajorUnits(base)
		if got := ToBaseUnits(major); got != base {
			t.Errorf("round-trip: ToBaseUnits(ToMajorUnits(%d)) = %d", base, got)
		}
	}
}

func TestToBaseUnits(t *testing.T) {
	tests := []struct {
		major string
		want  int64
	}{
		{major: "150.50", want: 15050},
		{major: "0.01", want: 1},
		{major: "100", want: 10000},
		{major: "0", want: 0},
	}

	for _, tt := range tests {
		d := decimal.RequireFromString(tt.major)
		if got := ToBaseUnits(d); got != tt.want {
			t.Errorf("ToBaseUnits(%s) = %d, want %d", tt.major, got, tt.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	t.Run("USD in en-US", func(t *testing.T) {
		got := FormatCurrency(15050, "USD", "en-US")
		if !strings.Contains(got, "150") {
			t.Errorf("FormatCurrency = %q, want it to contain %q", got, "150")
		}
		if !strings.Contains(got, "$") {
			t.Errorf("FormatCurrency = %q, want it to contain %q", got, "$")
		}
	})

	t.Run("EGP in ar-EG uses Arabic-Indic digits", func(t *testing.T) {
		got := FormatCurrency(15050, "EGP", "ar-EG")
		// 150.50 renders as ١٥٠٫٥٠ in the Arabic numbering system.
		for _, r := range []rune{'١', '٥', '٠'} {
			if !strings.ContainsRune(got, r) {
				t.Errorf("FormatCurrency = %q, want Arabic-Indic digit %q", got, r)
			}
		}
		if !strings.Contains(got, "ج.م.") {
			t.Errorf("FormatCurrency = %q, want EGP symbol %q", got, "ج.م.")
		}
	})

	t.Run("unknown locale falls back", func(t *testing.T) {
		got := FormatCurrency(100, "USD", "not a locale!!")
		if !strings.Contains(got, "1.00") {
			t.Errorf("FormatCurrency = %q, want fallback English formatting", got)
		}
	})

	t.Run("unknown currency keeps code verbatim", func(t *testing.T) {
		got := FormatCurrency(100, "XXXX", "en-US")
		if !strings.Contains(got, "XXXX") {
			t.Errorf("FormatCurrency = %q, want raw code", got)
		}
	})
}
