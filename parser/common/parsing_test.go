package common

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1,234.56", "1234.56", true},
		{"500", "500", true},
		{"  89,999.00 ", "89999", true},
		{"0.01", "0.01", true},
		{"", "", false},
		{"abc", "", false},
		{"-500", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseAmount(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseAmount(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseLatinAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1.234,56", "1234.56", true},
		{"$95.000", "95000", true},
		{"120.000,00", "120000", true},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseLatinAmount(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseLatinAmount(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("ParseLatinAmount(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseMaskedAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		// A masked integer part keeps only the visible fraction.
		{"**30.16", "0.16", true},
		{"***0.00", "0", true},
		{"XX500.25", "0.25", true},
		{"1,234.00", "1234", true},
		{"91.75", "91.75", true},
		// A masked fraction leaves nothing trustworthy.
		{"30.**", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseMaskedAmount(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseMaskedAmount(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("ParseMaskedAmount(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestLast4(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"XX1234", "1234"},
		{"**3423", "3423"},
		{"1234567890", "7890"},
		{"12", "12"},
		{"none", ""},
	}
	for _, tt := range tests {
		if got := Last4(tt.in); got != tt.want {
			t.Errorf("Last4(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
