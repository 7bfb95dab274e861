package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"1200", "1200", true},
		{"1200.50", "1200.5", true},
		{"0", "0", true},
		{"0.01", "0.01", true},
		{"-350.75", "-350.75", true},
		{" 2.50 ", "2.5", true},
		{"abc", "", false},
		{"1.2.3", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.in, err)
			}
			if want := decimal.RequireFromString(tc.out); !got.Equal(want) {
				t.Fatalf("ParseAmount(%q) = %s, want %s", tc.in, got, want)
			}
		} else if err == nil {
			t.Fatalf("ParseAmount(%q) expected error", tc.in)
		}
	}
}

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"100", "R$ 100,00"},
		{"1234.5", "R$ 1234,50"},
		{"1005.005", "R$ 1005,01"},
		{"-100", "R$ -100,00"},
		{"-200.505", "R$ -200,51"},
	}
	for _, tc := range cases {
		got := FormatBRL(decimal.RequireFromString(tc.in))
		if got != tc.want {
			t.Fatalf("FormatBRL(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
