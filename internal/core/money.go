package core

// All currency values are decimal.Decimal so installment division keeps
// sub-cent precision; rounding to cents happens only where the simulation and
// the reports require it.

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a decimal string from the input files into a Decimal.
// The files use a dot as decimal separator.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// FormatBRL renders a value as the reports expect it: "R$ " prefix, two
// decimals rounded half away from zero, comma as decimal separator, no
// thousands grouping. Negative values keep the sign after the prefix.
func FormatBRL(d decimal.Decimal) string {
	return "R$ " + strings.Replace(d.StringFixed(2), ".", ",", 1)
}
