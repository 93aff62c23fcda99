package api

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount coerces a loosely typed JSON value into a currency amount.
// The admin forms submit numeric fields as either numbers or free text,
// and unparsable text falls back to zero rather than blocking the
// submission.
func ParseAmount(v any) decimal.Decimal {
	switch t := v.(type) {
	case float64:
		return decimal.NewFromFloat(t)
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(t)); err == nil {
			return d
		}
	}
	return decimal.Zero
}

// ParseOrder coerces a loosely typed JSON value into a display-order
// integer, defaulting to zero on unparsable input.
func ParseOrder(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
	}
	return 0
}
