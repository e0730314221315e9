package market

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrOverflow is returned when a value does not fit in an int64.
var ErrOverflow = errors.New("value out of range")

// Symbol is a short uppercase ticker such as AAPL.
type Symbol string

// Units is a share count.
type Units int64

// Price is the whole-dollar price of one share.
type Price int64

// Cash is a whole-dollar amount.
type Cash int64

// Value returns the value of u shares at price p. Both must be
// non-negative.
func (u Units) Value(p Price) (Cash, error) {
	if u < 0 || p < 0 {
		return 0, fmt.Errorf("value of %d at %d: negative operand", u, p)
	}
	if p != 0 && int64(u) > math.MaxInt64/int64(p) {
		return 0, fmt.Errorf("value of %d at %d: %w", u, p, ErrOverflow)
	}
	return Cash(int64(u) * int64(p)), nil
}

// Add returns c+d.
func (c Cash) Add(d Cash) (Cash, error) {
	if (d > 0 && c > math.MaxInt64-d) || (d < 0 && c < math.MinInt64-d) {
		return 0, fmt.Errorf("%d + %d: %w", c, d, ErrOverflow)
	}
	return c + d, nil
}

// NormalizeSymbol trims surrounding whitespace and upper-cases s.
func NormalizeSymbol(s string) Symbol {
	return Symbol(strings.ToUpper(strings.TrimSpace(s)))
}

func (s Symbol) String() string {
	return string(s)
}
