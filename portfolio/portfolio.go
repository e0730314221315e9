// Package portfolio accumulates holdings entered by the user.
package portfolio

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rustyeddy/stocktracker/market"
)

var (
	ErrInvalidQuantity     = errors.New("quantity is not a whole number")
	ErrNonPositiveQuantity = errors.New("quantity must be positive")
	ErrQuantityTooLarge    = errors.New("quantity too large")
)

// Holding is one symbol and the total quantity held.
type Holding struct {
	Symbol   market.Symbol
	Quantity market.Units
}

// Portfolio maps symbols to quantities. Adding a symbol twice accumulates.
// Holdings are reported in the order each symbol was first added.
type Portfolio struct {
	qty   map[market.Symbol]market.Units
	order []market.Symbol
	total market.Units
}

func New() *Portfolio {
	return &Portfolio{qty: make(map[market.Symbol]market.Units)}
}

// Add increases the quantity held of sym by units. The portfolio is left
// unchanged when units is not positive or the sum would overflow.
func (p *Portfolio) Add(sym market.Symbol, units market.Units) error {
	if units <= 0 {
		return fmt.Errorf("add %s: %w", sym, ErrNonPositiveQuantity)
	}
	if p.total > math.MaxInt64-units {
		return fmt.Errorf("add %d %s: %w", units, sym, ErrQuantityTooLarge)
	}
	if p.qty == nil {
		p.qty = make(map[market.Symbol]market.Units)
	}
	if _, ok := p.qty[sym]; !ok {
		p.order = append(p.order, sym)
	}
	p.qty[sym] += units
	p.total += units
	return nil
}

// Quantity returns the quantity held of sym, zero if none.
func (p *Portfolio) Quantity(sym market.Symbol) market.Units {
	return p.qty[sym]
}

// TotalUnits returns the number of shares held across all symbols.
func (p *Portfolio) TotalUnits() market.Units {
	return p.total
}

func (p *Portfolio) Len() int {
	return len(p.order)
}

func (p *Portfolio) IsEmpty() bool {
	return len(p.order) == 0
}

// Holdings returns a copy of the holdings in first-added order.
func (p *Portfolio) Holdings() []Holding {
	out := make([]Holding, 0, len(p.order))
	for _, s := range p.order {
		out = append(out, Holding{Symbol: s, Quantity: p.qty[s]})
	}
	return out
}

// ParseQuantity parses a share count typed by the user.
func ParseQuantity(s string) (market.Units, error) {
	t := strings.TrimSpace(s)
	n, err := strconv.ParseInt(t, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(t, "-") {
			return 0, fmt.Errorf("%q: %w", s, ErrNonPositiveQuantity)
		}
		return 0, fmt.Errorf("%q: %w", s, ErrQuantityTooLarge)
	}
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidQuantity)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%d: %w", n, ErrNonPositiveQuantity)
	}
	return market.Units(n), nil
}
