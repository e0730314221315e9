// market/instruments.go
package market

import (
	"math"
	"strings"
)

type listing struct {
	Symbol Symbol
	Price  Price
}

// listings is the compiled-in price table, in display order.
var listings = [...]listing{
	{"AAPL", 180},
	{"TSLA", 250},
	{"GOOGL", 2800},
	{"AMZN", 3500},
	{"MSFT", 330},
	{"META", 420},
}

// Catalog maps symbols to their fixed unit price. The zero value is empty;
// use DefaultCatalog for the built-in table. A Catalog is never mutated after
// construction so it can be shared freely.
type Catalog struct {
	prices  map[Symbol]Price
	symbols []Symbol
}

// DefaultCatalog returns the built-in price table.
func DefaultCatalog() Catalog {
	c := Catalog{
		prices:  make(map[Symbol]Price, len(listings)),
		symbols: make([]Symbol, 0, len(listings)),
	}
	for _, l := range listings {
		c.prices[l.Symbol] = l.Price
		c.symbols = append(c.symbols, l.Symbol)
	}
	return c
}

// Lookup returns the unit price of sym and whether it is listed.
func (c Catalog) Lookup(sym Symbol) (Price, bool) {
	p, ok := c.prices[sym]
	return p, ok
}

// Has reports whether sym is listed.
func (c Catalog) Has(sym Symbol) bool {
	_, ok := c.prices[sym]
	return ok
}

// Symbols returns a copy of the listed symbols in display order.
func (c Catalog) Symbols() []Symbol {
	out := make([]Symbol, len(c.symbols))
	copy(out, c.symbols)
	return out
}

// MaxUnits is the largest number of shares, summed over all symbols, whose
// value at the highest listed price still fits in Cash. Any portfolio within
// this bound can be valued without overflow.
func (c Catalog) MaxUnits() Units {
	var top Price
	for _, p := range c.prices {
		if p > top {
			top = p
		}
	}
	if top <= 1 {
		return math.MaxInt64
	}
	return Units(math.MaxInt64 / int64(top))
}

// SymbolList joins the listed symbols with ", ".
func (c Catalog) SymbolList() string {
	names := make([]string, len(c.symbols))
	for i, s := range c.symbols {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
