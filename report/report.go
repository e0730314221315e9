// Package report values a portfolio against the price catalog.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rustyeddy/stocktracker/market"
	"github.com/rustyeddy/stocktracker/portfolio"
)

// Row is the valuation of one holding.
type Row struct {
	Symbol   market.Symbol
	Quantity market.Units
	Price    market.Price
	Value    market.Cash
}

// Report is the list of rows and their total.
type Report struct {
	Rows  []Row
	Total market.Cash
}

// Summarize values every holding of p. Every symbol in p must be listed in
// cat; the collector guarantees this. A portfolio whose value does not fit in
// market.Cash yields market.ErrOverflow.
func Summarize(cat market.Catalog, p *portfolio.Portfolio) (Report, error) {
	var r Report
	for _, h := range p.Holdings() {
		price, _ := cat.Lookup(h.Symbol)
		value, err := h.Quantity.Value(price)
		if err != nil {
			return Report{}, fmt.Errorf("summarize %s: %w", h.Symbol, err)
		}
		r.Total, err = r.Total.Add(value)
		if err != nil {
			return Report{}, fmt.Errorf("summarize total: %w", err)
		}
		r.Rows = append(r.Rows, Row{
			Symbol:   h.Symbol,
			Quantity: h.Quantity,
			Price:    price,
			Value:    value,
		})
	}
	return r, nil
}

// Sum recomputes the total from the rows.
func (r Report) Sum() (market.Cash, error) {
	var (
		total market.Cash
		err   error
	)
	for _, row := range r.Rows {
		if total, err = total.Add(row.Value); err != nil {
			return 0, err
		}
	}
	return total, nil
}

const ruleWidth = 45

var rule = strings.Repeat("-", ruleWidth)

// WriteTable renders r as a fixed-width table.
func WriteTable(w io.Writer, r Report) error {
	var b strings.Builder
	b.WriteString("\n🧾 Portfolio Summary:\n")
	fmt.Fprintf(&b, "%-10s%-10s%-12s%-15s\n", "Stock", "Quantity", "Price ($)", "Total Value ($)")
	b.WriteString(rule + "\n")
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "%-10s%-10d%-12d%-15d\n", row.Symbol, row.Quantity, row.Price, row.Value)
	}
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%-32s$%d\n", "TOTAL", r.Total)

	_, err := io.WriteString(w, b.String())
	return err
}

// Reporter summarizes a portfolio and prints the table.
type Reporter struct {
	Catalog market.Catalog
	Out     io.Writer
}

func (rp Reporter) Summarize(p *portfolio.Portfolio) (Report, error) {
	r, err := Summarize(rp.Catalog, p)
	if err != nil {
		return Report{}, err
	}
	if err := WriteTable(rp.Out, r); err != nil {
		return r, fmt.Errorf("write summary: %w", err)
	}
	return r, nil
}
