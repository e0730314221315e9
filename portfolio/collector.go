package portfolio

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/rustyeddy/stocktracker/internal/console"
	"github.com/rustyeddy/stocktracker/market"
)

// Done ends symbol entry. It is compared after normalization.
const Done market.Symbol = "DONE"

const (
	symbolPrompt   = "Enter stock symbol (or 'done' to finish): "
	quantityPrompt = "Enter quantity of %s: "
)

// Collector runs the interactive entry loop.
type Collector struct {
	Catalog market.Catalog
	Console *console.Console
	Log     *zap.Logger
}

func NewCollector(cat market.Catalog, c *console.Console, log *zap.Logger) *Collector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Collector{Catalog: cat, Console: c, Log: log}
}

// Collect reads symbols and quantities until the user types "done" or the
// input ends, and returns what was accumulated. Invalid entries are reported
// to the user and skipped; they never change the portfolio.
func (c *Collector) Collect(ctx context.Context) (*Portfolio, error) {
	p := New()
	entries := 0
	for {
		if err := ctx.Err(); err != nil {
			return p, err
		}

		line, err := c.Console.Ask(symbolPrompt)
		if errors.Is(err, io.EOF) {
			c.Log.Debug("input closed at symbol prompt")
			break
		}
		if err != nil {
			return p, fmt.Errorf("read symbol: %w", err)
		}

		sym := market.NormalizeSymbol(line)
		if sym == Done {
			break
		}
		if !c.Catalog.Has(sym) {
			c.Log.Debug("unknown symbol", zap.String("symbol", string(sym)))
			c.Console.Printf("❌ Stock not found. Available stocks: %s\n", c.Catalog.SymbolList())
			continue
		}

		line, err = c.Console.Ask(fmt.Sprintf(quantityPrompt, sym))
		if errors.Is(err, io.EOF) {
			c.Log.Debug("input closed at quantity prompt", zap.String("symbol", string(sym)))
			break
		}
		if err != nil {
			return p, fmt.Errorf("read quantity: %w", err)
		}

		qty, err := ParseQuantity(line)
		switch {
		case errors.Is(err, ErrNonPositiveQuantity):
			c.Log.Debug("rejected quantity", zap.String("symbol", string(sym)), zap.Error(err))
			c.Console.Println("⚠️ Quantity must be a positive integer.")
			continue
		case errors.Is(err, ErrQuantityTooLarge):
			// reported below
		case err != nil:
			c.Log.Debug("rejected quantity", zap.String("symbol", string(sym)), zap.Error(err))
			c.Console.Println("⚠️ Invalid input. Please enter a number.")
			continue
		case qty > c.Catalog.MaxUnits()-p.TotalUnits():
			err = fmt.Errorf("%d %s: %w", qty, sym, ErrQuantityTooLarge)
		default:
			err = p.Add(sym, qty)
		}
		if err != nil {
			c.Log.Debug("rejected quantity", zap.String("symbol", string(sym)), zap.Error(err))
			c.Console.Printf("⚠️ Quantity too large. At most %d more shares can be added.\n", c.room(p))
			continue
		}
		entries++
	}

	c.Log.Info("collection finished",
		zap.Int("entries", entries),
		zap.Int("symbols", p.Len()),
	)
	return p, nil
}

// room is how many more shares p can take before its value could overflow.
func (c *Collector) room(p *Portfolio) market.Units {
	if r := c.Catalog.MaxUnits() - p.TotalUnits(); r > 0 {
		return r
	}
	return 0
}
