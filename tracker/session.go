// Package tracker runs one interactive portfolio session: collect holdings,
// print the summary and optionally save it.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/stocktracker/internal/console"
	"github.com/rustyeddy/stocktracker/journal"
	"github.com/rustyeddy/stocktracker/market"
	"github.com/rustyeddy/stocktracker/portfolio"
	"github.com/rustyeddy/stocktracker/report"
)

const savePrompt = "\n💾 Do you want to save this portfolio to a CSV file? (yes/no): "

// Session wires the catalog, the console and persistence together.
type Session struct {
	Catalog market.Catalog
	Console *console.Console
	Saver   journal.Saver

	// Archive, when set, records every saved report.
	Archive journal.Archive

	Log *zap.Logger
	Now func() time.Time
}

// Run executes one session. It returns nil when the user enters nothing or
// declines to save; a failed save is returned as an error.
func (s *Session) Run(ctx context.Context) error {
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}

	s.Console.Println("\n📈 STOCK PORTFOLIO TRACKER 📊")
	s.Console.Println(strings.Repeat("-", 45))

	p, err := portfolio.NewCollector(s.Catalog, s.Console, log).Collect(ctx)
	if err != nil {
		return err
	}
	if p.IsEmpty() {
		s.Console.Println("📭 No stocks entered. Exiting.")
		return nil
	}

	rep, err := report.Reporter{Catalog: s.Catalog, Out: s.Console.Writer()}.Summarize(p)
	if err != nil {
		return err
	}

	answer, err := s.Console.Ask(savePrompt)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read save answer: %w", err)
	}
	if !wantsSave(answer) {
		s.Console.Println("📌 Portfolio not saved.")
		return nil
	}

	path, err := s.Saver.Save(rep)
	if err != nil {
		log.Error("save failed", zap.Error(err))
		return fmt.Errorf("save portfolio: %w", err)
	}
	log.Info("portfolio saved", zap.String("file", path), zap.Int64("total", int64(rep.Total)))
	s.Console.Printf("\n✅ Portfolio saved to file: %s\n", path)

	s.archive(ctx, log, path, rep)
	return nil
}

// archive records the saved report. The CSV file is already on disk so a
// failure here is logged rather than failing the run.
func (s *Session) archive(ctx context.Context, log *zap.Logger, path string, rep report.Report) {
	if s.Archive == nil {
		return
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	snap := journal.Snapshot{
		SavedAt: now(),
		File:    filepath.Base(path),
		Report:  rep,
	}
	if abs, err := filepath.Abs(path); err == nil {
		snap.File = abs
	}
	if err := s.Archive.RecordSnapshot(ctx, snap); err != nil {
		log.Warn("archive snapshot failed", zap.String("file", path), zap.Error(err))
	}
}

// wantsSave reports whether answer is "yes", ignoring case and surrounding
// whitespace. Anything else, including an empty line, means no.
func wantsSave(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}
