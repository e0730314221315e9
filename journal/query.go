package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rustyeddy/stocktracker/market"
	"github.com/rustyeddy/stocktracker/report"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// GetSnapshot returns a single snapshot, rows included, by ID.
func (j *SQLite) GetSnapshot(ctx context.Context, snapshotID string) (Snapshot, error) {
	var (
		s     Snapshot
		total int64
	)

	row := j.db.QueryRowContext(ctx, `
		SELECT snapshot_id, saved_at, file, total
		FROM snapshots
		WHERE snapshot_id = ?`, snapshotID)

	err := row.Scan(&s.ID, &s.SavedAt, &s.File, &total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, fmt.Errorf("%w: %q", ErrSnapshotNotFound, snapshotID)
		}
		return Snapshot{}, err
	}
	s.Report.Total = market.Cash(total)

	rows, err := j.listRows(ctx, s.ID)
	if err != nil {
		return Snapshot{}, err
	}
	s.Report.Rows = rows
	return s, nil
}

// ListSnapshots returns every snapshot, newest first. Rows are not loaded.
func (j *SQLite) ListSnapshots(ctx context.Context) ([]Snapshot, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT snapshot_id, saved_at, file, total
		FROM snapshots
		ORDER BY saved_at DESC, snapshot_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var (
			s     Snapshot
			total int64
		)
		if err := rows.Scan(&s.ID, &s.SavedAt, &s.File, &total); err != nil {
			return nil, err
		}
		s.Report.Total = market.Cash(total)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (j *SQLite) listRows(ctx context.Context, snapshotID string) ([]report.Row, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT symbol, quantity, price, value
		FROM snapshot_rows
		WHERE snapshot_id = ?
		ORDER BY position ASC`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []report.Row
	for rows.Next() {
		var (
			sym                    string
			qty, price, totalValue int64
		)
		if err := rows.Scan(&sym, &qty, &price, &totalValue); err != nil {
			return nil, err
		}
		out = append(out, report.Row{
			Symbol:   market.Symbol(sym),
			Quantity: market.Units(qty),
			Price:    market.Price(price),
			Value:    market.Cash(totalValue),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
