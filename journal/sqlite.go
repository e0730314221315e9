package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/stocktracker/pkg/id"
)

var ErrJournalNotFound = errors.New("journal not found")

// SQLite archives saved reports in a SQLite database.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// OpenSQLite opens an existing archive read-only. Unlike NewSQLite it never
// creates the file or the schema, so a mistyped path is an error.
func OpenSQLite(path string) (*SQLite, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrJournalNotFound, path)
		}
		return nil, err
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// RecordSnapshot stores s and its rows in one transaction. An empty ID is
// replaced with a new ULID derived from SavedAt.
func (j *SQLite) RecordSnapshot(ctx context.Context, s Snapshot) error {
	if s.ID == "" {
		s.ID = id.NewAt(s.SavedAt)
	}

	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshots (snapshot_id, saved_at, file, total)
		VALUES (?, ?, ?, ?)`,
		s.ID, s.SavedAt.UTC(), s.File, int64(s.Report.Total),
	)
	if err != nil {
		return fmt.Errorf("insert snapshot %s: %w", s.ID, err)
	}

	for i, row := range s.Report.Rows {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO snapshot_rows (snapshot_id, position, symbol, quantity, price, value)
			VALUES (?, ?, ?, ?, ?, ?)`,
			s.ID, i, string(row.Symbol), int64(row.Quantity), int64(row.Price), int64(row.Value),
		)
		if err != nil {
			return fmt.Errorf("insert snapshot %s row %d: %w", s.ID, i, err)
		}
	}

	return tx.Commit()
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
