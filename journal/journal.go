// journal/journal.go
package journal

import (
	"context"
	"time"

	"github.com/rustyeddy/stocktracker/report"
)

// Snapshot is a saved report together with where and when it was saved.
type Snapshot struct {
	ID      string
	SavedAt time.Time
	File    string
	Report  report.Report
}

// Saver persists a finished report and returns where it went.
type Saver interface {
	Save(report.Report) (string, error)
}

// Archive keeps a record of every saved report.
type Archive interface {
	RecordSnapshot(context.Context, Snapshot) error
	Close() error
}
