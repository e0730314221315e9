package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatSnapshotOrg renders a snapshot as an Org-mode block with the facts in
// a PROPERTIES drawer and the holdings as an Org table.
func FormatSnapshotOrg(s Snapshot) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("** Portfolio: %s (%s)\n", s.SavedAt.Local().Format("2006-01-02 15:04:05"), shortID(s.ID)))
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":SNAPSHOT_ID: %s\n", s.ID))
	b.WriteString(fmt.Sprintf(":SAVED_AT: %s\n", s.SavedAt.UTC().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf(":FILE: %s\n", s.File))
	b.WriteString(fmt.Sprintf(":TOTAL: %d\n", s.Report.Total))
	b.WriteString(":END:\n")

	if len(s.Report.Rows) > 0 {
		b.WriteString("\n| Stock | Quantity | Price | Total Value |\n")
		b.WriteString("|-------+----------+-------+-------------|\n")
		for _, r := range s.Report.Rows {
			b.WriteString(fmt.Sprintf("| %s | %d | %d | %d |\n", r.Symbol, r.Quantity, r.Price, r.Value))
		}
	}
	return b.String()
}

// FormatSnapshotsOrg renders multiple snapshots separated by blank lines.
func FormatSnapshotsOrg(snaps []Snapshot) string {
	var b strings.Builder
	for i, s := range snaps {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatSnapshotOrg(s))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
