// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	snapshot_id TEXT PRIMARY KEY,
	saved_at DATETIME NOT NULL,
	file TEXT NOT NULL,
	total INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshot_rows (
	snapshot_id TEXT NOT NULL REFERENCES snapshots(snapshot_id),
	position INTEGER NOT NULL,
	symbol TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	price INTEGER NOT NULL,
	value INTEGER NOT NULL,
	PRIMARY KEY (snapshot_id, position)
);

CREATE INDEX IF NOT EXISTS idx_snapshots_saved_at ON snapshots(saved_at);
`
