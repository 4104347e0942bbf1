package store

import "fmt"

type migration struct {
	Version     int
	Description string
	SQL         string
}

var migrations = []migration{
	{
		Version:     1,
		Description: "events and mood_entries: calendar and mood log",
		SQL: `
CREATE TABLE events (
    id            TEXT PRIMARY KEY,
    position      INTEGER NOT NULL,
    date          INTEGER NOT NULL,
    type          TEXT NOT NULL CHECK (type IN ('gift', 'date', 'activity', 'reminder', 'fight')),
    title         TEXT NOT NULL,
    description   TEXT,
    mood          TEXT,

    -- Ratings: all three set or all NULL
    cost          INTEGER,
    romanticism   INTEGER,
    scale         INTEGER,
    significance  REAL,

    -- Fight details: reason NULL means no details
    fight_reason  TEXT,
    fight_notes   TEXT,

    completed     INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX idx_events_position ON events(position);
CREATE INDEX idx_events_type     ON events(type, completed, date DESC);

CREATE TABLE mood_entries (
    id        TEXT PRIMARY KEY,
    position  INTEGER NOT NULL,
    date      INTEGER NOT NULL,
    mood      TEXT NOT NULL,
    notes     TEXT
);

CREATE INDEX idx_mood_position ON mood_entries(position);
CREATE INDEX idx_mood_date     ON mood_entries(date DESC);
`,
	},
	{
		Version:     2,
		Description: "wishes, reminders, settings",
		SQL: `
CREATE TABLE wishes (
    id              TEXT PRIMARY KEY,
    position        INTEGER NOT NULL,
    title           TEXT NOT NULL,
    description     TEXT,
    category        TEXT,
    fulfilled       INTEGER NOT NULL DEFAULT 0,
    fulfilled_date  INTEGER
);

CREATE INDEX idx_wishes_position ON wishes(position);

CREATE TABLE reminders (
    id              TEXT PRIMARY KEY,
    position        INTEGER NOT NULL,
    event_type      TEXT NOT NULL,
    last_done       INTEGER,
    frequency_days  INTEGER NOT NULL,
    enabled         INTEGER NOT NULL DEFAULT 1
);

CREATE INDEX idx_reminders_position ON reminders(position);

CREATE TABLE settings (
    id                  INTEGER PRIMARY KEY CHECK (id = 1),
    is_premium          INTEGER NOT NULL DEFAULT 0,
    avatar_photo        TEXT,
    partner_name        TEXT NOT NULL,
    cost_weight         REAL NOT NULL,
    romanticism_weight  REAL NOT NULL,
    scale_weight        REAL NOT NULL
);
`,
	},
}

func latestVersion() int {
	return migrations[len(migrations)-1].Version
}

// migrate brings the schema up to latestVersion. Each migration runs in its
// own transaction together with its schema_versions row.
func (db *DB) migrate() error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_versions (
			version     INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at  INTEGER NOT NULL DEFAULT (strftime('%s', 'now') * 1000)
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_versions: %w", err)
	}

	current, err := db.SchemaVersion()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		if err := db.apply(m); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) apply(m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin migration %d: %w", m.Version, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(m.SQL); err != nil {
		return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
	}
	if _, err := tx.Exec(
		"INSERT INTO schema_versions (version, description) VALUES (?, ?)",
		m.Version, m.Description,
	); err != nil {
		return fmt.Errorf("record migration %d: %w", m.Version, err)
	}
	return tx.Commit()
}

// SchemaVersion returns the highest applied migration, 0 on a fresh file.
func (db *DB) SchemaVersion() (int, error) {
	var version int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_versions").Scan(&version)
	return version, err
}
