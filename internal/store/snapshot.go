package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/kupikrutcher/relationship-app/internal/model"
)

// snapshotTables are cleared and rewritten by every Save.
var snapshotTables = []string{"events", "mood_entries", "wishes", "reminders", "settings"}

// Save replaces the stored snapshot with snap in a single transaction.
// Saving the same snapshot twice leaves the database unchanged.
func (db *DB) Save(ctx context.Context, snap model.Snapshot) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}

	if err := saveTx(ctx, tx, snap); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func saveTx(ctx context.Context, tx *sql.Tx, snap model.Snapshot) error {
	for _, table := range snapshotTables {
		if err := execSQL(ctx, tx, sq.Delete(table)); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, e := range snap.Events {
		var cost, romanticism, scale any
		if e.Ratings != nil {
			cost, romanticism, scale = e.Ratings.Cost, e.Ratings.Romanticism, e.Ratings.Scale
		}
		var reason, notes any
		if e.FightDetails != nil {
			reason, notes = e.FightDetails.Reason, e.FightDetails.Notes
		}
		var mood any
		if e.Mood != nil {
			mood = string(*e.Mood)
		}
		ins := sq.Insert("events").
			Columns("id", "position", "date", "type", "title", "description", "mood",
				"cost", "romanticism", "scale", "significance",
				"fight_reason", "fight_notes", "completed").
			Values(e.ID, i, e.Date.UnixMilli(), string(e.Type), e.Title, nullable(e.Description), mood,
				cost, romanticism, scale, nullable(e.Significance),
				reason, notes, e.Completed)
		if err := execSQL(ctx, tx, ins); err != nil {
			return fmt.Errorf("insert event %s: %w", e.ID, err)
		}
	}

	for i, m := range snap.MoodEntries {
		ins := sq.Insert("mood_entries").
			Columns("id", "position", "date", "mood", "notes").
			Values(m.ID, i, m.Date.UnixMilli(), string(m.Mood), nullable(m.Notes))
		if err := execSQL(ctx, tx, ins); err != nil {
			return fmt.Errorf("insert mood entry %s: %w", m.ID, err)
		}
	}

	for i, w := range snap.Wishes {
		ins := sq.Insert("wishes").
			Columns("id", "position", "title", "description", "category", "fulfilled", "fulfilled_date").
			Values(w.ID, i, w.Title, nullable(w.Description), nullable(w.Category), w.Fulfilled, nullableMillis(w.FulfilledDate))
		if err := execSQL(ctx, tx, ins); err != nil {
			return fmt.Errorf("insert wish %s: %w", w.ID, err)
		}
	}

	for i, r := range snap.Reminders {
		ins := sq.Insert("reminders").
			Columns("id", "position", "event_type", "last_done", "frequency_days", "enabled").
			Values(r.ID, i, string(r.EventType), nullableMillis(r.LastDone), r.FrequencyDays, r.Enabled)
		if err := execSQL(ctx, tx, ins); err != nil {
			return fmt.Errorf("insert reminder %s: %w", r.ID, err)
		}
	}

	st := snap.Settings
	ins := sq.Insert("settings").
		Columns("id", "is_premium", "avatar_photo", "partner_name",
			"cost_weight", "romanticism_weight", "scale_weight").
		Values(1, st.IsPremium, nullable(st.AvatarPhoto), st.PartnerName,
			st.SignificanceFormula.CostWeight, st.SignificanceFormula.RomanticismWeight, st.SignificanceFormula.ScaleWeight)
	if err := execSQL(ctx, tx, ins); err != nil {
		return fmt.Errorf("insert settings: %w", err)
	}
	return nil
}

// Load reads the stored snapshot. An empty database yields the default
// snapshot.
func (db *DB) Load(ctx context.Context) (model.Snapshot, error) {
	snap := model.DefaultSnapshot()

	events, err := db.loadEvents(ctx)
	if err != nil {
		return snap, err
	}
	moods, err := db.loadMoodEntries(ctx)
	if err != nil {
		return snap, err
	}
	wishes, err := db.loadWishes(ctx)
	if err != nil {
		return snap, err
	}
	reminders, err := db.loadReminders(ctx)
	if err != nil {
		return snap, err
	}
	settings, err := db.loadSettings(ctx)
	if err != nil {
		return snap, err
	}

	snap.Events = events
	snap.MoodEntries = moods
	snap.Wishes = wishes
	snap.Reminders = reminders
	if settings != nil {
		snap.Settings = *settings
	}
	return snap, nil
}

func (db *DB) loadEvents(ctx context.Context) ([]model.Event, error) {
	rows, err := querySQL(ctx, db, sq.Select("id", "date", "type", "title", "description", "mood",
		"cost", "romanticism", "scale", "significance",
		"fight_reason", "fight_notes", "completed").
		From("events").OrderBy("position"))
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		var (
			e                        model.Event
			date                     int64
			typ                      string
			desc, mood               sql.NullString
			cost, romanticism, scale sql.NullInt64
			significance             sql.NullFloat64
			fightReason, fightNotes  sql.NullString
		)
		if err := rows.Scan(&e.ID, &date, &typ, &e.Title, &desc, &mood,
			&cost, &romanticism, &scale, &significance,
			&fightReason, &fightNotes, &e.Completed); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Date = fromMillis(date)
		e.Type = model.EventType(typ)
		e.Description = stringPtr(desc)
		if mood.Valid {
			m := model.Mood(mood.String)
			e.Mood = &m
		}
		if cost.Valid && romanticism.Valid && scale.Valid {
			e.Ratings = &model.Ratings{
				Cost:        int(cost.Int64),
				Romanticism: int(romanticism.Int64),
				Scale:       int(scale.Int64),
			}
		}
		if significance.Valid {
			v := significance.Float64
			e.Significance = &v
		}
		if fightReason.Valid {
			e.FightDetails = &model.FightDetails{Reason: fightReason.String, Notes: fightNotes.String}
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (db *DB) loadMoodEntries(ctx context.Context) ([]model.MoodEntry, error) {
	rows, err := querySQL(ctx, db, sq.Select("id", "date", "mood", "notes").
		From("mood_entries").OrderBy("position"))
	if err != nil {
		return nil, fmt.Errorf("load mood entries: %w", err)
	}
	defer rows.Close()

	moods := []model.MoodEntry{}
	for rows.Next() {
		var (
			m     model.MoodEntry
			date  int64
			mood  string
			notes sql.NullString
		)
		if err := rows.Scan(&m.ID, &date, &mood, &notes); err != nil {
			return nil, fmt.Errorf("scan mood entry: %w", err)
		}
		m.Date = fromMillis(date)
		m.Mood = model.Mood(mood)
		m.Notes = stringPtr(notes)
		moods = append(moods, m)
	}
	return moods, rows.Err()
}

func (db *DB) loadWishes(ctx context.Context) ([]model.Wish, error) {
	rows, err := querySQL(ctx, db, sq.Select("id", "title", "description", "category", "fulfilled", "fulfilled_date").
		From("wishes").OrderBy("position"))
	if err != nil {
		return nil, fmt.Errorf("load wishes: %w", err)
	}
	defer rows.Close()

	wishes := []model.Wish{}
	for rows.Next() {
		var (
			w              model.Wish
			desc, category sql.NullString
			fulfilledDate  sql.NullInt64
		)
		if err := rows.Scan(&w.ID, &w.Title, &desc, &category, &w.Fulfilled, &fulfilledDate); err != nil {
			return nil, fmt.Errorf("scan wish: %w", err)
		}
		w.Description = stringPtr(desc)
		w.Category = stringPtr(category)
		w.FulfilledDate = timePtr(fulfilledDate)
		wishes = append(wishes, w)
	}
	return wishes, rows.Err()
}

func (db *DB) loadReminders(ctx context.Context) ([]model.Reminder, error) {
	rows, err := querySQL(ctx, db, sq.Select("id", "event_type", "last_done", "frequency_days", "enabled").
		From("reminders").OrderBy("position"))
	if err != nil {
		return nil, fmt.Errorf("load reminders: %w", err)
	}
	defer rows.Close()

	reminders := []model.Reminder{}
	for rows.Next() {
		var (
			r         model.Reminder
			eventType string
			lastDone  sql.NullInt64
		)
		if err := rows.Scan(&r.ID, &eventType, &lastDone, &r.FrequencyDays, &r.Enabled); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		r.EventType = model.EventType(eventType)
		r.LastDone = timePtr(lastDone)
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

// loadSettings returns nil when no settings row has been saved yet.
func (db *DB) loadSettings(ctx context.Context) (*model.Settings, error) {
	query, args, err := sq.Select("is_premium", "avatar_photo", "partner_name",
		"cost_weight", "romanticism_weight", "scale_weight").
		From("settings").Where(sq.Eq{"id": 1}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build settings query: %w", err)
	}

	var (
		s      model.Settings
		avatar sql.NullString
	)
	err = db.QueryRowContext(ctx, query, args...).Scan(&s.IsPremium, &avatar, &s.PartnerName,
		&s.SignificanceFormula.CostWeight, &s.SignificanceFormula.RomanticismWeight, &s.SignificanceFormula.ScaleWeight)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	s.AvatarPhoto = stringPtr(avatar)
	return &s, nil
}

func execSQL(ctx context.Context, tx *sql.Tx, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

func querySQL(ctx context.Context, db *DB, b sq.Sqlizer) (*sql.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return db.QueryContext(ctx, query, args...)
}

func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullableMillis(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func timePtr(ni sql.NullInt64) *time.Time {
	if !ni.Valid {
		return nil
	}
	t := fromMillis(ni.Int64)
	return &t
}
