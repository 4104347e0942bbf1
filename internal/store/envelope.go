package store

import (
	"encoding/json"
	"fmt"

	"github.com/kupikrutcher/relationship-app/internal/model"
)

// EnvelopeVersion is written into every snapshot envelope.
const EnvelopeVersion = 0

// Envelope is the on-disk and over-the-wire snapshot format:
// {"state": {...}, "version": 0}.
type Envelope struct {
	State   model.Snapshot `json:"state"`
	Version int            `json:"version"`
}

// wireState mirrors model.Snapshot with optional parts so that defaults can
// be filled in for anything a client or an older file left out.
type wireState struct {
	Events      []model.Event       `json:"events"`
	Wishes      []model.Wish        `json:"wishes"`
	Reminders   []model.Reminder    `json:"reminders"`
	MoodEntries []model.MoodEntry   `json:"moodEntries"`
	Settings    model.SettingsPatch `json:"settings"`
}

// DecodeSnapshot parses either an envelope or a bare state object.
// Missing collections become empty, settings are merged over the defaults and
// a missing significance formula falls back to the default formula.
func DecodeSnapshot(data []byte) (model.Snapshot, error) {
	var probe struct {
		State json.RawMessage `json:"state"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return model.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	raw := data
	if len(probe.State) > 0 && string(probe.State) != "null" {
		raw = probe.State
	}

	var ws wireState
	if err := json.Unmarshal(raw, &ws); err != nil {
		return model.Snapshot{}, fmt.Errorf("decode state: %w", err)
	}

	snap := model.Snapshot{
		Events:      ws.Events,
		Wishes:      ws.Wishes,
		Reminders:   ws.Reminders,
		MoodEntries: ws.MoodEntries,
		Settings:    model.DefaultSettings(),
	}
	ws.Settings.Apply(&snap.Settings)
	snap.Normalize()
	return snap, nil
}

// EncodeSnapshot renders snap as an indented envelope.
func EncodeSnapshot(snap model.Snapshot) ([]byte, error) {
	snap.Normalize()
	data, err := json.MarshalIndent(Envelope{State: snap, Version: EnvelopeVersion}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}
