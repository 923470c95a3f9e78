// Package store persists the project record and its change history as named
// string slots in a SQLite database. The record and the history live in
// independent slots; a missing or unreadable slot always falls back to a
// sane default rather than failing the load.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"renoboard/internal/project"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Slot names. Each holds one serialized document.
const (
	slotRecord  = "record"
	slotHistory = "history"
)

// HistoryMax caps the change-history log; older entries are dropped.
const HistoryMax = 50

// HistoryEntry is one line of the change log, newest first.
type HistoryEntry struct {
	Timestamp   time.Time `json:"ts"`
	Description string    `json:"desc"`
}

// Store is the SQLite-backed slot store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the store database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the store database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) readSlot(name string) (string, bool, error) {
	var content string
	err := s.db.QueryRow("SELECT content FROM slots WHERE name = ?", name).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return content, true, nil
}

func (s *Store) writeSlot(name, content string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO slots (name, content, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at`,
		name, content, now)
	return err
}

func (s *Store) removeSlot(name string) error {
	_, err := s.db.Exec("DELETE FROM slots WHERE name = ?", name)
	return err
}

// LoadRecord returns the stored project record. An absent or unparseable
// slot yields the built-in defaults, never an error; only a failing read of
// an existing store is reported.
func (s *Store) LoadRecord() (*project.Record, error) {
	content, ok, err := s.readSlot(slotRecord)
	if err != nil {
		return nil, fmt.Errorf("loading record: %w", err)
	}
	if !ok {
		return project.DefaultRecord(), nil
	}
	var r project.Record
	if err := json.Unmarshal([]byte(content), &r); err != nil {
		// Corrupt content is treated as absent.
		return project.DefaultRecord(), nil
	}
	return &r, nil
}

// SaveRecord serializes and writes the project record to its slot.
func (s *Store) SaveRecord(r *project.Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	if err := s.writeSlot(slotRecord, string(data)); err != nil {
		return fmt.Errorf("saving record: %w", err)
	}
	return nil
}

// Reset removes the record slot; the next LoadRecord returns defaults. The
// change log is an independent slot and stays as it is.
func (s *Store) Reset() error {
	if err := s.removeSlot(slotRecord); err != nil {
		return fmt.Errorf("resetting record: %w", err)
	}
	return nil
}

// History returns the change log, newest first. Absent or corrupt content
// yields an empty log.
func (s *Store) History() ([]HistoryEntry, error) {
	content, ok, err := s.readSlot(slotHistory)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var entries []HistoryEntry
	if err := json.Unmarshal([]byte(content), &entries); err != nil {
		return nil, nil
	}
	return entries, nil
}

// AppendHistory prepends an entry to the change log and trims it to
// HistoryMax entries, dropping the oldest.
func (s *Store) AppendHistory(e HistoryEntry) error {
	entries, err := s.History()
	if err != nil {
		return err
	}
	entries = append([]HistoryEntry{e}, entries...)
	if len(entries) > HistoryMax {
		entries = entries[:HistoryMax]
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := s.writeSlot(slotHistory, string(data)); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}

// ClearHistory removes the history slot.
func (s *Store) ClearHistory() error {
	return s.removeSlot(slotHistory)
}
