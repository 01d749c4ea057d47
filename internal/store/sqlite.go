package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/Salman700-356/pacific-parliament-quick-scan-assessment/internal/services"
)

// SQLiteStore keeps the log in a local SQLite file, one raw JSON body per
// row. Bodies are normalized through the codec on read, so rows written by
// older schema versions stay readable.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	schema := `CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		body TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// OpenSQLiteStore opens (or creates) the database file at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	s, err := NewSQLiteStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) ReadAll() []services.Snapshot {
	out := []services.Snapshot{}
	rows, err := s.db.Query("SELECT body FROM snapshots ORDER BY id")
	if err != nil {
		logrus.WithError(err).Warn("sqlite store: read snapshots")
		return out
	}
	defer rows.Close()

	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			logrus.WithError(err).Warn("sqlite store: scan snapshot row")
			continue
		}
		var decoded any
		if err := json.Unmarshal([]byte(body), &decoded); err != nil {
			continue
		}
		if snap, ok := services.NormalizeSnapshot(decoded); ok {
			out = append(out, snap)
		}
	}
	if err := rows.Err(); err != nil {
		logrus.WithError(err).Warn("sqlite store: iterate snapshot rows")
	}
	return out
}

func (s *SQLiteStore) WriteAll(log []services.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin write: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM snapshots"); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear snapshots: %w", err)
	}
	for _, snap := range log {
		if err := insertSnapshot(tx, snap); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Append(snapshot services.Snapshot) ([]services.Snapshot, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin append: %w", err)
	}
	if err := insertSnapshot(tx, snapshot); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return s.ReadAll(), nil
}

func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec("DELETE FROM snapshots")
	return err
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertSnapshot(tx execer, snap services.Snapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if _, err := tx.Exec("INSERT INTO snapshots (body) VALUES (?)", string(body)); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

var _ Store = (*SQLiteStore)(nil)
